//go:build cgo && meos

package backend

/*
#include <stdlib.h>
#include <meos.h>
#include <meos_catalog.h>
#include <meos_internal.h>
*/
import "C"

import (
	"unsafe"
)

// TBoolInstMake builds an instant. Convention: null.
func TBoolInstMake(v bool, t int64) (Ptr, error) {
	return callPtr("tboolinst_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tboolinst_make(C.bool(v), C.TimestampTz(t)))
	})
}

// TIntInstMake builds an instant. Convention: null.
func TIntInstMake(v int, t int64) (Ptr, error) {
	return callPtr("tintinst_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tintinst_make(C.int(v), C.TimestampTz(t)))
	})
}

// TFloatInstMake builds an instant. Convention: null.
func TFloatInstMake(v float64, t int64) (Ptr, error) {
	return callPtr("tfloatinst_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tfloatinst_make(C.double(v), C.TimestampTz(t)))
	})
}

// TTextInstMake builds an instant; the text is copied. Convention: null.
func TTextInstMake(v string, t int64) (Ptr, error) {
	cs := C.CString(v)
	defer C.free(unsafe.Pointer(cs))
	return callPtr("ttextinst_make", func() unsafe.Pointer {
		txt := C.cstring2text(cs)
		if txt == nil {
			return nil
		}
		defer C.free(unsafe.Pointer(txt))
		return unsafe.Pointer(C.ttextinst_make(txt, C.TimestampTz(t)))
	})
}

// TPointInstMake builds an instant from a point geometry; the geometry is
// copied. Convention: null.
func TPointInstMake(geo Ptr, t int64) (Ptr, error) {
	return callPtr("tpointinst_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpointinst_make(gs(geo), C.TimestampTz(t)))
	})
}

// TSequenceMakeFree builds a sequence and takes ownership of every instant,
// whether it succeeds or fails. Convention: null.
func TSequenceMakeFree(insts []Ptr, lowerInc, upperInc bool, interp Interp, normalize bool) (Ptr, error) {
	if len(insts) == 0 {
		return nil, &NativeError{Op: "tsequence_make_free", Code: -1, Message: "no instants"}
	}
	arr := ptrArray(insts)
	taken := false
	seq, err := callPtr("tsequence_make_free", func() unsafe.Pointer {
		taken = true
		return unsafe.Pointer(C.tsequence_make_free((**C.TInstant)(unsafe.Pointer(arr)), C.int(len(insts)),
			C.bool(lowerInc), C.bool(upperInc), C.interpType(interp), C.bool(normalize)))
	})
	if !taken {
		for _, inst := range insts {
			C.free(inst)
		}
		C.free(unsafe.Pointer(arr))
	}
	return seq, err
}

// TSequenceMake builds a sequence from borrowed instants, which are copied.
// Convention: null.
func TSequenceMake(insts []Ptr, lowerInc, upperInc bool, interp Interp, normalize bool) (Ptr, error) {
	if len(insts) == 0 {
		return nil, &NativeError{Op: "tsequence_make", Code: -1, Message: "no instants"}
	}
	arr := ptrArray(insts)
	defer C.free(unsafe.Pointer(arr))
	return callPtr("tsequence_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tsequence_make((**C.TInstant)(unsafe.Pointer(arr)), C.int(len(insts)),
			C.bool(lowerInc), C.bool(upperInc), C.interpType(interp), C.bool(normalize)))
	})
}

// TSequenceSetMake builds a sequence set from borrowed sequences, which are
// copied. Convention: null.
func TSequenceSetMake(seqs []Ptr, normalize bool) (Ptr, error) {
	if len(seqs) == 0 {
		return nil, &NativeError{Op: "tsequenceset_make", Code: -1, Message: "no sequences"}
	}
	arr := ptrArray(seqs)
	defer C.free(unsafe.Pointer(arr))
	return callPtr("tsequenceset_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tsequenceset_make((**C.TSequence)(unsafe.Pointer(arr)), C.int(len(seqs)), C.bool(normalize)))
	})
}

// FloatSetMake builds a float set. Convention: null.
func FloatSetMake(values []float64) (Ptr, error) {
	if len(values) == 0 {
		return nil, &NativeError{Op: "floatset_make", Code: -1, Message: "no values"}
	}
	return callPtr("floatset_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.floatset_make((*C.double)(unsafe.Pointer(&values[0])), C.int(len(values))))
	})
}

// IntSetMake builds an int set. Convention: null.
func IntSetMake(values []int) (Ptr, error) {
	if len(values) == 0 {
		return nil, &NativeError{Op: "intset_make", Code: -1, Message: "no values"}
	}
	cv := make([]C.int, len(values))
	for i, v := range values {
		cv[i] = C.int(v)
	}
	return callPtr("intset_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.intset_make(&cv[0], C.int(len(cv))))
	})
}

// TstzSetMake builds a timestamp set. Convention: null.
func TstzSetMake(values []int64) (Ptr, error) {
	if len(values) == 0 {
		return nil, &NativeError{Op: "tstzset_make", Code: -1, Message: "no values"}
	}
	cv := make([]C.TimestampTz, len(values))
	for i, v := range values {
		cv[i] = C.TimestampTz(v)
	}
	return callPtr("tstzset_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tstzset_make(&cv[0], C.int(len(cv))))
	})
}

// DateSetMake builds a date set from day numbers. Convention: null.
func DateSetMake(values []int32) (Ptr, error) {
	if len(values) == 0 {
		return nil, &NativeError{Op: "dateset_make", Code: -1, Message: "no values"}
	}
	cv := make([]C.DateADT, len(values))
	for i, v := range values {
		cv[i] = C.DateADT(v)
	}
	return callPtr("dateset_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.dateset_make(&cv[0], C.int(len(cv))))
	})
}

// SetOut formats a set. Convention: null.
func SetOut(typ SpanType, p Ptr, maxdd int) (string, error) {
	s, err := call("set_out", func() *C.char {
		switch typ {
		case SpanInt:
			return C.intset_out((*C.Set)(p))
		case SpanFloat:
			return C.floatset_out((*C.Set)(p), C.int(maxdd))
		case SpanTstz:
			return C.tstzset_out((*C.Set)(p))
		case SpanDate:
			return C.dateset_out((*C.Set)(p))
		default:
			capture(LevelError, -1, "unsupported set type")
			return nil
		}
	})
	out := takeString(s)
	return out, err
}

// SetNumValues counts the values of a set.
func SetNumValues(p Ptr) (int, error) {
	return call("set_num_values", func() int {
		return int(C.set_num_values((*C.Set)(p)))
	})
}

// withBase runs fn with the text form of v converted to a native text,
// which is released afterwards.
func withBase(v BaseValue, fn func(txt *C.text) unsafe.Pointer) unsafe.Pointer {
	if v.Type != TypeTText {
		return fn(nil)
	}
	cs := C.CString(v.Text)
	defer C.free(unsafe.Pointer(cs))
	txt := C.cstring2text(cs)
	if txt == nil {
		return nil
	}
	defer C.free(unsafe.Pointer(txt))
	return fn(txt)
}

// SeqFromBaseTstzSpan builds a sequence holding v over the span s. interp
// is read for floats and points only. Convention: null.
func SeqFromBaseTstzSpan(v BaseValue, s Ptr, interp Interp) (Ptr, error) {
	return callPtr("tsequence_from_base_tstzspan", func() unsafe.Pointer {
		return withBase(v, func(txt *C.text) unsafe.Pointer {
			switch v.Type {
			case TypeTBool:
				return unsafe.Pointer(C.tboolseq_from_base_tstzspan(C.bool(v.Bool), sp(s)))
			case TypeTInt:
				return unsafe.Pointer(C.tintseq_from_base_tstzspan(C.int(v.Int), sp(s)))
			case TypeTFloat:
				return unsafe.Pointer(C.tfloatseq_from_base_tstzspan(C.double(v.Float), sp(s), C.interpType(interp)))
			case TypeTText:
				return unsafe.Pointer(C.ttextseq_from_base_tstzspan(txt, sp(s)))
			case TypeTGeomPoint, TypeTGeogPoint:
				return unsafe.Pointer(C.tpointseq_from_base_tstzspan(gs(v.Geo), sp(s), C.interpType(interp)))
			default:
				capture(LevelError, -1, "unsupported temporal type")
				return nil
			}
		})
	})
}

// SeqSetFromBaseTstzSpanSet builds a sequence set holding v over every span
// of ss. interp is read for floats and points only. Convention: null.
func SeqSetFromBaseTstzSpanSet(v BaseValue, ss Ptr, interp Interp) (Ptr, error) {
	return callPtr("tsequenceset_from_base_tstzspanset", func() unsafe.Pointer {
		return withBase(v, func(txt *C.text) unsafe.Pointer {
			switch v.Type {
			case TypeTBool:
				return unsafe.Pointer(C.tboolseqset_from_base_tstzspanset(C.bool(v.Bool), ssp(ss)))
			case TypeTInt:
				return unsafe.Pointer(C.tintseqset_from_base_tstzspanset(C.int(v.Int), ssp(ss)))
			case TypeTFloat:
				return unsafe.Pointer(C.tfloatseqset_from_base_tstzspanset(C.double(v.Float), ssp(ss), C.interpType(interp)))
			case TypeTText:
				return unsafe.Pointer(C.ttextseqset_from_base_tstzspanset(txt, ssp(ss)))
			case TypeTGeomPoint, TypeTGeogPoint:
				return unsafe.Pointer(C.tpointseqset_from_base_tstzspanset(gs(v.Geo), ssp(ss), C.interpType(interp)))
			default:
				capture(LevelError, -1, "unsupported temporal type")
				return nil
			}
		})
	})
}
