//go:build cgo && meos

package backend

/*
#include <stdlib.h>
#include <meos.h>
*/
import "C"

import (
	"unsafe"
)

// TNumberIntegral returns the area under the curve.
func TNumberIntegral(p Ptr) (float64, error) {
	return call("tnumber_integral", func() float64 {
		return float64(C.tnumber_integral(tp(p)))
	})
}

// TNumberTwavg returns the time-weighted average.
func TNumberTwavg(p Ptr) (float64, error) {
	return call("tnumber_twavg", func() float64 {
		return float64(C.tnumber_twavg(tp(p)))
	})
}

// TNumberToTBox returns the bounding box. Convention: null.
func TNumberToTBox(p Ptr) (Ptr, error) {
	return callPtr("tnumber_to_tbox", func() unsafe.Pointer {
		return unsafe.Pointer(C.tnumber_to_tbox(tp(p)))
	})
}

// TNumberValueSpans returns the value extent as a span set.
// Convention: null.
func TNumberValueSpans(p Ptr) (Ptr, error) {
	return callPtr("tnumber_valuespans", func() unsafe.Pointer {
		return unsafe.Pointer(C.tnumber_valuespans(tp(p)))
	})
}

// TNumberArith applies an operator pointwise. Convention: null; a null
// without error means the operands share no time.
func TNumberArith(a, b Ptr, op Arith) (Ptr, error) {
	name := [...]string{"add_tnumber_tnumber", "sub_tnumber_tnumber", "mult_tnumber_tnumber", "div_tnumber_tnumber"}[op]
	return callPtr(name, func() unsafe.Pointer {
		switch op {
		case ArithSub:
			return unsafe.Pointer(C.sub_tnumber_tnumber(tp(a), tp(b)))
		case ArithMul:
			return unsafe.Pointer(C.mult_tnumber_tnumber(tp(a), tp(b)))
		case ArithDiv:
			return unsafe.Pointer(C.div_tnumber_tnumber(tp(a), tp(b)))
		default:
			return unsafe.Pointer(C.add_tnumber_tnumber(tp(a), tp(b)))
		}
	})
}

// TNumberAbs returns the absolute value. Convention: null.
func TNumberAbs(p Ptr) (Ptr, error) {
	return callPtr("tnumber_abs", func() unsafe.Pointer {
		return unsafe.Pointer(C.tnumber_abs(tp(p)))
	})
}

// TNumberDeltaValue returns the value change between instants.
// Convention: null; a single instant yields null without error.
func TNumberDeltaValue(p Ptr) (Ptr, error) {
	return callPtr("tnumber_delta_value", func() unsafe.Pointer {
		return unsafe.Pointer(C.tnumber_delta_value(tp(p)))
	})
}

// TFloatShiftScaleValue shifts and scales the value extent.
// Convention: null.
func TFloatShiftScaleValue(p Ptr, shift, width float64, hasShift, hasWidth bool) (Ptr, error) {
	return callPtr("tfloat_shift_scale_value", func() unsafe.Pointer {
		switch {
		case hasShift && hasWidth:
			return unsafe.Pointer(C.tfloat_shift_scale_value(tp(p), C.double(shift), C.double(width)))
		case hasShift:
			return unsafe.Pointer(C.tfloat_shift_value(tp(p), C.double(shift)))
		default:
			return unsafe.Pointer(C.tfloat_scale_value(tp(p), C.double(width)))
		}
	})
}

// TIntShiftScaleValue shifts and scales the value extent.
// Convention: null.
func TIntShiftScaleValue(p Ptr, shift, width int, hasShift, hasWidth bool) (Ptr, error) {
	return callPtr("tint_shift_scale_value", func() unsafe.Pointer {
		switch {
		case hasShift && hasWidth:
			return unsafe.Pointer(C.tint_shift_scale_value(tp(p), C.int(shift), C.int(width)))
		case hasShift:
			return unsafe.Pointer(C.tint_shift_value(tp(p), C.int(shift)))
		default:
			return unsafe.Pointer(C.tint_scale_value(tp(p), C.int(width)))
		}
	})
}

// NadTFloatTFloat returns the nearest approach distance.
// Convention: distance.
func NadTFloatTFloat(a, b Ptr) (float64, bool, error) {
	d, err := call("nad_tfloat_tfloat", func() float64 {
		return float64(C.nad_tfloat_tfloat(tp(a), tp(b)))
	})
	return d, err == nil && d >= 0, err
}

// NadTIntTInt returns the nearest approach distance. Convention: distance.
func NadTIntTInt(a, b Ptr) (int, bool, error) {
	d, err := call("nad_tint_tint", func() int {
		return int(C.nad_tint_tint(tp(a), tp(b)))
	})
	return d, err == nil && d >= 0, err
}

// DistanceTNumberTNumber returns the temporal distance. Convention: null;
// a null without error means the operands share no time.
func DistanceTNumberTNumber(a, b Ptr) (Ptr, error) {
	return callPtr("distance_tnumber_tnumber", func() unsafe.Pointer {
		return unsafe.Pointer(C.distance_tnumber_tnumber(tp(a), tp(b)))
	})
}

// TBoolNot negates a tbool. Convention: null.
func TBoolNot(p Ptr) (Ptr, error) {
	return callPtr("tnot_tbool", func() unsafe.Pointer {
		return unsafe.Pointer(C.tnot_tbool(tp(p)))
	})
}

// TBoolAnd combines two tbools. Convention: null.
func TBoolAnd(a, b Ptr) (Ptr, error) {
	return callPtr("tand_tbool_tbool", func() unsafe.Pointer {
		return unsafe.Pointer(C.tand_tbool_tbool(tp(a), tp(b)))
	})
}

// TBoolOr combines two tbools. Convention: null.
func TBoolOr(a, b Ptr) (Ptr, error) {
	return callPtr("tor_tbool_tbool", func() unsafe.Pointer {
		return unsafe.Pointer(C.tor_tbool_tbool(tp(a), tp(b)))
	})
}

// TBoolWhenTrue returns the time where the value is true. Convention: null;
// a null without error means it is never true.
func TBoolWhenTrue(p Ptr) (Ptr, error) {
	return callPtr("tbool_when_true", func() unsafe.Pointer {
		return unsafe.Pointer(C.tbool_when_true(tp(p)))
	})
}

// TTextUpper upper-cases a ttext. Convention: null.
func TTextUpper(p Ptr) (Ptr, error) {
	return callPtr("ttext_upper", func() unsafe.Pointer {
		return unsafe.Pointer(C.ttext_upper(tp(p)))
	})
}

// TTextLower lower-cases a ttext. Convention: null.
func TTextLower(p Ptr) (Ptr, error) {
	return callPtr("ttext_lower", func() unsafe.Pointer {
		return unsafe.Pointer(C.ttext_lower(tp(p)))
	})
}

// TTextConcat concatenates two ttexts. Convention: null.
func TTextConcat(a, b Ptr) (Ptr, error) {
	return callPtr("textcat_ttext_ttext", func() unsafe.Pointer {
		return unsafe.Pointer(C.textcat_ttext_ttext(tp(a), tp(b)))
	})
}
