//go:build cgo && meos

package backend

/*
#include <stdlib.h>
#include <meos.h>
#include <meos_catalog.h>

static uint8_t go_temporal_temptype(const Temporal *t) { return t->temptype; }
static uint8_t go_temporal_subtype(const Temporal *t) { return t->subtype; }
static int go_temporal_interp(const Temporal *t) { return (t->flags & 0x000C) >> 2; }
static TimestampTz go_tinstant_t(const TInstant *inst) { return inst->t; }
*/
import "C"

import (
	"unsafe"
)

func tp(p Ptr) *C.Temporal { return (*C.Temporal)(p) }

func unsupported(op string, typ TempType) *NativeError {
	return &NativeError{Op: op, Code: -1, Message: "unsupported temporal type " + typ.String()}
}

func tempTypeFromC(v C.uint8_t) TempType {
	switch int(v) {
	case C.T_TBOOL:
		return TypeTBool
	case C.T_TINT:
		return TypeTInt
	case C.T_TFLOAT:
		return TypeTFloat
	case C.T_TTEXT:
		return TypeTText
	case C.T_TGEOMPOINT:
		return TypeTGeomPoint
	case C.T_TGEOGPOINT:
		return TypeTGeogPoint
	default:
		return TypeUnknown
	}
}

// TemporalInfo reads the type, subtype and interpolation from the header.
func TemporalInfo(p Ptr) (TempType, Subtype, Interp) {
	t := tp(p)
	return tempTypeFromC(C.go_temporal_temptype(t)),
		Subtype(C.go_temporal_subtype(t)),
		Interp(C.go_temporal_interp(t))
}

// TemporalIn parses WKT/EWKT. Convention: null.
func TemporalIn(typ TempType, s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	op := typ.String() + "_in"
	return callPtr(op, func() unsafe.Pointer {
		switch typ {
		case TypeTBool:
			return unsafe.Pointer(C.tbool_in(cs))
		case TypeTInt:
			return unsafe.Pointer(C.tint_in(cs))
		case TypeTFloat:
			return unsafe.Pointer(C.tfloat_in(cs))
		case TypeTText:
			return unsafe.Pointer(C.ttext_in(cs))
		case TypeTGeomPoint:
			return unsafe.Pointer(C.tgeompoint_in(cs))
		case TypeTGeogPoint:
			return unsafe.Pointer(C.tgeogpoint_in(cs))
		default:
			capture(LevelError, -1, unsupported(op, typ).Message)
			return nil
		}
	})
}

// TemporalOut formats a value as WKT. Convention: null.
func TemporalOut(typ TempType, p Ptr, maxdd int) (string, error) {
	op := typ.String() + "_out"
	s, err := call(op, func() *C.char {
		switch typ {
		case TypeTBool:
			return C.tbool_out(tp(p))
		case TypeTInt:
			return C.tint_out(tp(p))
		case TypeTFloat:
			return C.tfloat_out(tp(p), C.int(maxdd))
		case TypeTText:
			return C.ttext_out(tp(p))
		case TypeTGeomPoint, TypeTGeogPoint:
			return C.tpoint_as_text(tp(p), C.int(maxdd))
		default:
			capture(LevelError, -1, unsupported(op, typ).Message)
			return nil
		}
	})
	out := takeString(s)
	return out, err
}

// TPointAsEWKT formats a temporal point with its SRID prefix.
func TPointAsEWKT(p Ptr, maxdd int) (string, error) {
	s, err := call("tpoint_as_ewkt", func() *C.char {
		return C.tpoint_as_ewkt(tp(p), C.int(maxdd))
	})
	out := takeString(s)
	return out, err
}

// TemporalFromMFJSON parses MF-JSON. Convention: null.
func TemporalFromMFJSON(typ TempType, s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	op := typ.String() + "_from_mfjson"
	return callPtr(op, func() unsafe.Pointer {
		switch typ {
		case TypeTBool:
			return unsafe.Pointer(C.tbool_from_mfjson(cs))
		case TypeTInt:
			return unsafe.Pointer(C.tint_from_mfjson(cs))
		case TypeTFloat:
			return unsafe.Pointer(C.tfloat_from_mfjson(cs))
		case TypeTText:
			return unsafe.Pointer(C.ttext_from_mfjson(cs))
		case TypeTGeomPoint:
			return unsafe.Pointer(C.tgeompoint_from_mfjson(cs))
		case TypeTGeogPoint:
			return unsafe.Pointer(C.tgeogpoint_from_mfjson(cs))
		default:
			capture(LevelError, -1, unsupported(op, typ).Message)
			return nil
		}
	})
}

// TemporalAsMFJSON renders MF-JSON. An empty srs omits the crs member.
// Convention: null.
func TemporalAsMFJSON(p Ptr, withBBox bool, flags, precision int, srs string) (string, error) {
	var csrs *C.char
	if srs != "" {
		csrs = C.CString(srs)
		defer C.free(unsafe.Pointer(csrs))
	}
	s, err := call("temporal_as_mfjson", func() *C.char {
		return C.temporal_as_mfjson(tp(p), C.bool(withBBox), C.int(flags), C.int(precision), csrs)
	})
	out := takeString(s)
	return out, err
}

// TemporalFromWKB parses (extended) WKB. Convention: null.
func TemporalFromWKB(b []byte) (Ptr, error) {
	if len(b) == 0 {
		return nil, &NativeError{Op: "temporal_from_wkb", Code: -1, Message: "empty input"}
	}
	return callPtr("temporal_from_wkb", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_from_wkb((*C.uint8_t)(unsafe.Pointer(&b[0])), C.size_t(len(b))))
	})
}

// TemporalAsWKB renders WKB in the given variant. Convention: null.
func TemporalAsWKB(p Ptr, variant uint8) ([]byte, error) {
	var size C.size_t
	buf, err := call("temporal_as_wkb", func() *C.uint8_t {
		return C.temporal_as_wkb(tp(p), C.uint8_t(variant), &size)
	})
	out := takeBytes(buf, size)
	return out, err
}

// TemporalFromHexWKB parses hex-encoded WKB. Convention: null.
func TemporalFromHexWKB(s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return callPtr("temporal_from_hexwkb", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_from_hexwkb(cs))
	})
}

// TemporalAsHexWKB renders hex-encoded WKB. Convention: null.
func TemporalAsHexWKB(p Ptr, variant uint8) (string, error) {
	var size C.size_t
	s, err := call("temporal_as_hexwkb", func() *C.char {
		return C.temporal_as_hexwkb(tp(p), C.uint8_t(variant), &size)
	})
	out := takeString(s)
	return out, err
}

// TemporalCopy duplicates a value. Convention: null.
func TemporalCopy(p Ptr) (Ptr, error) {
	return callPtr("temporal_copy", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_copy(tp(p)))
	})
}

// TemporalNumInstants counts the distinct instants. Convention: code.
func TemporalNumInstants(p Ptr) (int, error) {
	return call("temporal_num_instants", func() int {
		return int(C.temporal_num_instants(tp(p)))
	})
}

// TemporalStartInstant returns a copy of the first instant. Convention: null.
func TemporalStartInstant(p Ptr) (Ptr, error) {
	return callPtr("temporal_start_instant", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_start_instant(tp(p)))
	})
}

// TemporalEndInstant returns a copy of the last instant. Convention: null.
func TemporalEndInstant(p Ptr) (Ptr, error) {
	return callPtr("temporal_end_instant", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_end_instant(tp(p)))
	})
}

// TemporalInstantN returns a copy of the 1-based n-th instant.
// Convention: null.
func TemporalInstantN(p Ptr, n int) (Ptr, error) {
	return callPtr("temporal_instant_n", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_instant_n(tp(p), C.int(n)))
	})
}

// TemporalInstants returns the addresses of the instants stored inside p.
// The addresses stay valid only while p is alive and must not be freed.
// Convention: null.
func TemporalInstants(p Ptr) ([]Ptr, error) {
	var count C.int
	arr, err := call("temporal_instants", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_instants(tp(p), &count))
	})
	if arr == nil {
		return nil, err
	}
	defer C.free(arr)
	if err != nil {
		return nil, err
	}

	view := unsafe.Slice((*unsafe.Pointer)(arr), int(count))
	out := make([]Ptr, len(view))
	copy(out, view)
	return out, nil
}

// TInstantTimestamp reads the timestamp of an instant.
func TInstantTimestamp(p Ptr) (int64, error) {
	return call("tinstant_timestamp", func() int64 {
		return int64(C.go_tinstant_t((*C.TInstant)(p)))
	})
}

// TemporalNumTimestamps counts the distinct timestamps. Convention: code.
func TemporalNumTimestamps(p Ptr) (int, error) {
	return call("temporal_num_timestamps", func() int {
		return int(C.temporal_num_timestamps(tp(p)))
	})
}

// TemporalStartTimestamp returns the first timestamp.
func TemporalStartTimestamp(p Ptr) (int64, error) {
	return call("temporal_start_timestamptz", func() int64 {
		return int64(C.temporal_start_timestamptz(tp(p)))
	})
}

// TemporalEndTimestamp returns the last timestamp.
func TemporalEndTimestamp(p Ptr) (int64, error) {
	return call("temporal_end_timestamptz", func() int64 {
		return int64(C.temporal_end_timestamptz(tp(p)))
	})
}

// TemporalTimestampN returns the 1-based n-th timestamp. Convention: flag.
func TemporalTimestampN(p Ptr, n int) (int64, bool, error) {
	var out C.TimestampTz
	ok, err := call("temporal_timestamptz_n", func() bool {
		return bool(C.temporal_timestamptz_n(tp(p), C.int(n), &out))
	})
	return int64(out), ok, err
}

// TemporalTimestamps returns all distinct timestamps. Convention: null.
func TemporalTimestamps(p Ptr) ([]int64, error) {
	var count C.int
	arr, err := call("temporal_timestamps", func() *C.TimestampTz {
		return C.temporal_timestamps(tp(p), &count)
	})
	if arr == nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(arr))
	if err != nil {
		return nil, err
	}

	view := unsafe.Slice(arr, int(count))
	out := make([]int64, len(view))
	for i, v := range view {
		out[i] = int64(v)
	}
	return out, nil
}

// TemporalDuration returns the duration, ignoring gaps when boundspan is
// true. Convention: null.
func TemporalDuration(p Ptr, boundspan bool) (Interval, error) {
	iv, err := call("temporal_duration", func() *C.Interval {
		return C.temporal_duration(tp(p), C.bool(boundspan))
	})
	out := takeInterval(iv)
	return out, err
}

// TemporalTime returns the time frame as a tstzspanset. Convention: null.
func TemporalTime(p Ptr) (Ptr, error) {
	return callPtr("temporal_time", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_time(tp(p)))
	})
}

// TemporalTimespan returns the bounding tstzspan. Convention: null.
func TemporalTimespan(p Ptr) (Ptr, error) {
	return callPtr("temporal_to_tstzspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_to_tstzspan(tp(p)))
	})
}

// TemporalLowerInc reports whether the lower bound is inclusive.
func TemporalLowerInc(p Ptr) (bool, error) {
	return call("temporal_lower_inc", func() bool {
		return bool(C.temporal_lower_inc(tp(p)))
	})
}

// TemporalUpperInc reports whether the upper bound is inclusive.
func TemporalUpperInc(p Ptr) (bool, error) {
	return call("temporal_upper_inc", func() bool {
		return bool(C.temporal_upper_inc(tp(p)))
	})
}

// TemporalShiftScaleTime shifts and/or scales the time frame; either
// interval may be nil. Convention: null.
func TemporalShiftScaleTime(p Ptr, shift, duration *Interval) (Ptr, error) {
	cs, cd := cInterval(shift), cInterval(duration)
	defer freeInterval(cs)
	defer freeInterval(cd)
	return callPtr("temporal_shift_scale_time", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_shift_scale_time(tp(p), cs, cd))
	})
}

// TemporalSetInterp changes the interpolation. Convention: null.
func TemporalSetInterp(p Ptr, interp Interp) (Ptr, error) {
	return callPtr("temporal_set_interp", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_set_interp(tp(p), C.interpType(interp)))
	})
}

// TemporalToInstant converts a single-instant value to an instant.
// Convention: null.
func TemporalToInstant(p Ptr) (Ptr, error) {
	return callPtr("temporal_to_tinstant", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_to_tinstant(tp(p)))
	})
}

// TemporalAppendInstant returns p extended with inst. A zero maxDist or nil
// maxT disables gap splitting. Convention: null.
func TemporalAppendInstant(p, inst Ptr, maxDist float64, maxT *Interval) (Ptr, error) {
	cmaxt := cInterval(maxT)
	defer freeInterval(cmaxt)
	return callPtr("temporal_append_tinstant", func() unsafe.Pointer {
		r := C.temporal_append_tinstant(tp(p), (*C.TInstant)(inst), C.double(maxDist), cmaxt, C.bool(false))
		if unsafe.Pointer(r) == p {
			// Never hand back the input allocation under a second owner.
			return unsafe.Pointer(C.temporal_copy(r))
		}
		return unsafe.Pointer(r)
	})
}

// TemporalMerge merges two values of the same type. Convention: null.
func TemporalMerge(a, b Ptr) (Ptr, error) {
	return callPtr("temporal_merge", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_merge(tp(a), tp(b)))
	})
}

// TemporalAtTimestamp restricts to one timestamp. Convention: null; a null
// without error means the value is not defined there.
func TemporalAtTimestamp(p Ptr, t int64) (Ptr, error) {
	return callPtr("temporal_at_timestamptz", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_at_timestamptz(tp(p), C.TimestampTz(t)))
	})
}

// TemporalMinusTimestamp removes one timestamp. Convention: null.
func TemporalMinusTimestamp(p Ptr, t int64) (Ptr, error) {
	return callPtr("temporal_minus_timestamptz", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_minus_timestamptz(tp(p), C.TimestampTz(t)))
	})
}

// TemporalAtTstzSpan restricts to a span. Convention: null.
func TemporalAtTstzSpan(p, span Ptr) (Ptr, error) {
	return callPtr("temporal_at_tstzspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_at_tstzspan(tp(p), (*C.Span)(span)))
	})
}

// TemporalMinusTstzSpan removes a span. Convention: null.
func TemporalMinusTstzSpan(p, span Ptr) (Ptr, error) {
	return callPtr("temporal_minus_tstzspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_minus_tstzspan(tp(p), (*C.Span)(span)))
	})
}

// TemporalAtValues restricts to the values of a set. Convention: null.
func TemporalAtValues(p, set Ptr) (Ptr, error) {
	return callPtr("temporal_at_values", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_at_values(tp(p), (*C.Set)(set)))
	})
}

// TemporalMinusValues removes the values of a set. Convention: null.
func TemporalMinusValues(p, set Ptr) (Ptr, error) {
	return callPtr("temporal_minus_values", func() unsafe.Pointer {
		return unsafe.Pointer(C.temporal_minus_values(tp(p), (*C.Set)(set)))
	})
}

// TemporalEq compares two values for equality.
func TemporalEq(a, b Ptr) (bool, error) {
	return call("temporal_eq", func() bool {
		return bool(C.temporal_eq(tp(a), tp(b)))
	})
}

// TemporalCmp orders two values.
func TemporalCmp(a, b Ptr) (int, error) {
	return call("temporal_cmp", func() int {
		return int(C.temporal_cmp(tp(a), tp(b)))
	})
}

// TemporalTEq returns the temporal equality as a tbool. Convention: null.
func TemporalTEq(a, b Ptr) (Ptr, error) {
	return callPtr("teq_temporal_temporal", func() unsafe.Pointer {
		return unsafe.Pointer(C.teq_temporal_temporal(tp(a), tp(b)))
	})
}

// TemporalTNe returns the temporal inequality as a tbool. Convention: null.
func TemporalTNe(a, b Ptr) (Ptr, error) {
	return callPtr("tne_temporal_temporal", func() unsafe.Pointer {
		return unsafe.Pointer(C.tne_temporal_temporal(tp(a), tp(b)))
	})
}

// codeResult maps an int predicate result to a bool. Convention: code.
func codeResult(op string, r int, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	if r < 0 {
		return false, &NativeError{Op: op, Code: r, Message: "predicate failed"}
	}
	return r == 1, nil
}

// EverEqBool tests whether the value is ever equal to v. Convention: code.
func EverEqBool(p Ptr, v bool) (bool, error) {
	r, err := call("ever_eq_tbool_bool", func() int {
		return int(C.ever_eq_tbool_bool(tp(p), C.bool(v)))
	})
	return codeResult("ever_eq_tbool_bool", r, err)
}

// AlwaysEqBool tests whether the value is always equal to v.
// Convention: code.
func AlwaysEqBool(p Ptr, v bool) (bool, error) {
	r, err := call("always_eq_tbool_bool", func() int {
		return int(C.always_eq_tbool_bool(tp(p), C.bool(v)))
	})
	return codeResult("always_eq_tbool_bool", r, err)
}

// EverEqInt tests whether the value is ever equal to v. Convention: code.
func EverEqInt(p Ptr, v int) (bool, error) {
	r, err := call("ever_eq_tint_int", func() int {
		return int(C.ever_eq_tint_int(tp(p), C.int(v)))
	})
	return codeResult("ever_eq_tint_int", r, err)
}

// AlwaysEqInt tests whether the value is always equal to v.
// Convention: code.
func AlwaysEqInt(p Ptr, v int) (bool, error) {
	r, err := call("always_eq_tint_int", func() int {
		return int(C.always_eq_tint_int(tp(p), C.int(v)))
	})
	return codeResult("always_eq_tint_int", r, err)
}

// EverEqFloat tests whether the value is ever equal to v. Convention: code.
func EverEqFloat(p Ptr, v float64) (bool, error) {
	r, err := call("ever_eq_tfloat_float", func() int {
		return int(C.ever_eq_tfloat_float(tp(p), C.double(v)))
	})
	return codeResult("ever_eq_tfloat_float", r, err)
}

// AlwaysEqFloat tests whether the value is always equal to v.
// Convention: code.
func AlwaysEqFloat(p Ptr, v float64) (bool, error) {
	r, err := call("always_eq_tfloat_float", func() int {
		return int(C.always_eq_tfloat_float(tp(p), C.double(v)))
	})
	return codeResult("always_eq_tfloat_float", r, err)
}
