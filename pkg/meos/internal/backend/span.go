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

func sp(p Ptr) *C.Span     { return (*C.Span)(p) }
func ssp(p Ptr) *C.SpanSet { return (*C.SpanSet)(p) }

// SpanIn parses a span. Convention: null.
func SpanIn(typ SpanType, s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return callPtr("span_in", func() unsafe.Pointer {
		switch typ {
		case SpanInt:
			return unsafe.Pointer(C.intspan_in(cs))
		case SpanFloat:
			return unsafe.Pointer(C.floatspan_in(cs))
		case SpanTstz:
			return unsafe.Pointer(C.tstzspan_in(cs))
		case SpanDate:
			return unsafe.Pointer(C.datespan_in(cs))
		default:
			capture(LevelError, -1, "unsupported span type")
			return nil
		}
	})
}

// SpanOut formats a span. Convention: null.
func SpanOut(typ SpanType, p Ptr, maxdd int) (string, error) {
	s, err := call("span_out", func() *C.char {
		switch typ {
		case SpanInt:
			return C.intspan_out(sp(p))
		case SpanFloat:
			return C.floatspan_out(sp(p), C.int(maxdd))
		case SpanTstz:
			return C.tstzspan_out(sp(p))
		case SpanDate:
			return C.datespan_out(sp(p))
		default:
			capture(LevelError, -1, "unsupported span type")
			return nil
		}
	})
	out := takeString(s)
	return out, err
}

// IntSpanMake builds an int span. Convention: null.
func IntSpanMake(lower, upper int, lowerInc, upperInc bool) (Ptr, error) {
	return callPtr("intspan_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.intspan_make(C.int(lower), C.int(upper), C.bool(lowerInc), C.bool(upperInc)))
	})
}

// FloatSpanMake builds a float span. Convention: null.
func FloatSpanMake(lower, upper float64, lowerInc, upperInc bool) (Ptr, error) {
	return callPtr("floatspan_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.floatspan_make(C.double(lower), C.double(upper), C.bool(lowerInc), C.bool(upperInc)))
	})
}

// TstzSpanMake builds a timestamp span. Convention: null.
func TstzSpanMake(lower, upper int64, lowerInc, upperInc bool) (Ptr, error) {
	return callPtr("tstzspan_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.tstzspan_make(C.TimestampTz(lower), C.TimestampTz(upper), C.bool(lowerInc), C.bool(upperInc)))
	})
}

// DateSpanMake builds a date span from day numbers. Convention: null.
func DateSpanMake(lower, upper int32, lowerInc, upperInc bool) (Ptr, error) {
	return callPtr("datespan_make", func() unsafe.Pointer {
		return unsafe.Pointer(C.datespan_make(C.DateADT(lower), C.DateADT(upper), C.bool(lowerInc), C.bool(upperInc)))
	})
}

// IntSpanBounds returns the bounds of an int span.
func IntSpanBounds(p Ptr) (int, int, error) {
	type pair struct{ lo, hi int }
	r, err := call("intspan_bounds", func() pair {
		return pair{int(C.intspan_lower(sp(p))), int(C.intspan_upper(sp(p)))}
	})
	return r.lo, r.hi, err
}

// FloatSpanBounds returns the bounds of a float span.
func FloatSpanBounds(p Ptr) (float64, float64, error) {
	type pair struct{ lo, hi float64 }
	r, err := call("floatspan_bounds", func() pair {
		return pair{float64(C.floatspan_lower(sp(p))), float64(C.floatspan_upper(sp(p)))}
	})
	return r.lo, r.hi, err
}

// TstzSpanBounds returns the bounds of a timestamp span.
func TstzSpanBounds(p Ptr) (int64, int64, error) {
	type pair struct{ lo, hi int64 }
	r, err := call("tstzspan_bounds", func() pair {
		return pair{int64(C.tstzspan_lower(sp(p))), int64(C.tstzspan_upper(sp(p)))}
	})
	return r.lo, r.hi, err
}

// DateSpanBounds returns the bounds of a date span as day numbers.
func DateSpanBounds(p Ptr) (int32, int32, error) {
	type pair struct{ lo, hi int32 }
	r, err := call("datespan_bounds", func() pair {
		return pair{int32(C.datespan_lower(sp(p))), int32(C.datespan_upper(sp(p)))}
	})
	return r.lo, r.hi, err
}

// ContainsSpanDate tests whether a date span contains the day d.
func ContainsSpanDate(p Ptr, d int32) (bool, error) {
	return call("contains_span_date", func() bool {
		return bool(C.contains_span_date(sp(p), C.DateADT(d)))
	})
}

// DateSpanToTstzSpan converts a date span to the period it covers.
// Convention: null.
func DateSpanToTstzSpan(p Ptr) (Ptr, error) {
	return callPtr("datespan_to_tstzspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.datespan_to_tstzspan(sp(p)))
	})
}

// DateSpanSetToTstzSpanSet converts a date span set. Convention: null.
func DateSpanSetToTstzSpanSet(p Ptr) (Ptr, error) {
	return callPtr("datespanset_to_tstzspanset", func() unsafe.Pointer {
		return unsafe.Pointer(C.datespanset_to_tstzspanset(ssp(p)))
	})
}

// SpanHash returns the 32-bit hash of a span.
func SpanHash(p Ptr) (uint32, error) {
	return call("span_hash", func() uint32 {
		return uint32(C.span_hash(sp(p)))
	})
}

// SpanPosition evaluates a position predicate on two spans.
func SpanPosition(a, b Ptr, pos SpanPos) (bool, error) {
	return call("span_position", func() bool {
		switch pos {
		case SpanLeft:
			return bool(C.left_span_span(sp(a), sp(b)))
		case SpanOverLeft:
			return bool(C.overleft_span_span(sp(a), sp(b)))
		case SpanRight:
			return bool(C.right_span_span(sp(a), sp(b)))
		default:
			return bool(C.overright_span_span(sp(a), sp(b)))
		}
	})
}

// SpanInclusive reports which bounds are inclusive.
func SpanInclusive(p Ptr) (bool, bool, error) {
	type pair struct{ lo, hi bool }
	r, err := call("span_inc", func() pair {
		return pair{bool(C.span_lower_inc(sp(p))), bool(C.span_upper_inc(sp(p)))}
	})
	return r.lo, r.hi, err
}

// SpanTest evaluates a predicate on two spans.
func SpanTest(a, b Ptr, pred SpanPred) (bool, error) {
	return call("span_predicate", func() bool {
		switch pred {
		case SpanOverlaps:
			return bool(C.overlaps_span_span(sp(a), sp(b)))
		case SpanContains:
			return bool(C.contains_span_span(sp(a), sp(b)))
		case SpanAdjacent:
			return bool(C.adjacent_span_span(sp(a), sp(b)))
		default:
			return bool(C.span_eq(sp(a), sp(b)))
		}
	})
}

// SpanIntersection intersects two spans. Convention: null; a null without
// error means the spans are disjoint.
func SpanIntersection(a, b Ptr) (Ptr, error) {
	return callPtr("intersection_span_span", func() unsafe.Pointer {
		return unsafe.Pointer(C.intersection_span_span(sp(a), sp(b)))
	})
}

// SpanUnion unites two spans into a span set. Convention: null.
func SpanUnion(a, b Ptr) (Ptr, error) {
	return callPtr("union_span_span", func() unsafe.Pointer {
		return unsafe.Pointer(C.union_span_span(sp(a), sp(b)))
	})
}

// SpanToSpanSet wraps a span into a span set. Convention: null.
func SpanToSpanSet(p Ptr) (Ptr, error) {
	return callPtr("span_to_spanset", func() unsafe.Pointer {
		return unsafe.Pointer(C.span_to_spanset(sp(p)))
	})
}

// TstzSpanDuration returns the width of a timestamp span. Convention: null.
func TstzSpanDuration(p Ptr) (Interval, error) {
	iv, err := call("tstzspan_duration", func() *C.Interval {
		return C.tstzspan_duration(sp(p))
	})
	out := takeInterval(iv)
	return out, err
}

// TstzSpanShiftScale shifts and/or scales a timestamp span.
// Convention: null.
func TstzSpanShiftScale(p Ptr, shift, duration *Interval) (Ptr, error) {
	cs, cd := cInterval(shift), cInterval(duration)
	defer freeInterval(cs)
	defer freeInterval(cd)
	return callPtr("tstzspan_shift_scale", func() unsafe.Pointer {
		return unsafe.Pointer(C.tstzspan_shift_scale(sp(p), cs, cd))
	})
}

// SpanSetIn parses a span set. Convention: null.
func SpanSetIn(typ SpanType, s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return callPtr("spanset_in", func() unsafe.Pointer {
		switch typ {
		case SpanInt:
			return unsafe.Pointer(C.intspanset_in(cs))
		case SpanFloat:
			return unsafe.Pointer(C.floatspanset_in(cs))
		case SpanTstz:
			return unsafe.Pointer(C.tstzspanset_in(cs))
		case SpanDate:
			return unsafe.Pointer(C.datespanset_in(cs))
		default:
			capture(LevelError, -1, "unsupported span set type")
			return nil
		}
	})
}

// SpanSetOut formats a span set. Convention: null.
func SpanSetOut(typ SpanType, p Ptr, maxdd int) (string, error) {
	s, err := call("spanset_out", func() *C.char {
		switch typ {
		case SpanInt:
			return C.intspanset_out(ssp(p))
		case SpanFloat:
			return C.floatspanset_out(ssp(p), C.int(maxdd))
		case SpanTstz:
			return C.tstzspanset_out(ssp(p))
		case SpanDate:
			return C.datespanset_out(ssp(p))
		default:
			capture(LevelError, -1, "unsupported span set type")
			return nil
		}
	})
	out := takeString(s)
	return out, err
}

// SpanSetNumSpans counts the spans.
func SpanSetNumSpans(p Ptr) (int, error) {
	return call("spanset_num_spans", func() int {
		return int(C.spanset_num_spans(ssp(p)))
	})
}

// SpanSetSpanN returns a copy of the 1-based n-th span. Convention: null.
func SpanSetSpanN(p Ptr, n int) (Ptr, error) {
	return callPtr("spanset_span_n", func() unsafe.Pointer {
		return unsafe.Pointer(C.spanset_span_n(ssp(p), C.int(n)))
	})
}

// SpanSetStartSpan returns a copy of the first span. Convention: null.
func SpanSetStartSpan(p Ptr) (Ptr, error) {
	return callPtr("spanset_start_span", func() unsafe.Pointer {
		return unsafe.Pointer(C.spanset_start_span(ssp(p)))
	})
}

// SpanSetEndSpan returns a copy of the last span. Convention: null.
func SpanSetEndSpan(p Ptr) (Ptr, error) {
	return callPtr("spanset_end_span", func() unsafe.Pointer {
		return unsafe.Pointer(C.spanset_end_span(ssp(p)))
	})
}

// SpanSetSpan returns the bounding span. Convention: null.
func SpanSetSpan(p Ptr) (Ptr, error) {
	return callPtr("spanset_span", func() unsafe.Pointer {
		return unsafe.Pointer(C.spanset_span(ssp(p)))
	})
}

// SpanSetEq compares two span sets.
func SpanSetEq(a, b Ptr) (bool, error) {
	return call("spanset_eq", func() bool {
		return bool(C.spanset_eq(ssp(a), ssp(b)))
	})
}

// TstzSpanSetDuration returns the total duration, or the bounding duration
// when boundspan is true. Convention: null.
func TstzSpanSetDuration(p Ptr, boundspan bool) (Interval, error) {
	iv, err := call("tstzspanset_duration", func() *C.Interval {
		return C.tstzspanset_duration(ssp(p), C.bool(boundspan))
	})
	out := takeInterval(iv)
	return out, err
}
