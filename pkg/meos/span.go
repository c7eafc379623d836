package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// SpanValue is the set of base values of spans, span sets and sets.
type SpanValue interface {
	int | float64 | time.Time | Date
}

func spanTypeOf[T SpanValue]() backend.SpanType {
	var zero T
	switch any(zero).(type) {
	case int:
		return backend.SpanInt
	case float64:
		return backend.SpanFloat
	case time.Time:
		return backend.SpanTstz
	case Date:
		return backend.SpanDate
	}
	return backend.SpanUnknown
}

// owner holds the native value of the non-temporal wrappers. The outer
// types define Free, Alive and pin with their own nil checks.
type owner struct {
	h *handle.Owned
}

func (o *owner) pin() (backend.Ptr, func(), error) {
	if err := requireInitialized(); err != nil {
		return nil, unpinned, err
	}
	if o == nil || o.h == nil {
		return nil, unpinned, ErrReleased
	}
	p, unpin := o.h.Pin()
	if p == nil {
		return nil, unpinned, ErrReleased
	}
	return p, unpin, nil
}

func adopt(kind handle.Kind, p backend.Ptr) owner {
	return owner{h: handle.Adopt(kind, p, backend.Free)}
}

// pinner is a wrapper whose native value can be pinned for a call.
type pinner interface {
	pin() (backend.Ptr, func(), error)
}

// ownerQuery runs fn on the native value of o.
func ownerQuery[R any](o pinner, op string, fn func(backend.Ptr) (R, error)) (R, error) {
	var zero R
	p, unpin, err := o.pin()
	if err != nil {
		return zero, err
	}
	defer unpin()
	out, err := fn(p)
	if err != nil {
		return zero, callErr(op, err)
	}
	return out, nil
}

func ownerPair[R any](a, b pinner, op string, fn func(pa, pb backend.Ptr) (R, error)) (R, error) {
	var zero R
	pb, unpin, err := b.pin()
	if err != nil {
		return zero, err
	}
	defer unpin()
	return ownerQuery(a, op, func(pa backend.Ptr) (R, error) { return fn(pa, pb) })
}

// Span is an owned interval of integers, floats or timestamps.
type Span[T SpanValue] struct {
	owner
}

type (
	IntSpan   = Span[int]
	FloatSpan = Span[float64]
	TstzSpan  = Span[time.Time]
)

func wrapSpan[T SpanValue](p backend.Ptr) (*Span[T], error) {
	if p == nil {
		return nil, ErrEmpty
	}
	return &Span[T]{adopt(handle.KindSpan, p)}, nil
}

func (s *Span[T]) pin() (backend.Ptr, func(), error) {
	if s == nil {
		return nil, unpinned, ErrReleased
	}
	return s.owner.pin()
}

// Free releases the native value. It is safe to call more than once.
func (s *Span[T]) Free() {
	if s != nil {
		s.h.Free()
	}
}

// Alive reports whether s still owns its native value.
func (s *Span[T]) Alive() bool { return s != nil && s.h.Alive() }

func spanQuery[T SpanValue, R any](s *Span[T], op string, fn func(backend.Ptr) (R, error)) (R, error) {
	return ownerQuery(s, op, fn)
}

func spanPair[T SpanValue, R any](a, b *Span[T], op string, fn func(pa, pb backend.Ptr) (R, error)) (R, error) {
	return ownerPair(a, b, op, fn)
}

func parseSpan[T SpanValue](s string) (*Span[T], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.SpanIn(spanTypeOf[T](), s)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapSpan[T](p)
}

// ParseIntSpan parses an int span such as "[1, 5)".
func ParseIntSpan(s string) (*IntSpan, error) { return parseSpan[int](s) }

// ParseFloatSpan parses a float span such as "[1.5, 2.5]".
func ParseFloatSpan(s string) (*FloatSpan, error) { return parseSpan[float64](s) }

// ParseTstzSpan parses a period such as "[2001-01-01, 2001-01-02)".
func ParseTstzSpan(s string) (*TstzSpan, error) { return parseSpan[time.Time](s) }

func makeSpan[T SpanValue](op string, fn func() (backend.Ptr, error)) (*Span[T], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := fn()
	if err != nil {
		return nil, constructErr(op, err)
	}
	if p == nil {
		return nil, noResult(op)
	}
	return wrapSpan[T](p)
}

// NewIntSpan returns the span between lower and upper. The native
// library canonicalises int spans to an inclusive lower and exclusive
// upper bound.
func NewIntSpan(lower, upper int, lowerInc, upperInc bool) (*IntSpan, error) {
	return makeSpan[int]("NewIntSpan", func() (backend.Ptr, error) {
		return backend.IntSpanMake(lower, upper, lowerInc, upperInc)
	})
}

// NewFloatSpan returns the span between lower and upper.
func NewFloatSpan(lower, upper float64, lowerInc, upperInc bool) (*FloatSpan, error) {
	return makeSpan[float64]("NewFloatSpan", func() (backend.Ptr, error) {
		return backend.FloatSpanMake(lower, upper, lowerInc, upperInc)
	})
}

// NewTstzSpan returns the period between lower and upper.
func NewTstzSpan(lower, upper time.Time, lowerInc, upperInc bool) (*TstzSpan, error) {
	lo, hi := toTimestamp(lower), toTimestamp(upper)
	return makeSpan[time.Time]("NewTstzSpan", func() (backend.Ptr, error) {
		return backend.TstzSpanMake(lo, hi, lowerInc, upperInc)
	})
}

func (s *Span[T]) bounds() (T, T, error) {
	var zero T
	type res struct{ lo, hi any }
	r, err := spanQuery(s, "Bounds", func(p backend.Ptr) (res, error) {
		switch any(zero).(type) {
		case int:
			lo, hi, err := backend.IntSpanBounds(p)
			return res{lo, hi}, err
		case float64:
			lo, hi, err := backend.FloatSpanBounds(p)
			return res{lo, hi}, err
		case time.Time:
			lo, hi, err := backend.TstzSpanBounds(p)
			return res{fromTimestamp(lo), fromTimestamp(hi)}, err
		case Date:
			lo, hi, err := backend.DateSpanBounds(p)
			return res{fromDateADT(lo), fromDateADT(hi)}, err
		}
		return res{zero, zero}, nil
	})
	if err != nil {
		return zero, zero, err
	}
	return r.lo.(T), r.hi.(T), nil
}

// Lower returns the lower bound.
func (s *Span[T]) Lower() (T, error) {
	lo, _, err := s.bounds()
	return lo, err
}

// Upper returns the upper bound.
func (s *Span[T]) Upper() (T, error) {
	_, hi, err := s.bounds()
	return hi, err
}

// LowerInc reports whether the lower bound is included.
func (s *Span[T]) LowerInc() (bool, error) {
	lo, _, err := s.inclusive()
	return lo, err
}

// UpperInc reports whether the upper bound is included.
func (s *Span[T]) UpperInc() (bool, error) {
	_, hi, err := s.inclusive()
	return hi, err
}

func (s *Span[T]) inclusive() (bool, bool, error) {
	type res struct{ lo, hi bool }
	r, err := spanQuery(s, "Inclusive", func(p backend.Ptr) (res, error) {
		lo, hi, err := backend.SpanInclusive(p)
		return res{lo, hi}, err
	})
	return r.lo, r.hi, err
}

func (s *Span[T]) test(op string, other *Span[T], pred backend.SpanPred) (bool, error) {
	return spanPair(s, other, op, func(a, b backend.Ptr) (bool, error) {
		return backend.SpanTest(a, b, pred)
	})
}

// Equal reports whether both spans have the same bounds.
func (s *Span[T]) Equal(other *Span[T]) (bool, error) {
	return s.test("Equal", other, backend.SpanEq)
}

// Overlaps reports whether the spans share a value.
func (s *Span[T]) Overlaps(other *Span[T]) (bool, error) {
	return s.test("Overlaps", other, backend.SpanOverlaps)
}

// Contains reports whether s contains other.
func (s *Span[T]) Contains(other *Span[T]) (bool, error) {
	return s.test("Contains", other, backend.SpanContains)
}

// Adjacent reports whether the spans touch without overlapping.
func (s *Span[T]) Adjacent(other *Span[T]) (bool, error) {
	return s.test("Adjacent", other, backend.SpanAdjacent)
}

func (s *Span[T]) position(op string, other *Span[T], pos backend.SpanPos) (bool, error) {
	return spanPair(s, other, op, func(a, b backend.Ptr) (bool, error) {
		return backend.SpanPosition(a, b, pos)
	})
}

// Left reports whether s ends before other starts.
func (s *Span[T]) Left(other *Span[T]) (bool, error) {
	return s.position("Left", other, backend.SpanLeft)
}

// OverLeft reports whether s does not extend past the end of other.
func (s *Span[T]) OverLeft(other *Span[T]) (bool, error) {
	return s.position("OverLeft", other, backend.SpanOverLeft)
}

// Right reports whether s starts after other ends.
func (s *Span[T]) Right(other *Span[T]) (bool, error) {
	return s.position("Right", other, backend.SpanRight)
}

// OverRight reports whether s does not extend before the start of other.
func (s *Span[T]) OverRight(other *Span[T]) (bool, error) {
	return s.position("OverRight", other, backend.SpanOverRight)
}

// Hash returns a hash of the bounds of s. Equal spans hash equally.
func (s *Span[T]) Hash() (uint32, error) {
	return spanQuery(s, "Hash", backend.SpanHash)
}

// Intersection returns the common part of both spans. Disjoint spans
// yield ErrEmpty.
func (s *Span[T]) Intersection(other *Span[T]) (*Span[T], error) {
	p, err := spanPair(s, other, "Intersection", backend.SpanIntersection)
	if err != nil {
		return nil, err
	}
	return wrapSpan[T](p)
}

// Union returns both spans as a span set.
func (s *Span[T]) Union(other *Span[T]) (*SpanSet[T], error) {
	p, err := spanPair(s, other, "Union", backend.SpanUnion)
	if err != nil {
		return nil, err
	}
	return wrapSpanSet[T](p)
}

// ToSpanSet returns a span set holding s.
func (s *Span[T]) ToSpanSet() (*SpanSet[T], error) {
	p, err := spanQuery(s, "ToSpanSet", backend.SpanToSpanSet)
	if err != nil {
		return nil, err
	}
	return wrapSpanSet[T](p)
}

// WKT returns the text form with at most maxDecimals decimals.
func (s *Span[T]) WKT(maxDecimals int) (string, error) {
	return spanQuery(s, "WKT", func(p backend.Ptr) (string, error) {
		return backend.SpanOut(spanTypeOf[T](), p, maxDecimals)
	})
}

func (s *Span[T]) String() string {
	out, err := s.WKT(current().maxDecimals)
	if err != nil {
		return "span(" + err.Error() + ")"
	}
	return out
}

// Duration returns the width of a period.
func Duration(s *TstzSpan) (time.Duration, error) {
	iv, err := spanQuery(s, "Duration", backend.TstzSpanDuration)
	if err != nil {
		return 0, err
	}
	return fromInterval(iv), nil
}

// ShiftScaleSpan moves a period by shift and resizes it to width. A zero
// argument leaves that aspect unchanged.
func ShiftScaleSpan(s *TstzSpan, shift, width time.Duration) (*TstzSpan, error) {
	if shift == 0 && width == 0 {
		return nil, &ConstructionError{Op: "ShiftScaleSpan", Message: "shift or width must be set"}
	}
	p, err := spanQuery(s, "ShiftScaleSpan", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TstzSpanShiftScale(p, optInterval(shift), optInterval(width))
	})
	if err != nil {
		return nil, err
	}
	return wrapSpan[time.Time](p)
}
