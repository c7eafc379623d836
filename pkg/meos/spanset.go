package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// SpanSet is an owned ordered set of disjoint spans.
type SpanSet[T SpanValue] struct {
	owner
}

type (
	IntSpanSet   = SpanSet[int]
	FloatSpanSet = SpanSet[float64]
	TstzSpanSet  = SpanSet[time.Time]
)

func wrapSpanSet[T SpanValue](p backend.Ptr) (*SpanSet[T], error) {
	if p == nil {
		return nil, ErrEmpty
	}
	return &SpanSet[T]{adopt(handle.KindSpanSet, p)}, nil
}

func (s *SpanSet[T]) pin() (backend.Ptr, func(), error) {
	if s == nil {
		return nil, unpinned, ErrReleased
	}
	return s.owner.pin()
}

// Free releases the native value. It is safe to call more than once.
func (s *SpanSet[T]) Free() {
	if s != nil {
		s.h.Free()
	}
}

// Alive reports whether s still owns its native value.
func (s *SpanSet[T]) Alive() bool { return s != nil && s.h.Alive() }

func (s *SpanSet[T]) query(op string, fn func(backend.Ptr) (backend.Ptr, error)) (backend.Ptr, error) {
	p, unpin, err := s.pin()
	if err != nil {
		return nil, err
	}
	defer unpin()
	out, err := fn(p)
	return out, callErr(op, err)
}

func parseSpanSet[T SpanValue](s string) (*SpanSet[T], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.SpanSetIn(spanTypeOf[T](), s)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapSpanSet[T](p)
}

// ParseIntSpanSet parses an int span set such as "{[1, 3), [5, 7)}".
func ParseIntSpanSet(s string) (*IntSpanSet, error) { return parseSpanSet[int](s) }

// ParseFloatSpanSet parses a float span set.
func ParseFloatSpanSet(s string) (*FloatSpanSet, error) { return parseSpanSet[float64](s) }

// ParseTstzSpanSet parses a set of periods.
func ParseTstzSpanSet(s string) (*TstzSpanSet, error) { return parseSpanSet[time.Time](s) }

// NumSpans returns the number of spans.
func (s *SpanSet[T]) NumSpans() (int, error) {
	p, unpin, err := s.pin()
	if err != nil {
		return 0, err
	}
	defer unpin()
	n, err := backend.SpanSetNumSpans(p)
	return n, callErr("NumSpans", err)
}

func (s *SpanSet[T]) span(op string, fn func(backend.Ptr) (backend.Ptr, error)) (*Span[T], error) {
	p, err := s.query(op, fn)
	if err != nil {
		return nil, err
	}
	return wrapSpan[T](p)
}

// SpanN returns a copy of the n-th span, counting from 1.
func (s *SpanSet[T]) SpanN(n int) (*Span[T], error) {
	return s.span("SpanN", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.SpanSetSpanN(p, n)
	})
}

// StartSpan returns a copy of the first span.
func (s *SpanSet[T]) StartSpan() (*Span[T], error) {
	return s.span("StartSpan", backend.SpanSetStartSpan)
}

// EndSpan returns a copy of the last span.
func (s *SpanSet[T]) EndSpan() (*Span[T], error) {
	return s.span("EndSpan", backend.SpanSetEndSpan)
}

// Span returns the bounding span.
func (s *SpanSet[T]) Span() (*Span[T], error) {
	return s.span("Span", backend.SpanSetSpan)
}

// Equal reports whether both span sets hold the same spans.
func (s *SpanSet[T]) Equal(other *SpanSet[T]) (bool, error) {
	pa, unpinA, err := s.pin()
	if err != nil {
		return false, err
	}
	defer unpinA()
	pb, unpinB, err := other.pin()
	if err != nil {
		return false, err
	}
	defer unpinB()
	eq, err := backend.SpanSetEq(pa, pb)
	return eq, callErr("Equal", err)
}

// WKT returns the text form with at most maxDecimals decimals.
func (s *SpanSet[T]) WKT(maxDecimals int) (string, error) {
	p, unpin, err := s.pin()
	if err != nil {
		return "", err
	}
	defer unpin()
	out, err := backend.SpanSetOut(spanTypeOf[T](), p, maxDecimals)
	return out, callErr("WKT", err)
}

func (s *SpanSet[T]) String() string {
	out, err := s.WKT(current().maxDecimals)
	if err != nil {
		return "spanset(" + err.Error() + ")"
	}
	return out
}

// TotalDuration returns the time covered by a set of periods. With
// boundSpan the gaps between periods are included.
func TotalDuration(s *TstzSpanSet, boundSpan bool) (time.Duration, error) {
	p, unpin, err := s.pin()
	if err != nil {
		return 0, err
	}
	defer unpin()
	iv, err := backend.TstzSpanSetDuration(p, boundSpan)
	if err != nil {
		return 0, callErr("TotalDuration", err)
	}
	return fromInterval(iv), nil
}
