package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// Set is an owned ordered set of distinct values.
type Set[T SpanValue] struct {
	owner
}

type (
	IntSet   = Set[int]
	FloatSet = Set[float64]
	TstzSet  = Set[time.Time]
)

func makeSet[T SpanValue](op string, n int, fn func() (backend.Ptr, error)) (*Set[T], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &ConstructionError{Op: op, Message: "no values"}
	}
	p, err := fn()
	if err != nil {
		return nil, constructErr(op, err)
	}
	if p == nil {
		return nil, noResult(op)
	}
	return &Set[T]{adopt(handle.KindSet, p)}, nil
}

// NewIntSet returns the set of values. Duplicates are removed.
func NewIntSet(values ...int) (*IntSet, error) {
	return makeSet[int]("NewIntSet", len(values), func() (backend.Ptr, error) {
		return backend.IntSetMake(values)
	})
}

// NewFloatSet returns the set of values. Duplicates are removed.
func NewFloatSet(values ...float64) (*FloatSet, error) {
	return makeSet[float64]("NewFloatSet", len(values), func() (backend.Ptr, error) {
		return backend.FloatSetMake(values)
	})
}

// NewTstzSet returns the set of timestamps. Duplicates are removed.
func NewTstzSet(values ...time.Time) (*TstzSet, error) {
	ts := make([]int64, len(values))
	for i, v := range values {
		ts[i] = toTimestamp(v)
	}
	return makeSet[time.Time]("NewTstzSet", len(values), func() (backend.Ptr, error) {
		return backend.TstzSetMake(ts)
	})
}

func (s *Set[T]) pin() (backend.Ptr, func(), error) {
	if s == nil {
		return nil, unpinned, ErrReleased
	}
	return s.owner.pin()
}

// Free releases the native value. It is safe to call more than once.
func (s *Set[T]) Free() {
	if s != nil {
		s.h.Free()
	}
}

// Alive reports whether s still owns its native value.
func (s *Set[T]) Alive() bool { return s != nil && s.h.Alive() }

// NumValues returns the number of distinct values.
func (s *Set[T]) NumValues() (int, error) {
	p, unpin, err := s.pin()
	if err != nil {
		return 0, err
	}
	defer unpin()
	n, err := backend.SetNumValues(p)
	return n, callErr("NumValues", err)
}

// WKT returns the text form with at most maxDecimals decimals.
func (s *Set[T]) WKT(maxDecimals int) (string, error) {
	p, unpin, err := s.pin()
	if err != nil {
		return "", err
	}
	defer unpin()
	out, err := backend.SetOut(spanTypeOf[T](), p, maxDecimals)
	return out, callErr("WKT", err)
}

func (s *Set[T]) String() string {
	out, err := s.WKT(current().maxDecimals)
	if err != nil {
		return "set(" + err.Error() + ")"
	}
	return out
}
