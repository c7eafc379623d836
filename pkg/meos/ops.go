package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

// ShiftTime returns t moved by d.
func (t *Temporal[V]) ShiftTime(d time.Duration) (*Temporal[V], error) {
	return derive[V, V](t, "ShiftTime", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalShiftScaleTime(p, toInterval(d), nil)
	})
}

// ScaleTime returns t stretched or shrunk to last d. The start is kept.
func (t *Temporal[V]) ScaleTime(d time.Duration) (*Temporal[V], error) {
	return derive[V, V](t, "ScaleTime", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalShiftScaleTime(p, nil, toInterval(d))
	})
}

// ShiftScaleTime shifts t by shift and then scales it to last width. A
// zero argument leaves that aspect unchanged.
func (t *Temporal[V]) ShiftScaleTime(shift, width time.Duration) (*Temporal[V], error) {
	if shift == 0 && width == 0 {
		return nil, &ConstructionError{Op: "ShiftScaleTime", Message: "shift or width must be set"}
	}
	return derive[V, V](t, "ShiftScaleTime", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalShiftScaleTime(p, optInterval(shift), optInterval(width))
	})
}

// SetInterpolation returns t converted to interp.
func (t *Temporal[V]) SetInterpolation(interp Interpolation) (*Temporal[V], error) {
	return derive[V, V](t, "SetInterpolation", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalSetInterp(p, interp.native())
	})
}

// ToInstant converts a value with a single instant to an instant.
func (t *Temporal[V]) ToInstant() (*Temporal[V], error) {
	return derive[V, V](t, "ToInstant", backend.TemporalToInstant)
}

// AppendInstant returns t extended with inst. When maxDist or maxGap are
// positive, an instant farther away in value or time starts a new
// sequence.
func (t *Temporal[V]) AppendInstant(inst *Temporal[V], maxDist float64, maxGap time.Duration) (*Temporal[V], error) {
	if inst != nil && inst.sub != Instant {
		return nil, &ConstructionError{Op: "AppendInstant", Message: "argument is a " + inst.sub.String()}
	}
	return derive2[V, V, V](t, inst, "AppendInstant", func(a, b backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalAppendInstant(a, b, maxDist, optInterval(maxGap))
	})
}

// Merge returns the union of t and other. Where both are defined their
// values must agree.
func (t *Temporal[V]) Merge(other *Temporal[V]) (*Temporal[V], error) {
	return derive2[V, V, V](t, other, "Merge", backend.TemporalMerge)
}

// AtTime restricts t to ts.
func (t *Temporal[V]) AtTime(ts time.Time) (*Temporal[V], error) {
	at := toTimestamp(ts)
	return derive[V, V](t, "AtTime", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalAtTimestamp(p, at)
	})
}

// MinusTime removes ts from t.
func (t *Temporal[V]) MinusTime(ts time.Time) (*Temporal[V], error) {
	at := toTimestamp(ts)
	return derive[V, V](t, "MinusTime", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalMinusTimestamp(p, at)
	})
}

func (t *Temporal[V]) withSpan(op string, s *Span[time.Time], fn func(a, b backend.Ptr) (backend.Ptr, error)) (*Temporal[V], error) {
	sp, unpinS, err := s.pin()
	if err != nil {
		return nil, err
	}
	defer unpinS()
	out, err := derive[V, V](t, op, func(p backend.Ptr) (backend.Ptr, error) {
		return fn(p, sp)
	})
	return out, err
}

// AtSpan restricts t to the period s. A period disjoint from t yields
// ErrEmpty.
func (t *Temporal[V]) AtSpan(s *Span[time.Time]) (*Temporal[V], error) {
	return t.withSpan("AtSpan", s, backend.TemporalAtTstzSpan)
}

// MinusSpan removes the period s from t.
func (t *Temporal[V]) MinusSpan(s *Span[time.Time]) (*Temporal[V], error) {
	return t.withSpan("MinusSpan", s, backend.TemporalMinusTstzSpan)
}

func restrictValues[V Number](op string, t *Temporal[V], s *Set[V], fn func(a, b backend.Ptr) (backend.Ptr, error)) (*Temporal[V], error) {
	sp, unpinS, err := s.pin()
	if err != nil {
		return nil, err
	}
	defer unpinS()
	out, err := derive[V, V](t, op, func(p backend.Ptr) (backend.Ptr, error) {
		return fn(p, sp)
	})
	return out, err
}

// AtValues restricts a temporal number to the values in s.
func AtValues[V Number](t *Temporal[V], s *Set[V]) (*Temporal[V], error) {
	return restrictValues("AtValues", t, s, backend.TemporalAtValues)
}

// MinusValues removes the values in s from a temporal number.
func MinusValues[V Number](t *Temporal[V], s *Set[V]) (*Temporal[V], error) {
	return restrictValues("MinusValues", t, s, backend.TemporalMinusValues)
}

// Equal reports whether t and other are the same value with the same
// representation.
func (t *Temporal[V]) Equal(other *Temporal[V]) (bool, error) {
	pa, pb, unpin, err := pair(t, other)
	if err != nil {
		return false, err
	}
	defer unpin()
	eq, err := backend.TemporalEq(pa, pb)
	return eq, callErr("Equal", err)
}

// Compare orders t and other, returning -1, 0 or 1.
func (t *Temporal[V]) Compare(other *Temporal[V]) (int, error) {
	pa, pb, unpin, err := pair(t, other)
	if err != nil {
		return 0, err
	}
	defer unpin()
	c, err := backend.TemporalCmp(pa, pb)
	return c, callErr("Compare", err)
}

func (t *Temporal[V]) everAlways(op string, v V, always bool) (bool, error) {
	return query(t, op, func(p backend.Ptr) (bool, error) {
		switch x := any(v).(type) {
		case bool:
			if always {
				return backend.AlwaysEqBool(p, x)
			}
			return backend.EverEqBool(p, x)
		case int:
			if always {
				return backend.AlwaysEqInt(p, x)
			}
			return backend.EverEqInt(p, x)
		case float64:
			if always {
				return backend.AlwaysEqFloat(p, x)
			}
			return backend.EverEqFloat(p, x)
		}
		return false, &backend.NativeError{Op: op, Code: -1, Message: "not defined for " + t.typ.String()}
	})
}

// EverEqual reports whether t takes the value v at some instant.
func (t *Temporal[V]) EverEqual(v V) (bool, error) { return t.everAlways("EverEqual", v, false) }

// AlwaysEqual reports whether t takes the value v at every instant.
func (t *Temporal[V]) AlwaysEqual(v V) (bool, error) { return t.everAlways("AlwaysEqual", v, true) }

// TemporalEqual returns where t and other are equal, over their common time.
func (t *Temporal[V]) TemporalEqual(other *Temporal[V]) (*TBool, error) {
	return derive2[V, V, bool](t, other, "TemporalEqual", backend.TemporalTEq)
}

// TemporalNotEqual returns where t and other differ, over their common time.
func (t *Temporal[V]) TemporalNotEqual(other *Temporal[V]) (*TBool, error) {
	return derive2[V, V, bool](t, other, "TemporalNotEqual", backend.TemporalTNe)
}
