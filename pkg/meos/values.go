package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// scalar reads one of the start, end, min or max values of p.
func scalar[V Value](p backend.Ptr, typ backend.TempType, sel backend.ValueSel) (V, error) {
	var zero V
	var out any
	var err error
	switch any(zero).(type) {
	case bool:
		out, err = backend.TBoolValue(p, sel)
	case int:
		out, err = backend.TIntValue(p, sel)
	case float64:
		out, err = backend.TFloatValue(p, sel)
	case string:
		out, err = backend.TTextValue(p, sel)
	case *Geometry:
		var g backend.Ptr
		g, err = backend.TPointValue(p, sel)
		if err == nil && g != nil {
			out = wrapGeometry(g, typ == backend.TypeTGeogPoint)
		} else {
			out = zero
		}
	}
	if err != nil {
		return zero, err
	}
	return out.(V), nil
}

func (t *Temporal[V]) value(op string, sel backend.ValueSel) (V, error) {
	return query(t, op, func(p backend.Ptr) (V, error) {
		return scalar[V](p, t.typ, sel)
	})
}

// StartValue returns the value at the first instant.
func (t *Temporal[V]) StartValue() (V, error) { return t.value("StartValue", backend.ValueStart) }

// EndValue returns the value at the last instant.
func (t *Temporal[V]) EndValue() (V, error) { return t.value("EndValue", backend.ValueEnd) }

// MinValue returns the smallest value. It is not defined for booleans and
// points.
func (t *Temporal[V]) MinValue() (V, error) { return t.value("MinValue", backend.ValueMin) }

// MaxValue returns the largest value. It is not defined for booleans and
// points.
func (t *Temporal[V]) MaxValue() (V, error) { return t.value("MaxValue", backend.ValueMax) }

// ValueAt returns the value at ts. With strict, an exclusive bound of a
// sequence does not count. A timestamp where t is not defined yields
// ErrEmpty.
func (t *Temporal[V]) ValueAt(ts time.Time, strict bool) (V, error) {
	type res struct {
		v  V
		ok bool
	}
	var zero V
	at := toTimestamp(ts)
	r, err := query(t, "ValueAt", func(p backend.Ptr) (res, error) {
		var (
			v   any
			ok  bool
			err error
		)
		switch any(zero).(type) {
		case bool:
			v, ok, err = backend.TBoolValueAt(p, at, strict)
		case int:
			v, ok, err = backend.TIntValueAt(p, at, strict)
		case float64:
			v, ok, err = backend.TFloatValueAt(p, at, strict)
		case string:
			v, ok, err = backend.TTextValueAt(p, at, strict)
		case *Geometry:
			var g backend.Ptr
			g, ok, err = backend.TPointValueAt(p, at, strict)
			v = zero
			if err == nil && ok && g != nil {
				v = wrapGeometry(g, t.typ == backend.TypeTGeogPoint)
			}
		}
		if err != nil || !ok {
			return res{zero, ok}, err
		}
		return res{v.(V), true}, nil
	})
	if err != nil {
		return zero, err
	}
	if !r.ok {
		return zero, ErrEmpty
	}
	return r.v, nil
}

// Values returns the distinct values of t in ascending order. Temporal
// points have no value list; use Trajectory instead.
func (t *Temporal[V]) Values() ([]V, error) {
	var zero V
	if _, ok := any(zero).(*Geometry); ok {
		return nil, &NativeCallError{Op: "Values", Message: "not defined for " + t.typ.String()}
	}
	return query(t, "Values", func(p backend.Ptr) ([]V, error) {
		var (
			vs  any
			err error
		)
		switch any(zero).(type) {
		case bool:
			vs, err = backend.TBoolValues(p)
		case int:
			vs, err = backend.TIntValues(p)
		case float64:
			vs, err = backend.TFloatValues(p)
		case string:
			vs, err = backend.TTextValues(p)
		}
		if err != nil {
			return nil, err
		}
		return vs.([]V), nil
	})
}

// InstantView is a view of an instant stored inside another temporal
// value. It is valid while that value is alive and is never freed itself.
type InstantView[V Value] struct {
	b   handle.Borrowed
	typ backend.TempType
}

func (v InstantView[V]) pin() (backend.Ptr, func(), error) {
	if err := requireInitialized(); err != nil {
		return nil, unpinned, err
	}
	p, unpin := v.b.Pin()
	if p == nil {
		return nil, unpinned, ErrReleased
	}
	return p, unpin, nil
}

// Timestamp returns the time of the instant.
func (v InstantView[V]) Timestamp() (time.Time, error) {
	p, unpin, err := v.pin()
	if err != nil {
		return time.Time{}, err
	}
	defer unpin()
	ts, err := backend.TInstantTimestamp(p)
	if err != nil {
		return time.Time{}, callErr("Timestamp", err)
	}
	return fromTimestamp(ts), nil
}

// Value returns the value of the instant.
func (v InstantView[V]) Value() (V, error) {
	var zero V
	p, unpin, err := v.pin()
	if err != nil {
		return zero, err
	}
	defer unpin()
	out, err := scalar[V](p, v.typ, backend.ValueStart)
	if err != nil {
		return zero, callErr("Value", err)
	}
	return out, nil
}

// Copy returns an owned copy of the instant.
func (v InstantView[V]) Copy() (*Temporal[V], error) {
	p, unpin, err := v.pin()
	if err != nil {
		return nil, err
	}
	defer unpin()
	c, err := backend.TemporalCopy(p)
	if err != nil {
		return nil, callErr("Copy", err)
	}
	if c == nil {
		return nil, noResult("Copy")
	}
	return wrapTemporal[V](c), nil
}

// String returns the WKT of the instant.
func (v InstantView[V]) String() string {
	p, unpin, err := v.pin()
	if err != nil {
		return "instant(" + err.Error() + ")"
	}
	defer unpin()
	s, err := backend.TemporalOut(v.typ, p, current().maxDecimals)
	if err != nil {
		return "instant(" + err.Error() + ")"
	}
	return s
}
