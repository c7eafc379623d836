package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// STBox is an owned spatiotemporal bounding box. Either dimension may be
// missing.
type STBox struct {
	owner
}

// TBox is an owned value and time bounding box of a temporal number.
type TBox struct {
	owner
}

func wrapSTBox(p backend.Ptr) (*STBox, error) {
	if p == nil {
		return nil, ErrEmpty
	}
	return &STBox{adopt(handle.KindSTBox, p)}, nil
}

func wrapTBox(p backend.Ptr) (*TBox, error) {
	if p == nil {
		return nil, ErrEmpty
	}
	return &TBox{adopt(handle.KindTBox, p)}, nil
}

func (b *STBox) pin() (backend.Ptr, func(), error) {
	if b == nil {
		return nil, unpinned, ErrReleased
	}
	return b.owner.pin()
}

// Free releases the native value. It is safe to call more than once.
func (b *STBox) Free() {
	if b != nil {
		b.h.Free()
	}
}

// Alive reports whether b still owns its native value.
func (b *STBox) Alive() bool { return b != nil && b.h.Alive() }

func (b *TBox) pin() (backend.Ptr, func(), error) {
	if b == nil {
		return nil, unpinned, ErrReleased
	}
	return b.owner.pin()
}

// Free releases the native value. It is safe to call more than once.
func (b *TBox) Free() {
	if b != nil {
		b.h.Free()
	}
}

// Alive reports whether b still owns its native value.
func (b *TBox) Alive() bool { return b != nil && b.h.Alive() }

type flagged[T any] struct {
	v  T
	ok bool
}

// bound unpacks a flagged result; a missing dimension yields ErrEmpty.
func bound[T any](r flagged[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !r.ok {
		return zero, ErrEmpty
	}
	return r.v, nil
}

// ParseSTBox parses an stbox such as "STBOX XT(((1,1),(2,2)),[2001-01-01, 2001-01-02])".
func ParseSTBox(s string) (*STBox, error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.STBoxIn(s)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapSTBox(p)
}

func (b *STBox) coord(op string, c backend.BoxCoord) (float64, error) {
	return bound(ownerQuery(b, op, func(p backend.Ptr) (flagged[float64], error) {
		v, ok, err := backend.STBoxCoord(p, c)
		return flagged[float64]{v, ok}, err
	}))
}

// XMin returns the minimum x coordinate. A box without space yields
// ErrEmpty, as do the other spatial bounds.
func (b *STBox) XMin() (float64, error) { return b.coord("XMin", backend.CoordXMin) }

// XMax returns the maximum x coordinate.
func (b *STBox) XMax() (float64, error) { return b.coord("XMax", backend.CoordXMax) }

// YMin returns the minimum y coordinate.
func (b *STBox) YMin() (float64, error) { return b.coord("YMin", backend.CoordYMin) }

// YMax returns the maximum y coordinate.
func (b *STBox) YMax() (float64, error) { return b.coord("YMax", backend.CoordYMax) }

func (b *STBox) time(op string, upper bool) (time.Time, error) {
	v, err := bound(ownerQuery(b, op, func(p backend.Ptr) (flagged[int64], error) {
		v, ok, err := backend.STBoxTime(p, upper)
		return flagged[int64]{v, ok}, err
	}))
	if err != nil {
		return time.Time{}, err
	}
	return fromTimestamp(v), nil
}

// TMin returns the start of the time extent. A box without time yields
// ErrEmpty.
func (b *STBox) TMin() (time.Time, error) { return b.time("TMin", false) }

// TMax returns the end of the time extent.
func (b *STBox) TMax() (time.Time, error) { return b.time("TMax", true) }

func (b *STBox) dims() (flagged[bool], error) {
	return ownerQuery(b, "Dims", func(p backend.Ptr) (flagged[bool], error) {
		hasX, hasT, err := backend.STBoxDims(p)
		return flagged[bool]{hasX, hasT}, err
	})
}

// HasX reports whether the box has a spatial extent.
func (b *STBox) HasX() (bool, error) {
	d, err := b.dims()
	return d.v, err
}

// HasT reports whether the box has a time extent.
func (b *STBox) HasT() (bool, error) {
	d, err := b.dims()
	return d.ok, err
}

// ExpandSpace returns the box grown by d on every spatial side.
func (b *STBox) ExpandSpace(d float64) (*STBox, error) {
	p, err := ownerQuery(b, "ExpandSpace", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.STBoxExpandSpace(p, d)
	})
	if err != nil {
		return nil, err
	}
	return wrapSTBox(p)
}

// Timespan returns the time extent.
func (b *STBox) Timespan() (*TstzSpan, error) {
	p, err := ownerQuery(b, "Timespan", backend.STBoxToTstzSpan)
	if err != nil {
		return nil, err
	}
	return wrapSpan[time.Time](p)
}

// Union returns the smallest box containing both.
func (b *STBox) Union(other *STBox) (*STBox, error) {
	if other == nil {
		return nil, ErrReleased
	}
	p, err := ownerPair(b, other, "Union", backend.STBoxUnion)
	if err != nil {
		return nil, err
	}
	return wrapSTBox(p)
}

// Intersection returns the common part of both boxes. Disjoint boxes
// yield ErrEmpty.
func (b *STBox) Intersection(other *STBox) (*STBox, error) {
	if other == nil {
		return nil, ErrReleased
	}
	p, err := ownerPair(b, other, "Intersection", backend.STBoxIntersection)
	if err != nil {
		return nil, err
	}
	return wrapSTBox(p)
}

// NearestApproachDistance returns the smallest distance between the boxes.
// Boxes that share no time yield ErrEmpty.
func (b *STBox) NearestApproachDistance(other *STBox) (float64, error) {
	if other == nil {
		return 0, ErrReleased
	}
	return bound(ownerPair(b, other, "NearestApproachDistance", func(pa, pb backend.Ptr) (flagged[float64], error) {
		d, ok, err := backend.NadSTBoxSTBox(pa, pb)
		return flagged[float64]{d, ok}, err
	}))
}

// Equal reports whether both boxes are identical.
func (b *STBox) Equal(other *STBox) (bool, error) {
	if other == nil {
		return false, ErrReleased
	}
	return ownerPair(b, other, "Equal", backend.STBoxEq)
}

// WKT returns the text form with at most maxDecimals decimals.
func (b *STBox) WKT(maxDecimals int) (string, error) {
	return ownerQuery(b, "WKT", func(p backend.Ptr) (string, error) {
		return backend.STBoxOut(p, maxDecimals)
	})
}

func (b *STBox) String() string {
	s, err := b.WKT(current().maxDecimals)
	if err != nil {
		return "stbox(" + err.Error() + ")"
	}
	return s
}

// ParseTBox parses a tbox such as "TBOXFLOAT XT([1, 2],[2001-01-01, 2001-01-02])".
func ParseTBox(s string) (*TBox, error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.TBoxIn(s)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapTBox(p)
}

func (b *TBox) value(op string, upper bool) (float64, error) {
	return bound(ownerQuery(b, op, func(p backend.Ptr) (flagged[float64], error) {
		v, ok, err := backend.TBoxValue(p, upper)
		return flagged[float64]{v, ok}, err
	}))
}

// XMin returns the lower value bound. A box without values yields
// ErrEmpty.
func (b *TBox) XMin() (float64, error) { return b.value("XMin", false) }

// XMax returns the upper value bound.
func (b *TBox) XMax() (float64, error) { return b.value("XMax", true) }

func (b *TBox) time(op string, upper bool) (time.Time, error) {
	v, err := bound(ownerQuery(b, op, func(p backend.Ptr) (flagged[int64], error) {
		v, ok, err := backend.TBoxTime(p, upper)
		return flagged[int64]{v, ok}, err
	}))
	if err != nil {
		return time.Time{}, err
	}
	return fromTimestamp(v), nil
}

// TMin returns the start of the time extent.
func (b *TBox) TMin() (time.Time, error) { return b.time("TMin", false) }

// TMax returns the end of the time extent.
func (b *TBox) TMax() (time.Time, error) { return b.time("TMax", true) }

// FloatSpan returns the value extent.
func (b *TBox) FloatSpan() (*FloatSpan, error) {
	p, err := ownerQuery(b, "FloatSpan", backend.TBoxToFloatSpan)
	if err != nil {
		return nil, err
	}
	return wrapSpan[float64](p)
}

// Timespan returns the time extent.
func (b *TBox) Timespan() (*TstzSpan, error) {
	p, err := ownerQuery(b, "Timespan", backend.TBoxToTstzSpan)
	if err != nil {
		return nil, err
	}
	return wrapSpan[time.Time](p)
}

// Equal reports whether both boxes are identical.
func (b *TBox) Equal(other *TBox) (bool, error) {
	if other == nil {
		return false, ErrReleased
	}
	return ownerPair(b, other, "Equal", backend.TBoxEq)
}

// WKT returns the text form with at most maxDecimals decimals.
func (b *TBox) WKT(maxDecimals int) (string, error) {
	return ownerQuery(b, "WKT", func(p backend.Ptr) (string, error) {
		return backend.TBoxOut(p, maxDecimals)
	})
}

func (b *TBox) String() string {
	s, err := b.WKT(current().maxDecimals)
	if err != nil {
		return "tbox(" + err.Error() + ")"
	}
	return s
}
