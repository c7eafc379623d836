//go:build cgo && meos

package meos

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTstzSpan(t *testing.T) {
	a, err := NewTstzSpan(utc(2001, 1, 1, 0, 0), utc(2001, 1, 3, 0, 0), true, false)
	require.NoError(t, err)
	defer a.Free()
	b, err := ParseTstzSpan("[2001-01-02, 2001-01-05]")
	require.NoError(t, err)
	defer b.Free()

	lo, err := a.Lower()
	require.NoError(t, err)
	assert.True(t, lo.Equal(utc(2001, 1, 1, 0, 0)))
	inc, err := a.UpperInc()
	require.NoError(t, err)
	assert.False(t, inc)

	overlaps, err := a.Overlaps(b)
	require.NoError(t, err)
	assert.True(t, overlaps)

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	defer inter.Free()
	d, err := Duration(inter)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	far, err := ParseTstzSpan("[2002-01-01, 2002-01-02]")
	require.NoError(t, err)
	defer far.Free()
	_, err = a.Intersection(far)
	require.ErrorIs(t, err, ErrEmpty)

	union, err := a.Union(far)
	require.NoError(t, err)
	defer union.Free()
	n, err := union.NumSpans()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	total, err := TotalDuration(union, false)
	require.NoError(t, err)
	assert.Equal(t, 3*24*time.Hour, total)

	moved, err := ShiftScaleSpan(a, 24*time.Hour, 0)
	require.NoError(t, err)
	defer moved.Free()
	lo, err = moved.Lower()
	require.NoError(t, err)
	assert.True(t, lo.Equal(utc(2001, 1, 2, 0, 0)))
}

func TestIntSpanCanonical(t *testing.T) {
	s, err := NewIntSpan(1, 5, true, true)
	require.NoError(t, err)
	defer s.Free()

	hi, err := s.Upper()
	require.NoError(t, err)
	assert.Equal(t, 6, hi)
	assert.Equal(t, "[1, 6)", s.String())

	parsed, err := ParseIntSpan("[1, 6)")
	require.NoError(t, err)
	defer parsed.Free()
	eq, err := s.Equal(parsed)
	require.NoError(t, err)
	assert.True(t, eq)

	inner, err := NewIntSpan(2, 3, true, true)
	require.NoError(t, err)
	defer inner.Free()
	contains, err := s.Contains(inner)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestFloatSpanSet(t *testing.T) {
	ss, err := ParseFloatSpanSet("{[1, 2], [4, 5]}")
	require.NoError(t, err)
	defer ss.Free()

	first, err := ss.StartSpan()
	require.NoError(t, err)
	defer first.Free()
	second, err := ss.SpanN(2)
	require.NoError(t, err)
	defer second.Free()
	lo, err := second.Lower()
	require.NoError(t, err)
	assert.Equal(t, 4.0, lo)

	_, err = ss.SpanN(3)
	assert.Error(t, err)

	asSet, err := first.ToSpanSet()
	require.NoError(t, err)
	defer asSet.Free()
	eq, err := asSet.Equal(ss)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestSets(t *testing.T) {
	s, err := NewIntSet(3, 1, 3, 2)
	require.NoError(t, err)
	defer s.Free()
	n, err := s.NumValues()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "{1, 2, 3}", s.String())

	ts, err := NewTstzSet(utc(2001, 1, 1, 0, 0), utc(2001, 1, 2, 0, 0))
	require.NoError(t, err)
	defer ts.Free()
	n, err = ts.NumValues()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = NewFloatSet()
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
}

func TestSTBox(t *testing.T) {
	tp, err := ParseTGeomPoint("[POINT(1 1)@2001-01-01, POINT(3 4)@2001-01-02]")
	require.NoError(t, err)
	defer tp.Free()

	box, err := ToSTBox(tp)
	require.NoError(t, err)
	defer box.Free()

	xmin, err := box.XMin()
	require.NoError(t, err)
	assert.Equal(t, 1.0, xmin)
	ymax, err := box.YMax()
	require.NoError(t, err)
	assert.Equal(t, 4.0, ymax)
	tmax, err := box.TMax()
	require.NoError(t, err)
	assert.True(t, tmax.Equal(utc(2001, 1, 2, 0, 0)))

	hasX, err := box.HasX()
	require.NoError(t, err)
	hasT, err := box.HasT()
	require.NoError(t, err)
	assert.True(t, hasX)
	assert.True(t, hasT)

	grown, err := box.ExpandSpace(1)
	require.NoError(t, err)
	defer grown.Free()
	xmin, err = grown.XMin()
	require.NoError(t, err)
	assert.Equal(t, 0.0, xmin)

	timeOnly, err := ParseSTBox("STBOX T([2001-01-01, 2001-01-02])")
	require.NoError(t, err)
	defer timeOnly.Free()
	_, err = timeOnly.XMin()
	require.ErrorIs(t, err, ErrEmpty)

	span, err := timeOnly.Timespan()
	require.NoError(t, err)
	defer span.Free()

	parsed, err := ParseSTBox(box.String())
	require.NoError(t, err)
	defer parsed.Free()
	eq, err := box.Equal(parsed)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestTBox(t *testing.T) {
	box, err := ParseTBox("TBOXFLOAT XT([1, 2],[2001-01-01, 2001-01-02])")
	require.NoError(t, err)
	defer box.Free()

	lo, err := box.XMin()
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)
	tmin, err := box.TMin()
	require.NoError(t, err)
	assert.True(t, tmin.Equal(utc(2001, 1, 1, 0, 0)))

	fs, err := box.FloatSpan()
	require.NoError(t, err)
	defer fs.Free()
	hi, err := fs.Upper()
	require.NoError(t, err)
	assert.Equal(t, 2.0, hi)
}

func TestGeometry(t *testing.T) {
	p, err := NewPoint(1.5, 2, 4326)
	require.NoError(t, err)
	defer p.Free()

	ewkt, err := p.EWKT(3)
	require.NoError(t, err)
	assert.Equal(t, "SRID=4326;POINT(1.5 2)", ewkt)

	ewkb, err := p.EWKB()
	require.NoError(t, err)
	back, err := GeometryFromEWKB(ewkb, 0)
	require.NoError(t, err)
	defer back.Free()
	same, err := p.Same(back)
	require.NoError(t, err)
	assert.True(t, same)

	geog, err := ParseGeography("POINT(4.35 50.85)")
	require.NoError(t, err)
	defer geog.Free()
	assert.True(t, geog.IsGeography())

	_, err = ParseGeometry("POINT(1")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestPointsAndGeometries(t *testing.T) {
	tp, err := NewTPointSequence([]Sample[*Geometry]{
		{Value: mustPoint(t, 0, 0), Time: utc(2001, 1, 1, 0, 0)},
		{Value: mustPoint(t, 10, 0), Time: utc(2001, 1, 1, 0, 10)},
	}, Linear)
	require.NoError(t, err)
	defer tp.Free()

	area, err := ParseGeometry("POLYGON((4 -1,6 -1,6 1,4 1,4 -1))")
	require.NoError(t, err)
	defer area.Free()

	ever, err := EverIntersects(tp, area)
	require.NoError(t, err)
	assert.True(t, ever)

	inside, err := AtGeometry(tp, area)
	require.NoError(t, err)
	defer inside.Free()
	d, err := inside.Duration(false)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)

	nad, err := NearestApproachDistanceGeo(tp, area)
	require.NoError(t, err)
	assert.Zero(t, nad)

	origin := mustPoint(t, 0, 0)
	dist, err := DistanceToPoint(tp, origin)
	require.NoError(t, err)
	defer dist.Free()
	maxD, err := dist.MaxValue()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, maxD, 1e-9)

	other, err := ParseTGeomPoint("[POINT(0 1)@2001-01-01 00:00, POINT(10 1)@2001-01-01 00:10]")
	require.NoError(t, err)
	defer other.Free()
	within, err := WithinDistance(tp, other, 2)
	require.NoError(t, err)
	defer within.Free()
	always, err := within.AlwaysEqual(true)
	require.NoError(t, err)
	assert.True(t, always)

	line, err := ShortestLine(tp, other)
	require.NoError(t, err)
	defer line.Free()

	srid, err := SRID(tp)
	require.NoError(t, err)
	assert.Zero(t, srid)
	withSRID, err := WithSRID(tp, 3857)
	require.NoError(t, err)
	defer withSRID.Free()
	srid, err = SRID(withSRID)
	require.NoError(t, err)
	assert.Equal(t, 3857, srid)

	start, err := tp.StartValue()
	require.NoError(t, err)
	defer start.Free()
	same, err := start.Same(origin)
	require.NoError(t, err)
	assert.True(t, same)
}

func mustPoint(t *testing.T, x, y float64) *Geometry {
	t.Helper()
	g, err := NewPoint(x, y, 0)
	require.NoError(t, err)
	t.Cleanup(g.Free)
	return g
}
