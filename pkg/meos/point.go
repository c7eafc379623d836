package meos

import (
	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

// Length returns the distance travelled by a temporal point. It is zero
// for instants and discrete sequences.
func Length(t *TPoint) (float64, error) {
	return query(t, "Length", backend.TPointLength)
}

// CumulativeLength returns the distance travelled up to each instant.
func CumulativeLength(t *TPoint) (*TFloat, error) {
	return derive[*Geometry, float64](t, "CumulativeLength", backend.TPointCumulativeLength)
}

// Speed returns the speed of a temporal point in units per second.
func Speed(t *TPoint) (*TFloat, error) {
	return derive[*Geometry, float64](t, "Speed", backend.TPointSpeed)
}

func geometryResult(t *TPoint, op string, fn func(backend.Ptr) (backend.Ptr, error)) (*Geometry, error) {
	p, err := query(t, op, fn)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapGeometry(p, t.IsGeography()), nil
}

// Trajectory returns the path traced by a temporal point.
func Trajectory(t *TPoint) (*Geometry, error) {
	return geometryResult(t, "Trajectory", backend.TPointTrajectory)
}

// TWCentroid returns the time weighted centroid of a temporal point.
func TWCentroid(t *TPoint) (*Geometry, error) {
	return geometryResult(t, "TWCentroid", backend.TPointTWCentroid)
}

// SRID returns the spatial reference identifier of a temporal point.
func SRID(t *TPoint) (int, error) {
	return query(t, "SRID", backend.TPointSRID)
}

// WithSRID returns a copy of t with the SRID set, without transforming
// coordinates.
func WithSRID(t *TPoint, srid int) (*TPoint, error) {
	return derive[*Geometry, *Geometry](t, "WithSRID", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TPointSetSRID(p, srid)
	})
}

// Transform reprojects t to srid. Both reference systems must be known to
// the native library.
func Transform(t *TPoint, srid int) (*TPoint, error) {
	return derive[*Geometry, *Geometry](t, "Transform", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TPointTransform(p, srid)
	})
}

// RoundPoints returns a copy of t with coordinates rounded to maxDecimals
// decimals.
func RoundPoints(t *TPoint, maxDecimals int) (*TPoint, error) {
	return derive[*Geometry, *Geometry](t, "RoundPoints", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TPointRound(p, maxDecimals)
	})
}

// ToSTBox returns the spatiotemporal bounding box of a temporal point.
func ToSTBox(t *TPoint) (*STBox, error) {
	p, err := query(t, "ToSTBox", backend.TPointToSTBox)
	if err != nil {
		return nil, err
	}
	return wrapSTBox(p)
}

// Direction returns the azimuth in radians from the first to the last
// position. A point that never moves yields ErrEmpty.
func Direction(t *TPoint) (float64, error) {
	type res struct {
		v  float64
		ok bool
	}
	r, err := query(t, "Direction", func(p backend.Ptr) (res, error) {
		v, ok, err := backend.TPointDirection(p)
		return res{v, ok}, err
	})
	if err != nil {
		return 0, err
	}
	if !r.ok {
		return 0, ErrEmpty
	}
	return r.v, nil
}

func withGeo[R any](t *TPoint, g *Geometry, op string, fn func(tp, gp backend.Ptr) (R, error)) (R, error) {
	var zero R
	gp, unpinG, err := g.pin()
	if err != nil {
		return zero, err
	}
	defer unpinG()
	out, err := query(t, op, func(p backend.Ptr) (R, error) {
		return fn(p, gp)
	})
	return out, err
}

func adoptPoint(p backend.Ptr, err error) (*TPoint, error) {
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapTemporal[*Geometry](p), nil
}

func adoptTFloat(p backend.Ptr, err error) (*TFloat, error) {
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapTemporal[float64](p), nil
}

func adoptTBool(p backend.Ptr, err error) (*TBool, error) {
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapTemporal[bool](p), nil
}

// NearestApproachDistanceGeo returns the smallest distance between t and
// a geometry.
func NearestApproachDistanceGeo(t *TPoint, g *Geometry) (float64, error) {
	type res struct {
		v  float64
		ok bool
	}
	r, err := withGeo(t, g, "NearestApproachDistanceGeo", func(tp, gp backend.Ptr) (res, error) {
		v, ok, err := backend.NadTPointGeo(tp, gp)
		return res{v, ok}, err
	})
	if err != nil {
		return 0, err
	}
	if !r.ok {
		return 0, ErrEmpty
	}
	return r.v, nil
}

// NearestApproachInstant returns the instant of a where it comes closest
// to b.
func NearestApproachInstant(a, b *TPoint) (*TPoint, error) {
	return derive2[*Geometry, *Geometry, *Geometry](a, b, "NearestApproachInstant", backend.NaiTPointTPoint)
}

// PointDistance returns the distance between two temporal points over
// their common time.
func PointDistance(a, b *TPoint) (*TFloat, error) {
	return derive2[*Geometry, *Geometry, float64](a, b, "PointDistance", backend.DistanceTPointTPoint)
}

// DistanceToPoint returns the distance between t and a fixed point.
func DistanceToPoint(t *TPoint, g *Geometry) (*TFloat, error) {
	return adoptTFloat(withGeo(t, g, "DistanceToPoint", backend.DistanceTPointPoint))
}

// ShortestLine returns the line connecting a and b where they come
// closest.
func ShortestLine(a, b *TPoint) (*Geometry, error) {
	pa, pb, unpin, err := pair(a, b)
	if err != nil {
		return nil, err
	}
	defer unpin()
	p, err := backend.ShortestLineTPointTPoint(pa, pb)
	if err != nil {
		return nil, callErr("ShortestLine", err)
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapGeometry(p, a.IsGeography()), nil
}

// WithinDistance returns where a and b are at most dist apart.
func WithinDistance(a, b *TPoint, dist float64) (*TBool, error) {
	return derive2[*Geometry, *Geometry, bool](a, b, "WithinDistance", func(pa, pb backend.Ptr) (backend.Ptr, error) {
		return backend.TDWithinTPointTPoint(pa, pb, dist)
	})
}

// Intersects returns where t intersects g.
func Intersects(t *TPoint, g *Geometry) (*TBool, error) {
	return adoptTBool(withGeo(t, g, "Intersects", backend.TIntersectsTPointGeo))
}

// Contains returns where g contains t. A point on the boundary of g is not
// contained.
func Contains(g *Geometry, t *TPoint) (*TBool, error) {
	return adoptTBool(withGeo(t, g, "Contains", backend.TContainsGeoTPoint))
}

// Disjoint returns where t and g share no point.
func Disjoint(t *TPoint, g *Geometry) (*TBool, error) {
	return adoptTBool(withGeo(t, g, "Disjoint", backend.TDisjointTPointGeo))
}

// Touches returns where t lies on the boundary of g.
func Touches(t *TPoint, g *Geometry) (*TBool, error) {
	return adoptTBool(withGeo(t, g, "Touches", backend.TTouchesTPointGeo))
}

// WithinDistanceGeo returns where t is at most dist from g.
func WithinDistanceGeo(t *TPoint, g *Geometry, dist float64) (*TBool, error) {
	return adoptTBool(withGeo(t, g, "WithinDistanceGeo", func(tp, gp backend.Ptr) (backend.Ptr, error) {
		return backend.TDWithinTPointGeo(tp, gp, dist)
	}))
}

// EverIntersects reports whether t intersects g at some instant.
func EverIntersects(t *TPoint, g *Geometry) (bool, error) {
	return withGeo(t, g, "EverIntersects", backend.EIntersectsTPointGeo)
}

// AtGeometry restricts t to the instants where it lies inside g.
func AtGeometry(t *TPoint, g *Geometry) (*TPoint, error) {
	return adoptPoint(withGeo(t, g, "AtGeometry", backend.TPointAtGeom))
}

// MinusGeometry restricts t to the instants where it lies outside g.
func MinusGeometry(t *TPoint, g *Geometry) (*TPoint, error) {
	return adoptPoint(withGeo(t, g, "MinusGeometry", backend.TPointMinusGeom))
}

// AtPoint restricts t to the instants where it is at the point g.
func AtPoint(t *TPoint, g *Geometry) (*TPoint, error) {
	return adoptPoint(withGeo(t, g, "AtPoint", backend.TPointAtValue))
}
