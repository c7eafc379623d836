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

func gs(p Ptr) *C.GSERIALIZED { return (*C.GSERIALIZED)(p) }

// TPointLength returns the length of the trajectory.
func TPointLength(p Ptr) (float64, error) {
	return call("tpoint_length", func() float64 {
		return float64(C.tpoint_length(tp(p)))
	})
}

// TPointCumulativeLength returns the length travelled so far as a tfloat.
// Convention: null.
func TPointCumulativeLength(p Ptr) (Ptr, error) {
	return callPtr("tpoint_cumulative_length", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_cumulative_length(tp(p)))
	})
}

// TPointSpeed returns the speed as a tfloat. Convention: null.
func TPointSpeed(p Ptr) (Ptr, error) {
	return callPtr("tpoint_speed", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_speed(tp(p)))
	})
}

// TPointTrajectory returns the traversed geometry. Convention: null.
func TPointTrajectory(p Ptr) (Ptr, error) {
	return callPtr("tpoint_trajectory", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_trajectory(tp(p)))
	})
}

// TPointSRID returns the spatial reference identifier.
func TPointSRID(p Ptr) (int, error) {
	return call("tpoint_srid", func() int {
		return int(C.tpoint_srid(tp(p)))
	})
}

// TPointSetSRID returns a copy with a new SRID. Convention: null.
func TPointSetSRID(p Ptr, srid int) (Ptr, error) {
	return callPtr("tpoint_set_srid", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_set_srid(tp(p), C.int32(srid)))
	})
}

// TPointToSTBox returns the bounding box. Convention: null.
func TPointToSTBox(p Ptr) (Ptr, error) {
	return callPtr("tpoint_to_stbox", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_to_stbox(tp(p)))
	})
}

// TPointDirection returns the azimuth between start and end.
// Convention: flag.
func TPointDirection(p Ptr) (float64, bool, error) {
	var out C.double
	ok, err := call("tpoint_direction", func() bool {
		return bool(C.tpoint_direction(tp(p), &out))
	})
	return float64(out), ok, err
}

// TPointTWCentroid returns the time-weighted centroid. Convention: null.
func TPointTWCentroid(p Ptr) (Ptr, error) {
	return callPtr("tpoint_twcentroid", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_twcentroid(tp(p)))
	})
}

// NadTPointTPoint returns the nearest approach distance.
// Convention: distance.
func NadTPointTPoint(a, b Ptr) (float64, bool, error) {
	d, err := call("nad_tpoint_tpoint", func() float64 {
		return float64(C.nad_tpoint_tpoint(tp(a), tp(b)))
	})
	return d, err == nil && d >= 0, err
}

// NadTPointGeo returns the nearest approach distance to a geometry.
// Convention: distance.
func NadTPointGeo(p, geo Ptr) (float64, bool, error) {
	d, err := call("nad_tpoint_geo", func() float64 {
		return float64(C.nad_tpoint_geo(tp(p), gs(geo)))
	})
	return d, err == nil && d >= 0, err
}

// NaiTPointTPoint returns the instant of the first operand at the nearest
// approach. Convention: null; a null without error means no common time.
func NaiTPointTPoint(a, b Ptr) (Ptr, error) {
	return callPtr("nai_tpoint_tpoint", func() unsafe.Pointer {
		return unsafe.Pointer(C.nai_tpoint_tpoint(tp(a), tp(b)))
	})
}

// DistanceTPointTPoint returns the temporal distance. Convention: null;
// a null without error means no common time.
func DistanceTPointTPoint(a, b Ptr) (Ptr, error) {
	return callPtr("distance_tpoint_tpoint", func() unsafe.Pointer {
		return unsafe.Pointer(C.distance_tpoint_tpoint(tp(a), tp(b)))
	})
}

// DistanceTPointPoint returns the temporal distance to a point.
// Convention: null.
func DistanceTPointPoint(p, geo Ptr) (Ptr, error) {
	return callPtr("distance_tpoint_point", func() unsafe.Pointer {
		return unsafe.Pointer(C.distance_tpoint_point(tp(p), gs(geo)))
	})
}

// ShortestLineTPointTPoint returns the line joining the nearest approach.
// Convention: null; a null without error means no common time.
func ShortestLineTPointTPoint(a, b Ptr) (Ptr, error) {
	return callPtr("shortestline_tpoint_tpoint", func() unsafe.Pointer {
		return unsafe.Pointer(C.shortestline_tpoint_tpoint(tp(a), tp(b)))
	})
}

// TDWithinTPointTPoint returns when the points are within dist as a tbool.
// Convention: null.
func TDWithinTPointTPoint(a, b Ptr, dist float64) (Ptr, error) {
	return callPtr("tdwithin_tpoint_tpoint", func() unsafe.Pointer {
		return unsafe.Pointer(C.tdwithin_tpoint_tpoint(tp(a), tp(b), C.double(dist), C.bool(false), C.bool(false)))
	})
}

// TIntersectsTPointGeo returns when the point intersects geo as a tbool.
// Convention: null.
func TIntersectsTPointGeo(p, geo Ptr) (Ptr, error) {
	return callPtr("tintersects_tpoint_geo", func() unsafe.Pointer {
		return unsafe.Pointer(C.tintersects_tpoint_geo(tp(p), gs(geo), C.bool(false), C.bool(false)))
	})
}

// EIntersectsTPointGeo tests whether the point ever intersects geo.
// Convention: code.
func EIntersectsTPointGeo(p, geo Ptr) (bool, error) {
	r, err := call("eintersects_tpoint_geo", func() int {
		return int(C.eintersects_tpoint_geo(tp(p), gs(geo)))
	})
	return codeResult("eintersects_tpoint_geo", r, err)
}

// TPointAtGeom restricts to a geometry. Convention: null; a null without
// error means the point never meets geo.
func TPointAtGeom(p, geo Ptr) (Ptr, error) {
	return callPtr("tpoint_at_geom_time", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_at_geom_time(tp(p), gs(geo), nil, nil))
	})
}

// TPointMinusGeom removes the parts inside a geometry. Convention: null.
func TPointMinusGeom(p, geo Ptr) (Ptr, error) {
	return callPtr("tpoint_minus_geom_time", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_minus_geom_time(tp(p), gs(geo), nil, nil))
	})
}

// TPointAtValue restricts to one point value. Convention: null.
func TPointAtValue(p, geo Ptr) (Ptr, error) {
	return callPtr("tpoint_at_value", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_at_value(tp(p), gs(geo)))
	})
}

// TPointTransform reprojects to srid. Convention: null.
func TPointTransform(p Ptr, srid int) (Ptr, error) {
	return callPtr("tpoint_transform", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_transform(tp(p), C.int32(srid)))
	})
}

// TPointRound rounds the coordinates to maxdd decimals. Convention: null.
func TPointRound(p Ptr, maxdd int) (Ptr, error) {
	return callPtr("tpoint_round", func() unsafe.Pointer {
		return unsafe.Pointer(C.tpoint_round(tp(p), C.int(maxdd)))
	})
}

// TContainsGeoTPoint returns when geo contains the point as a tbool.
// Convention: null.
func TContainsGeoTPoint(p, geo Ptr) (Ptr, error) {
	return callPtr("tcontains_geo_tpoint", func() unsafe.Pointer {
		return unsafe.Pointer(C.tcontains_geo_tpoint(gs(geo), tp(p), C.bool(false), C.bool(false)))
	})
}

// TDisjointTPointGeo returns when the point is disjoint from geo as a
// tbool. Convention: null.
func TDisjointTPointGeo(p, geo Ptr) (Ptr, error) {
	return callPtr("tdisjoint_tpoint_geo", func() unsafe.Pointer {
		return unsafe.Pointer(C.tdisjoint_tpoint_geo(tp(p), gs(geo), C.bool(false), C.bool(false)))
	})
}

// TTouchesTPointGeo returns when the point touches the boundary of geo as
// a tbool. Convention: null.
func TTouchesTPointGeo(p, geo Ptr) (Ptr, error) {
	return callPtr("ttouches_tpoint_geo", func() unsafe.Pointer {
		return unsafe.Pointer(C.ttouches_tpoint_geo(tp(p), gs(geo), C.bool(false), C.bool(false)))
	})
}

// TDWithinTPointGeo returns when the point is within dist of geo as a
// tbool. Convention: null.
func TDWithinTPointGeo(p, geo Ptr, dist float64) (Ptr, error) {
	return callPtr("tdwithin_tpoint_geo", func() unsafe.Pointer {
		return unsafe.Pointer(C.tdwithin_tpoint_geo(tp(p), gs(geo), C.double(dist), C.bool(false), C.bool(false)))
	})
}
