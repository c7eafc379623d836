// Package orbgeo converts between github.com/paulmach/orb geometries and
// meos geometries and temporal points. Conversion goes through EWKB, so
// only the 2D coordinates orb models are carried over.
package orbgeo

import (
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

// ErrNilGeometry is returned when FromOrb is given no geometry.
var ErrNilGeometry = errors.New("orbgeo: nil geometry")

// FromOrb returns g as a meos geometry with the given SRID.
func FromOrb(g orb.Geometry, srid int) (*meos.Geometry, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	data, err := ewkb.Marshal(g, srid)
	if err != nil {
		return nil, fmt.Errorf("orbgeo: encode %s: %w", g.GeoJSONType(), err)
	}
	return meos.GeometryFromEWKB(data, srid)
}

// ToOrb returns g as an orb geometry together with its SRID.
func ToOrb(g *meos.Geometry) (orb.Geometry, int, error) {
	data, err := g.EWKB()
	if err != nil {
		return nil, 0, err
	}
	out, srid, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, 0, fmt.Errorf("orbgeo: decode: %w", err)
	}
	return out, srid, nil
}

// Trajectory returns the path of tp as an orb geometry: a point for a
// stationary value, a line string or a collection otherwise.
func Trajectory(tp *meos.TPoint) (orb.Geometry, int, error) {
	g, err := meos.Trajectory(tp)
	if err != nil {
		return nil, 0, err
	}
	defer g.Free()
	return ToOrb(g)
}

// Fix is a position observed at a point in time.
type Fix struct {
	Point orb.Point
	Time  time.Time
}

// NewTPoint builds a temporal geometry point from fixes in strictly
// increasing time order.
func NewTPoint(fixes []Fix, srid int, interp meos.Interpolation) (*meos.TPoint, error) {
	samples := make([]meos.Sample[*meos.Geometry], 0, len(fixes))
	defer func() {
		for _, s := range samples {
			s.Value.Free()
		}
	}()
	for _, f := range fixes {
		g, err := FromOrb(f.Point, srid)
		if err != nil {
			return nil, err
		}
		samples = append(samples, meos.Sample[*meos.Geometry]{Value: g, Time: f.Time})
	}
	return meos.NewTPointSequence(samples, interp)
}

// Bound returns the spatial extent of b.
func Bound(b *meos.STBox) (orb.Bound, error) {
	var (
		out orb.Bound
		err error
	)
	if out.Min[0], err = b.XMin(); err != nil {
		return orb.Bound{}, err
	}
	if out.Min[1], err = b.YMin(); err != nil {
		return orb.Bound{}, err
	}
	if out.Max[0], err = b.XMax(); err != nil {
		return orb.Bound{}, err
	}
	if out.Max[1], err = b.YMax(); err != nil {
		return orb.Bound{}, err
	}
	return out, nil
}
