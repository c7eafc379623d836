package meos

import (
	"encoding/hex"
	"strconv"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// Geometry is an owned PostGIS geometry or geography, the base value of
// temporal points.
type Geometry struct {
	h        *handle.Owned
	geodetic bool
}

func wrapGeometry(p backend.Ptr, geodetic bool) *Geometry {
	return &Geometry{h: handle.Adopt(handle.KindGeometry, p, backend.Free), geodetic: geodetic}
}

func (g *Geometry) pin() (backend.Ptr, func(), error) {
	if err := requireInitialized(); err != nil {
		return nil, unpinned, err
	}
	if g == nil || g.h == nil {
		return nil, unpinned, ErrReleased
	}
	p, unpin := g.h.Pin()
	if p == nil {
		return nil, unpinned, ErrReleased
	}
	return p, unpin, nil
}

func parseGeo(s string, geography bool) (*Geometry, error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.GeoIn(s, geography)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapGeometry(p, geography), nil
}

// ParseGeometry parses WKT, EWKT or hex EWKB into a geometry.
func ParseGeometry(s string) (*Geometry, error) { return parseGeo(s, false) }

// ParseGeography parses WKT, EWKT or hex EWKB into a geography.
func ParseGeography(s string) (*Geometry, error) { return parseGeo(s, true) }

// NewPoint returns a 2D point geometry. An srid of 0 leaves it unset.
func NewPoint(x, y float64, srid int) (*Geometry, error) {
	wkt := "POINT(" + strconv.FormatFloat(x, 'g', -1, 64) + " " + strconv.FormatFloat(y, 'g', -1, 64) + ")"
	if srid != 0 {
		wkt = "SRID=" + strconv.Itoa(srid) + ";" + wkt
	}
	return ParseGeometry(wkt)
}

// GeometryFromEWKB decodes extended WKB. A nonzero srid overrides the one
// in the input.
func GeometryFromEWKB(b []byte, srid int) (*Geometry, error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.GeoFromEWKB(b, srid)
	if err != nil {
		return nil, parseErr(hex.EncodeToString(b), err)
	}
	if p == nil {
		return nil, &ParseError{Input: "ewkb", Message: "no value"}
	}
	return wrapGeometry(p, false), nil
}

// Free releases the geometry. It is safe to call more than once.
func (g *Geometry) Free() {
	if g != nil {
		g.h.Free()
	}
}

// Alive reports whether g still owns its native value.
func (g *Geometry) Alive() bool { return g != nil && g.h.Alive() }

// IsGeography reports whether g uses geodetic coordinates.
func (g *Geometry) IsGeography() bool { return g.geodetic }

// WKT returns the well-known text with at most precision decimals.
func (g *Geometry) WKT(precision int) (string, error) {
	return g.text("WKT", precision, false)
}

// EWKT is WKT prefixed with the SRID.
func (g *Geometry) EWKT(precision int) (string, error) {
	return g.text("EWKT", precision, true)
}

func (g *Geometry) text(op string, precision int, extended bool) (string, error) {
	p, unpin, err := g.pin()
	if err != nil {
		return "", err
	}
	defer unpin()
	s, err := backend.GeoAsText(p, precision, extended)
	if err != nil {
		return "", callErr(op, err)
	}
	return s, nil
}

// EWKB returns little endian extended WKB.
func (g *Geometry) EWKB() ([]byte, error) {
	p, unpin, err := g.pin()
	if err != nil {
		return nil, err
	}
	defer unpin()
	b, err := backend.GeoAsEWKB(p, "NDR")
	if err != nil {
		return nil, callErr("EWKB", err)
	}
	return b, nil
}

// Same reports whether g and other have the same points.
func (g *Geometry) Same(other *Geometry) (bool, error) {
	pa, unpinA, err := g.pin()
	if err != nil {
		return false, err
	}
	defer unpinA()
	pb, unpinB, err := other.pin()
	if err != nil {
		return false, err
	}
	defer unpinB()
	same, err := backend.GeoSame(pa, pb)
	return same, callErr("Same", err)
}

// String returns the EWKT with the configured number of decimals.
func (g *Geometry) String() string {
	s, err := g.EWKT(current().maxDecimals)
	if err != nil {
		return "geometry(" + err.Error() + ")"
	}
	return s
}
