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

// GeoIn parses WKT/EWKT/HexEWKB into a geometry or geography.
// Convention: null.
func GeoIn(s string, geography bool) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	if geography {
		return callPtr("pgis_geography_in", func() unsafe.Pointer {
			return unsafe.Pointer(C.pgis_geography_in(cs, -1))
		})
	}
	return callPtr("pgis_geometry_in", func() unsafe.Pointer {
		return unsafe.Pointer(C.pgis_geometry_in(cs, -1))
	})
}

// GeoFromEWKB decodes extended WKB. Convention: null.
func GeoFromEWKB(b []byte, srid int) (Ptr, error) {
	if len(b) == 0 {
		return nil, &NativeError{Op: "geo_from_ewkb", Code: -1, Message: "empty input"}
	}
	return callPtr("geo_from_ewkb", func() unsafe.Pointer {
		return unsafe.Pointer(C.geo_from_ewkb((*C.uint8_t)(unsafe.Pointer(&b[0])), C.size_t(len(b)), C.int32(srid)))
	})
}

// GeoAsEWKB encodes extended WKB in the given byte order ("NDR" or
// "XDR"). Convention: null.
func GeoAsEWKB(p Ptr, endian string) ([]byte, error) {
	ce := C.CString(endian)
	defer C.free(unsafe.Pointer(ce))
	var size C.size_t
	buf, err := call("geo_as_ewkb", func() *C.uint8_t {
		return C.geo_as_ewkb(gs(p), ce, &size)
	})
	out := takeBytes(buf, size)
	return out, err
}

// GeoAsText formats WKT, or EWKT when extended is set. Convention: null.
func GeoAsText(p Ptr, precision int, extended bool) (string, error) {
	s, err := call("geo_as_text", func() *C.char {
		if extended {
			return C.geo_as_ewkt(gs(p), C.int(precision))
		}
		return C.geo_as_text(gs(p), C.int(precision))
	})
	out := takeString(s)
	return out, err
}

// GeoSame reports whether two geometries are equal point by point.
func GeoSame(a, b Ptr) (bool, error) {
	return call("geo_same", func() bool {
		return bool(C.geo_same(gs(a), gs(b)))
	})
}
