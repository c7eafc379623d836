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

func stb(p Ptr) *C.STBox { return (*C.STBox)(p) }
func tbx(p Ptr) *C.TBox  { return (*C.TBox)(p) }

// STBoxIn parses an stbox. Convention: null.
func STBoxIn(s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return callPtr("stbox_in", func() unsafe.Pointer {
		return unsafe.Pointer(C.stbox_in(cs))
	})
}

// STBoxOut formats an stbox. Convention: null.
func STBoxOut(p Ptr, maxdd int) (string, error) {
	s, err := call("stbox_out", func() *C.char {
		return C.stbox_out(stb(p), C.int(maxdd))
	})
	out := takeString(s)
	return out, err
}

// STBoxEq compares two boxes.
func STBoxEq(a, b Ptr) (bool, error) {
	return call("stbox_eq", func() bool {
		return bool(C.stbox_eq(stb(a), stb(b)))
	})
}

// STBoxCoord returns a spatial bound. Convention: flag; false without
// error means the box has no spatial dimension.
func STBoxCoord(p Ptr, c BoxCoord) (float64, bool, error) {
	var out C.double
	ok, err := call("stbox_coord", func() bool {
		switch c {
		case CoordXMax:
			return bool(C.stbox_xmax(stb(p), &out))
		case CoordYMin:
			return bool(C.stbox_ymin(stb(p), &out))
		case CoordYMax:
			return bool(C.stbox_ymax(stb(p), &out))
		default:
			return bool(C.stbox_xmin(stb(p), &out))
		}
	})
	return float64(out), ok, err
}

// STBoxTime returns the lower or upper time bound. Convention: flag.
func STBoxTime(p Ptr, upper bool) (int64, bool, error) {
	var out C.TimestampTz
	ok, err := call("stbox_time", func() bool {
		if upper {
			return bool(C.stbox_tmax(stb(p), &out))
		}
		return bool(C.stbox_tmin(stb(p), &out))
	})
	return int64(out), ok, err
}

// STBoxDims reports which dimensions the box has.
func STBoxDims(p Ptr) (hasX, hasT bool, err error) {
	type pair struct{ x, t bool }
	r, err := call("stbox_dims", func() pair {
		return pair{bool(C.stbox_hasx(stb(p))), bool(C.stbox_hast(stb(p)))}
	})
	return r.x, r.t, err
}

// STBoxExpandSpace grows the spatial extent by d. Convention: null.
func STBoxExpandSpace(p Ptr, d float64) (Ptr, error) {
	return callPtr("stbox_expand_space", func() unsafe.Pointer {
		return unsafe.Pointer(C.stbox_expand_space(stb(p), C.double(d)))
	})
}

// STBoxToTstzSpan returns the time extent. Convention: null.
func STBoxToTstzSpan(p Ptr) (Ptr, error) {
	return callPtr("stbox_to_tstzspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.stbox_to_tstzspan(stb(p)))
	})
}

// STBoxUnion returns the bounding box of both. Convention: null.
func STBoxUnion(a, b Ptr) (Ptr, error) {
	return callPtr("union_stbox_stbox", func() unsafe.Pointer {
		return unsafe.Pointer(C.union_stbox_stbox(stb(a), stb(b), C.bool(false)))
	})
}

// STBoxIntersection intersects two boxes. Convention: null; a null without
// error means the boxes are disjoint.
func STBoxIntersection(a, b Ptr) (Ptr, error) {
	return callPtr("intersection_stbox_stbox", func() unsafe.Pointer {
		return unsafe.Pointer(C.intersection_stbox_stbox(stb(a), stb(b)))
	})
}

// NadSTBoxSTBox returns the minimum distance between boxes.
// Convention: distance.
func NadSTBoxSTBox(a, b Ptr) (float64, bool, error) {
	d, err := call("nad_stbox_stbox", func() float64 {
		return float64(C.nad_stbox_stbox(stb(a), stb(b)))
	})
	return d, err == nil && d >= 0, err
}

// TBoxIn parses a tbox. Convention: null.
func TBoxIn(s string) (Ptr, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return callPtr("tbox_in", func() unsafe.Pointer {
		return unsafe.Pointer(C.tbox_in(cs))
	})
}

// TBoxOut formats a tbox. Convention: null.
func TBoxOut(p Ptr, maxdd int) (string, error) {
	s, err := call("tbox_out", func() *C.char {
		return C.tbox_out(tbx(p), C.int(maxdd))
	})
	out := takeString(s)
	return out, err
}

// TBoxEq compares two boxes.
func TBoxEq(a, b Ptr) (bool, error) {
	return call("tbox_eq", func() bool {
		return bool(C.tbox_eq(tbx(a), tbx(b)))
	})
}

// TBoxValue returns the lower or upper value bound. Convention: flag.
func TBoxValue(p Ptr, upper bool) (float64, bool, error) {
	var out C.double
	ok, err := call("tbox_value", func() bool {
		if upper {
			return bool(C.tbox_xmax(tbx(p), &out))
		}
		return bool(C.tbox_xmin(tbx(p), &out))
	})
	return float64(out), ok, err
}

// TBoxTime returns the lower or upper time bound. Convention: flag.
func TBoxTime(p Ptr, upper bool) (int64, bool, error) {
	var out C.TimestampTz
	ok, err := call("tbox_time", func() bool {
		if upper {
			return bool(C.tbox_tmax(tbx(p), &out))
		}
		return bool(C.tbox_tmin(tbx(p), &out))
	})
	return int64(out), ok, err
}

// TBoxToFloatSpan returns the value extent. Convention: null.
func TBoxToFloatSpan(p Ptr) (Ptr, error) {
	return callPtr("tbox_to_floatspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.tbox_to_floatspan(tbx(p)))
	})
}

// TBoxToTstzSpan returns the time extent. Convention: null.
func TBoxToTstzSpan(p Ptr) (Ptr, error) {
	return callPtr("tbox_to_tstzspan", func() unsafe.Pointer {
		return unsafe.Pointer(C.tbox_to_tstzspan(tbx(p)))
	})
}
