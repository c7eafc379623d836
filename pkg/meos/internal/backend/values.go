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

func (s ValueSel) suffix() string {
	switch s {
	case ValueEnd:
		return "_end_value"
	case ValueMin:
		return "_min_value"
	case ValueMax:
		return "_max_value"
	default:
		return "_start_value"
	}
}

// takeText converts a malloc'd text to a Go string and frees it.
func takeText(t *C.text) string {
	if t == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(t))
	return takeString(C.text2cstring(t))
}

// TBoolValue returns the start or end value. Min and max are not defined
// for booleans.
func TBoolValue(p Ptr, sel ValueSel) (bool, error) {
	op := "tbool" + sel.suffix()
	return call(op, func() bool {
		switch sel {
		case ValueStart:
			return bool(C.tbool_start_value(tp(p)))
		case ValueEnd:
			return bool(C.tbool_end_value(tp(p)))
		default:
			capture(LevelError, -1, "tbool has no "+sel.suffix()[1:])
			return false
		}
	})
}

// TIntValue returns a scalar value of a tint.
func TIntValue(p Ptr, sel ValueSel) (int, error) {
	return call("tint"+sel.suffix(), func() int {
		switch sel {
		case ValueEnd:
			return int(C.tint_end_value(tp(p)))
		case ValueMin:
			return int(C.tint_min_value(tp(p)))
		case ValueMax:
			return int(C.tint_max_value(tp(p)))
		default:
			return int(C.tint_start_value(tp(p)))
		}
	})
}

// TFloatValue returns a scalar value of a tfloat.
func TFloatValue(p Ptr, sel ValueSel) (float64, error) {
	return call("tfloat"+sel.suffix(), func() float64 {
		switch sel {
		case ValueEnd:
			return float64(C.tfloat_end_value(tp(p)))
		case ValueMin:
			return float64(C.tfloat_min_value(tp(p)))
		case ValueMax:
			return float64(C.tfloat_max_value(tp(p)))
		default:
			return float64(C.tfloat_start_value(tp(p)))
		}
	})
}

// TTextValue returns a scalar value of a ttext. Convention: null.
func TTextValue(p Ptr, sel ValueSel) (string, error) {
	t, err := call("ttext"+sel.suffix(), func() *C.text {
		switch sel {
		case ValueEnd:
			return C.ttext_end_value(tp(p))
		case ValueMin:
			return C.ttext_min_value(tp(p))
		case ValueMax:
			return C.ttext_max_value(tp(p))
		default:
			return C.ttext_start_value(tp(p))
		}
	})
	out := takeText(t)
	return out, err
}

// TPointValue returns the start or end point as a geometry.
// Convention: null.
func TPointValue(p Ptr, sel ValueSel) (Ptr, error) {
	return callPtr("tpoint"+sel.suffix(), func() unsafe.Pointer {
		switch sel {
		case ValueStart:
			return unsafe.Pointer(C.tpoint_start_value(tp(p)))
		case ValueEnd:
			return unsafe.Pointer(C.tpoint_end_value(tp(p)))
		default:
			capture(LevelError, -1, "tpoint has no "+sel.suffix()[1:])
			return nil
		}
	})
}

// TBoolValueAt returns the value at t. Convention: flag.
func TBoolValueAt(p Ptr, t int64, strict bool) (bool, bool, error) {
	var out C.bool
	ok, err := call("tbool_value_at_timestamptz", func() bool {
		return bool(C.tbool_value_at_timestamptz(tp(p), C.TimestampTz(t), C.bool(strict), &out))
	})
	return bool(out), ok, err
}

// TIntValueAt returns the value at t. Convention: flag.
func TIntValueAt(p Ptr, t int64, strict bool) (int, bool, error) {
	var out C.int
	ok, err := call("tint_value_at_timestamptz", func() bool {
		return bool(C.tint_value_at_timestamptz(tp(p), C.TimestampTz(t), C.bool(strict), &out))
	})
	return int(out), ok, err
}

// TFloatValueAt returns the value at t. Convention: flag.
func TFloatValueAt(p Ptr, t int64, strict bool) (float64, bool, error) {
	var out C.double
	ok, err := call("tfloat_value_at_timestamptz", func() bool {
		return bool(C.tfloat_value_at_timestamptz(tp(p), C.TimestampTz(t), C.bool(strict), &out))
	})
	return float64(out), ok, err
}

// TTextValueAt returns the value at t. Convention: flag.
func TTextValueAt(p Ptr, t int64, strict bool) (string, bool, error) {
	var out *C.text
	ok, err := call("ttext_value_at_timestamptz", func() bool {
		return bool(C.ttext_value_at_timestamptz(tp(p), C.TimestampTz(t), C.bool(strict), &out))
	})
	return takeText(out), ok, err
}

// TPointValueAt returns the point at t. Convention: flag.
func TPointValueAt(p Ptr, t int64, strict bool) (Ptr, bool, error) {
	var out *C.GSERIALIZED
	ok, err := call("tpoint_value_at_timestamptz", func() bool {
		return bool(C.tpoint_value_at_timestamptz(tp(p), C.TimestampTz(t), C.bool(strict), &out))
	})
	if err != nil || !ok {
		Free(unsafe.Pointer(out))
		return nil, false, err
	}
	return unsafe.Pointer(out), true, nil
}

// TBoolValues returns the distinct values. Convention: null.
func TBoolValues(p Ptr) ([]bool, error) {
	var count C.int
	arr, err := call("tbool_values", func() *C.bool {
		return C.tbool_values(tp(p), &count)
	})
	if arr == nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(arr))
	if err != nil {
		return nil, err
	}
	view := unsafe.Slice(arr, int(count))
	out := make([]bool, len(view))
	for i, v := range view {
		out[i] = bool(v)
	}
	return out, nil
}

// TIntValues returns the distinct values. Convention: null.
func TIntValues(p Ptr) ([]int, error) {
	var count C.int
	arr, err := call("tint_values", func() *C.int {
		return C.tint_values(tp(p), &count)
	})
	if arr == nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(arr))
	if err != nil {
		return nil, err
	}
	view := unsafe.Slice(arr, int(count))
	out := make([]int, len(view))
	for i, v := range view {
		out[i] = int(v)
	}
	return out, nil
}

// TFloatValues returns the distinct values. Convention: null.
func TFloatValues(p Ptr) ([]float64, error) {
	var count C.int
	arr, err := call("tfloat_values", func() *C.double {
		return C.tfloat_values(tp(p), &count)
	})
	if arr == nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(arr))
	if err != nil {
		return nil, err
	}
	view := unsafe.Slice(arr, int(count))
	out := make([]float64, len(view))
	for i, v := range view {
		out[i] = float64(v)
	}
	return out, nil
}

// TTextValues returns the distinct values. Convention: null.
func TTextValues(p Ptr) ([]string, error) {
	var count C.int
	arr, err := call("ttext_values", func() **C.text {
		return C.ttext_values(tp(p), &count)
	})
	if arr == nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(arr))

	view := unsafe.Slice(arr, int(count))
	out := make([]string, len(view))
	for i, v := range view {
		out[i] = takeText(v)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
