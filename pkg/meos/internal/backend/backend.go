//go:build cgo && meos

package backend

/*
#cgo LDFLAGS: -lmeos
#cgo linux CFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib
#cgo darwin CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo darwin LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib

#include <stdlib.h>
#include <meos.h>

extern void meosGoErrorHandler(int, int, char *);

static void go_meos_install_error_handler(void) {
	meos_initialize_error_handler((error_handler_fn) meosGoErrorHandler);
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	callMu sync.Mutex
	// native is set once meos_initialize has run; ready once a timezone
	// has also been accepted.
	native  bool
	ready   bool
	pending *NativeError
)

// capture records the first error raised during the current call. It runs
// on the calling goroutine while callMu is held.
func capture(level, code int, msg string) {
	if !classify(level, code, msg) || pending != nil {
		return
	}
	pending = &NativeError{Level: level, Code: code, Message: msg}
}

// call runs fn with the native library locked and returns the error raised
// by the handler during fn, if any.
func call[T any](op string, fn func() T) (T, error) {
	callMu.Lock()
	defer callMu.Unlock()

	var zero T
	if !ready {
		return zero, ErrNotReady
	}

	pending = nil
	out := fn()
	if pending != nil {
		err := pending
		pending = nil
		err.Op = op
		return out, err
	}
	return out, nil
}

// callPtr is call for functions that return an allocation. A result that
// comes back together with an error is released.
func callPtr(op string, fn func() unsafe.Pointer) (Ptr, error) {
	p, err := call(op, fn)
	if err != nil {
		if p != nil {
			C.free(p)
		}
		return nil, err
	}
	return p, nil
}

// Initialize brings the native library up. A timezone the library rejects
// leaves the library up but not ready; a later call only sets the timezone
// again.
func Initialize(timezone string) error {
	callMu.Lock()
	defer callMu.Unlock()

	if ready {
		return nil
	}

	if !native {
		C.meos_initialize()
		C.go_meos_install_error_handler()
		native = true
	}

	pending = nil
	ctz := C.CString(timezone)
	defer C.free(unsafe.Pointer(ctz))
	C.meos_initialize_timezone(ctz)

	if pending != nil {
		err := pending
		pending = nil
		err.Op = "meos_initialize_timezone"
		return err
	}

	ready = true
	return nil
}

// Finalize releases the native library state. Calls made afterwards fail
// with ErrNotReady.
func Finalize() {
	callMu.Lock()
	defer callMu.Unlock()

	if !native {
		return
	}
	ready = false
	native = false
	C.meos_finalize()
}

// Built reports whether the native bindings are linked in.
func Built() bool { return true }

// Version returns the version string of the native library.
func Version() string {
	callMu.Lock()
	defer callMu.Unlock()
	if !ready {
		return ""
	}
	return takeString(C.mobilitydb_version())
}

// Free releases a native allocation. Every MEOS structure handed to Go is a
// single malloc'd block.
func Free(p Ptr) {
	if p == nil {
		return
	}
	C.free(p)
}

// takeString copies a malloc'd C string and frees it.
func takeString(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(s))
	return C.GoString(s)
}

// takeBytes copies a malloc'd buffer of n bytes and frees it.
func takeBytes(p *C.uint8_t, n C.size_t) []byte {
	if p == nil {
		return nil
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoBytes(unsafe.Pointer(p), C.int(n))
}

// ptrArray copies ptrs into a malloc'd array. The caller frees it unless a
// native function takes it over.
func ptrArray(ptrs []Ptr) *unsafe.Pointer {
	size := C.size_t(len(ptrs)) * C.size_t(unsafe.Sizeof(uintptr(0)))
	arr := (*unsafe.Pointer)(C.malloc(size))
	view := unsafe.Slice(arr, len(ptrs))
	copy(view, ptrs)
	return arr
}

func cInterval(iv *Interval) *C.Interval {
	if iv == nil {
		return nil
	}
	out := (*C.Interval)(C.malloc(C.size_t(unsafe.Sizeof(C.Interval{}))))
	out.time = C.TimeOffset(iv.Micros)
	out.day = C.int32(iv.Days)
	out.month = C.int32(iv.Months)
	return out
}

func freeInterval(iv *C.Interval) {
	if iv != nil {
		C.free(unsafe.Pointer(iv))
	}
}

func takeInterval(iv *C.Interval) Interval {
	if iv == nil {
		return Interval{}
	}
	defer C.free(unsafe.Pointer(iv))
	return Interval{Micros: int64(iv.time), Days: int32(iv.day), Months: int32(iv.month)}
}
