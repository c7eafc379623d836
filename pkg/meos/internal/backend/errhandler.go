//go:build cgo && meos

package backend

// This file only exports the error handler; cgo forbids C definitions in a
// preamble next to //export.

/*
#include <stdlib.h>
*/
import "C"

//export meosGoErrorHandler
func meosGoErrorHandler(level, code C.int, msg *C.char) {
	capture(int(level), int(code), C.GoString(msg))
}
