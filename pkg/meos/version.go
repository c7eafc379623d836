package meos

import "github.com/mobilitydb/meos-go/pkg/meos/internal/backend"

var (
	Version       = "v0.0.0-in-progress"
	NativePinned  = "MEOS 1.2"
	NativeLibrary = "libmeos"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version reported by the linked native library
// once initialized; otherwise it falls back to the pinned API version.
func NativeVersion() string {
	if v := backend.Version(); v != "" {
		return v
	}
	return NativePinned
}

// NativeBuilt reports whether the binary links the native library.
func NativeBuilt() bool {
	return backend.Built()
}
