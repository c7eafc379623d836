// Package meos is a Go binding for MEOS, the C library behind MobilityDB,
// covering temporal booleans, integers, floats, texts and points together
// with spans, span sets, sets and bounding boxes.
//
// The package never implements spatiotemporal algorithms itself; every
// operation forwards to the native library. What it adds is ownership:
// every native allocation is held by exactly one Go value, released once by
// Free or by the garbage collector, and never exposed as a bare pointer.
//
// # Lifecycle
//
// The native library must be initialized once per process before any other
// call and can be finalized once at shutdown:
//
//	if err := meos.Initialize(meos.Config{Timezone: "UTC"}); err != nil {
//		return err
//	}
//	defer meos.Finalize()
//
// Calls made before Initialize fail with ErrNotInitialized. Binaries built
// without cgo or without the meos build tag return ErrNotBuilt from
// Initialize.
//
// # Memory Management
//
// Values returned by this package (*Temporal, *Span, *STBox, *Geometry and
// so on) own native memory. Call Free when done for deterministic release;
// a finalizer frees values that become unreachable. Free is idempotent and
// methods on a freed value return ErrReleased.
//
// InstantViews returns borrowed views into a sequence. Views never free
// anything and stop working once their parent is freed; Copy turns a view
// into an owned instant.
//
// # Concurrency
//
// The native library is treated as single threaded: all native calls are
// serialised by one internal mutex, so calls do not run in parallel. Each
// call pins the values it reads, and Free waits for those calls to finish
// before releasing memory. A value may therefore be read from several
// goroutines and freed from any one of them; calls that start after Free
// return ErrReleased. A view pins its parent the same way.
//
// # Errors
//
// Parsing failures are reported as *ParseError, construction failures as
// *ConstructionError and other native failures as *NativeCallError. A
// native result that is defined to be empty, such as the distance between
// values that share no time, is reported as ErrEmpty.
package meos
