// Package lifecycle guards the process-wide initialization of the native
// library. The library may be initialized once, used, and finalized once;
// after finalization it cannot be brought back in the same process.
package lifecycle

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNotInitialized is returned by operations attempted before
	// Initialize succeeded or after Finalize.
	ErrNotInitialized = errors.New("meos: library not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize.
	ErrAlreadyInitialized = errors.New("meos: library already initialized")

	// ErrFinalized is returned by Initialize after Finalize.
	ErrFinalized = errors.New("meos: library finalized")
)

// State is the lifecycle position of the native library.
type State int32

const (
	Uninitialized State = iota
	Initialized
	Finalized
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// InitFunc brings the native library up with the given timezone.
type InitFunc func(timezone string) error

// FinalizeFunc tears the native library down.
type FinalizeFunc func()

// Guard serialises lifecycle transitions. Require is lock free so that
// every façade call can check the state cheaply.
type Guard struct {
	mu       sync.Mutex
	state    atomic.Int32
	init     InitFunc
	finalize FinalizeFunc
}

// New returns a Guard in the Uninitialized state.
func New(init InitFunc, finalize FinalizeFunc) *Guard {
	return &Guard{init: init, finalize: finalize}
}

// State returns the current state.
func (g *Guard) State() State {
	return State(g.state.Load())
}

// Initialize runs the init function once. A failed init leaves the guard
// Uninitialized so the caller may retry with different parameters.
func (g *Guard) Initialize(timezone string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.State() {
	case Initialized:
		return ErrAlreadyInitialized
	case Finalized:
		return ErrFinalized
	}

	if err := g.init(timezone); err != nil {
		return err
	}
	g.state.Store(int32(Initialized))
	return nil
}

// Finalize runs the finalize function if the library is initialized. It
// returns true when a transition happened; repeated calls are no-ops.
func (g *Guard) Finalize() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.State() != Initialized {
		return false
	}
	// Reject new work before tearing down.
	g.state.Store(int32(Finalized))
	g.finalize()
	return true
}

// Require returns ErrNotInitialized unless the library is usable.
func (g *Guard) Require() error {
	if g.State() != Initialized {
		return ErrNotInitialized
	}
	return nil
}
