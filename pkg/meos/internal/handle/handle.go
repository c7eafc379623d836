// Package handle tracks ownership of native MEOS allocations.
//
// Every pointer returned by the native library that the Go side must
// release is adopted into exactly one Owned value. A process-wide registry
// records the live addresses so that two owners of the same allocation, or a
// second release of an allocation, are detected instead of corrupting the
// native heap.
//
// Pointers into memory owned by another allocation (for example the instants
// inside a sequence) are represented by Borrowed views, which can never
// release anything.
package handle

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Kind identifies the native structure behind a pointer.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInstant
	KindSequence
	KindSequenceSet
	KindSpan
	KindSpanSet
	KindSet
	KindSTBox
	KindTBox
	KindGeometry
)

func (k Kind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindSequence:
		return "sequence"
	case KindSequenceSet:
		return "sequence set"
	case KindSpan:
		return "span"
	case KindSpanSet:
		return "span set"
	case KindSet:
		return "set"
	case KindSTBox:
		return "stbox"
	case KindTBox:
		return "tbox"
	case KindGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// ReleaseFunc frees one native allocation.
type ReleaseFunc func(unsafe.Pointer)

var (
	regMu sync.Mutex
	live  = map[uintptr]Kind{}

	adopted     atomic.Uint64
	released    atomic.Uint64
	transferred atomic.Uint64
)

func register(ptr unsafe.Pointer, kind Kind) {
	key := uintptr(ptr)
	regMu.Lock()
	defer regMu.Unlock()
	if prev, ok := live[key]; ok {
		panic(fmt.Sprintf("handle: %s at %#x already owned as %s", kind, key, prev))
	}
	live[key] = kind
	adopted.Add(1)
}

func unregister(ptr unsafe.Pointer, kind Kind) {
	key := uintptr(ptr)
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := live[key]; !ok {
		panic(fmt.Sprintf("handle: release of %s at %#x that is not owned", kind, key))
	}
	delete(live, key)
}

// Owned is the sole owner of one native allocation. The zero value owns
// nothing.
//
// A native call pins the allocation for its duration. Free and IntoRaw wait
// for outstanding pins, and new pins fail once a release has started.
type Owned struct {
	mu      sync.Mutex
	idle    sync.Cond
	ptr     unsafe.Pointer
	pins    int
	closing bool
	kind    Kind
	release ReleaseFunc
}

// Adopt takes ownership of ptr. It panics if ptr is nil or already owned:
// both indicate a caller that skipped the error sentinel check or kept a
// pointer it had given away.
func Adopt(kind Kind, ptr unsafe.Pointer, release ReleaseFunc) *Owned {
	if ptr == nil {
		panic("handle: adopt of nil " + kind.String())
	}
	if release == nil {
		panic("handle: adopt of " + kind.String() + " without release function")
	}

	register(ptr, kind)
	o := &Owned{ptr: ptr, kind: kind, release: release}
	o.idle.L = &o.mu
	runtime.SetFinalizer(o, (*Owned).Free)
	return o
}

func noop() {}

// Pin returns the owned address and keeps it valid until unpin is called.
// A released owner, or one being released, yields nil and a no-op unpin.
// unpin may be called more than once.
func (o *Owned) Pin() (ptr unsafe.Pointer, unpin func()) {
	if o == nil {
		return nil, noop
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ptr == nil || o.closing {
		return nil, noop
	}
	o.pins++
	var once sync.Once
	return o.ptr, func() { once.Do(o.unpin) }
}

func (o *Owned) unpin() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pins--
	if o.pins == 0 {
		o.idle.Broadcast()
	}
}

// Ptr returns the owned address without pinning it, or nil once the
// allocation has been released or transferred. The result is only safe to
// use while no other goroutine can release o; native calls use Pin.
func (o *Owned) Ptr() unsafe.Pointer {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closing {
		return nil
	}
	return o.ptr
}

// Pins returns the number of outstanding pins.
func (o *Owned) Pins() int {
	if o == nil {
		return 0
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pins
}

// Kind reports the native structure kind.
func (o *Owned) Kind() Kind {
	if o == nil {
		return KindUnknown
	}
	return o.kind
}

// Alive reports whether o still owns its allocation.
func (o *Owned) Alive() bool {
	return o.Ptr() != nil
}

// take detaches the address once every pin is gone. Only one caller gets
// it; the others, and callers on a released owner, get nil.
func (o *Owned) take() unsafe.Pointer {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ptr == nil || o.closing {
		return nil
	}
	o.closing = true
	for o.pins > 0 {
		o.idle.Wait()
	}
	ptr := o.ptr
	o.ptr = nil
	o.closing = false
	return ptr
}

// Free releases the allocation once no native call is using it. Only the
// first call has an effect. Free must not be called while the calling
// goroutine holds a pin on o.
func (o *Owned) Free() {
	if o == nil {
		return
	}
	ptr := o.take()
	if ptr == nil {
		return
	}

	unregister(ptr, o.kind)
	o.release(ptr)
	released.Add(1)
	runtime.SetFinalizer(o, nil)
}

// IntoRaw gives up ownership without releasing and returns the address.
// It is used when a native function takes over the allocation. IntoRaw on a
// released owner panics.
func (o *Owned) IntoRaw() unsafe.Pointer {
	ptr := o.take()
	if ptr == nil {
		panic("handle: IntoRaw on released " + o.kind.String())
	}

	unregister(ptr, o.kind)
	transferred.Add(1)
	runtime.SetFinalizer(o, nil)
	return ptr
}

// Borrow returns a view of ptr, which must point into memory owned by o.
func (o *Owned) Borrow(kind Kind, ptr unsafe.Pointer) Borrowed {
	if ptr == nil {
		panic("handle: borrow of nil " + kind.String())
	}
	return Borrowed{ptr: ptr, kind: kind, owner: o}
}

// Borrowed is a non-owning view into memory owned by another allocation. It
// keeps the owner reachable but never releases anything.
type Borrowed struct {
	ptr   unsafe.Pointer
	kind  Kind
	owner *Owned
}

// Ptr returns the viewed address, or nil when the owner has been released.
// Like Owned.Ptr it does not pin.
func (b Borrowed) Ptr() unsafe.Pointer {
	if !b.owner.Alive() {
		return nil
	}
	return b.ptr
}

// Pin pins the owner and returns the viewed address, or nil and a no-op
// unpin when the owner has been released.
func (b Borrowed) Pin() (ptr unsafe.Pointer, unpin func()) {
	if p, unpin := b.owner.Pin(); p != nil {
		return b.ptr, unpin
	}
	return nil, noop
}

// Kind reports the native structure kind of the view.
func (b Borrowed) Kind() Kind { return b.kind }

// Owner returns the allocation the view points into.
func (b Borrowed) Owner() *Owned { return b.owner }

// Stats is a snapshot of registry counters.
type Stats struct {
	Adopted     uint64
	Released    uint64
	Transferred uint64
	Live        int
}

// Snapshot returns the current registry counters.
func Snapshot() Stats {
	regMu.Lock()
	n := len(live)
	regMu.Unlock()
	return Stats{
		Adopted:     adopted.Load(),
		Released:    released.Load(),
		Transferred: transferred.Load(),
		Live:        n,
	}
}

// Live returns the number of allocations currently owned.
func Live() int {
	regMu.Lock()
	defer regMu.Unlock()
	return len(live)
}
