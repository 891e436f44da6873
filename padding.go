package seqx

import (
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/seqx/internal/opt"
)

// PaddedAtomicInt64 is an atomic 64-bit counter isolated on its own
// cache line.
//
// Filler bytes on both sides of the value guarantee that no other
// field, and no neighboring allocation, shares the value's cache line.
// Without the isolation, two logically independent counters placed
// next to each other would invalidate each other's cache lines on
// every write (false sharing), which is exactly the contention this
// type exists to avoid.
//
// The line width comes from opt.CacheLineSize_: autodetected per
// architecture, overridable with the seqx_cachelinesize_{32,64,128,256}
// build tags.
//
// The zero value holds 0 and is ready to use.
type PaddedAtomicInt64 struct {
	_ [opt.CacheLineSize_ - 8]byte
	v atomic.Int64
	_ [opt.CacheLineSize_ - 8]byte
}

// Load returns the current value with a fenced (acquire) read.
//
//go:nosplit
func (p *PaddedAtomicInt64) Load() int64 {
	return p.v.Load()
}

// Store sets the value with a sequentially consistent store.
//
//go:nosplit
func (p *PaddedAtomicInt64) Store(val int64) {
	p.v.Store(val)
}

// CompareAndSwap sets the value to new iff it currently equals old,
// reporting whether the swap happened.
//
//go:nosplit
func (p *PaddedAtomicInt64) CompareAndSwap(old, new int64) bool {
	return p.v.CompareAndSwap(old, new)
}

// StoreRelaxed sets the value with release ordering but no full fence.
// Other cores may observe the old value briefly. Use it only where the
// protocol tolerates short staleness and a later fenced read
// re-establishes visibility, as Sequence.Commit does.
//
//go:nosplit
func (p *PaddedAtomicInt64) StoreRelaxed(val int64) {
	opt.StoreInt64Relaxed((*int64)(unsafe.Pointer(&p.v)), val)
}

// PaddedInt64 is a plain (non-atomic) 64-bit value with the same
// cache-line isolation as PaddedAtomicInt64.
//
// Reads and writes are ordinary memory operations. Cross-goroutine
// visibility of a Store is best-effort only: a concurrent Load may
// return a stale value, never a torn one. Use it for values that are
// hints, such as a locally cached copy of an atomic counter, where a
// lost update costs a re-read rather than correctness.
//
// The zero value holds 0 and is ready to use.
type PaddedInt64 struct {
	_ [opt.CacheLineSize_ - 8]byte
	v int64
	_ [opt.CacheLineSize_ - 8]byte
}

// Load returns the current value without any fence.
//
//go:nosplit
func (p *PaddedInt64) Load() int64 {
	return opt.LoadInt64Fast(&p.v)
}

// Store sets the value without any fence.
//
//go:nosplit
func (p *PaddedInt64) Store(val int64) {
	opt.StoreInt64Fast(&p.v, val)
}
