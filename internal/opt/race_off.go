//go:build !race

package opt

import (
	"runtime"
	"sync/atomic"
)

const Race_ = false

// IsTSO_ detects TSO (total-store-order) architectures. On TSO, a plain
// aligned native-word store is atomic and release-ordered, so it can
// stand in for a relaxed/ordered atomic store.
const IsTSO_ = runtime.GOARCH == "amd64" ||
	runtime.GOARCH == "386" ||
	runtime.GOARCH == "s390x"

const intSize_ = 32 << (^uint(0) >> 63)

// LoadInt64Relaxed aligned 64-bit load; plain on TSO when the native
// word is 64 bits, otherwise atomic.
//
//go:nosplit
func LoadInt64Relaxed(addr *int64) int64 {
	if IsTSO_ && intSize_ == 64 {
		return *addr
	}
	return atomic.LoadInt64(addr)
}

// StoreInt64Relaxed aligned 64-bit store; plain on TSO when the native
// word is 64 bits, otherwise atomic. The plain-store path is
// release-ordered but carries no full fence, matching lazy-set
// semantics.
//
//go:nosplit
func StoreInt64Relaxed(addr *int64, val int64) {
	if IsTSO_ && intSize_ == 64 {
		*addr = val
		return
	}
	atomic.StoreInt64(addr, val)
}

// LoadInt64Fast performs a non-atomic read where tearing is ruled out
// by alignment and word size. Safe only for values whose race is
// tolerated as a stale hint, or for thread-private memory.
//
//go:nosplit
func LoadInt64Fast(addr *int64) int64 {
	if intSize_ == 64 {
		return *addr
	}
	return atomic.LoadInt64(addr)
}

// StoreInt64Fast performs a non-atomic write under the same constraints
// as LoadInt64Fast.
//
//go:nosplit
func StoreInt64Fast(addr *int64, val int64) {
	if intSize_ == 64 {
		*addr = val
		return
	}
	atomic.StoreInt64(addr, val)
}
