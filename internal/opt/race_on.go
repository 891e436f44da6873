//go:build race

package opt

import (
	"sync/atomic"
)

const Race_ = true

// IsTSO_ under race detector, disable TSO optimizations and use
// conservative atomic loads/stores
const IsTSO_ = false

// LoadInt64Relaxed conservative: atomic load to satisfy race detector
//
//go:nosplit
func LoadInt64Relaxed(addr *int64) int64 {
	return atomic.LoadInt64(addr)
}

// StoreInt64Relaxed conservative: atomic store to satisfy race detector
//
//go:nosplit
func StoreInt64Relaxed(addr *int64, val int64) {
	atomic.StoreInt64(addr, val)
}

// LoadInt64Fast conservative: atomic load to satisfy race detector
//
//go:nosplit
func LoadInt64Fast(addr *int64) int64 {
	return atomic.LoadInt64(addr)
}

// StoreInt64Fast conservative: atomic store to satisfy race detector
//
//go:nosplit
func StoreInt64Fast(addr *int64, val int64) {
	atomic.StoreInt64(addr, val)
}
