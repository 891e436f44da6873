//go:build seqx_cachelinesize_128

package opt

// CacheLineSize_ pinned via the seqx_cachelinesize_128 build tag for
// targets where the autodetected value is wrong.
const CacheLineSize_ uintptr = 128
