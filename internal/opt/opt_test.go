package opt

import (
	"sync"
	"testing"
)

func TestCacheLineSize(t *testing.T) {
	if CacheLineSize_ < 32 || CacheLineSize_ > 256 {
		t.Fatalf("CacheLineSize_ = %d, outside plausible range", CacheLineSize_)
	}
	if CacheLineSize_&(CacheLineSize_-1) != 0 {
		t.Fatalf("CacheLineSize_ = %d, not a power of two", CacheLineSize_)
	}
}

func TestInt64Shims(t *testing.T) {
	var v int64
	StoreInt64Relaxed(&v, 42)
	if got := LoadInt64Relaxed(&v); got != 42 {
		t.Fatalf("LoadInt64Relaxed = %d, want 42", got)
	}
	StoreInt64Fast(&v, -7)
	if got := LoadInt64Fast(&v); got != -7 {
		t.Fatalf("LoadInt64Fast = %d, want -7", got)
	}
}

func TestStoreInt64RelaxedVisibility(t *testing.T) {
	// A relaxed store must become visible to other goroutines once they
	// synchronize through another channel (here, WaitGroup).
	var v int64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		StoreInt64Relaxed(&v, 1)
	}()
	wg.Wait()
	if got := LoadInt64Relaxed(&v); got != 1 {
		t.Fatalf("value = %d after Wait, want 1", got)
	}
}
