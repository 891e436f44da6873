package seqx

// Sequence serializes access to a shared cursor with CAS instead of a
// mutex: a sequence of atomic changes, each identified by one sequence
// number, each performed by exactly one winner.
//
// Threads race to claim a number with Update. The single winner
// performs its unit of work and must then call Commit to publish
// completion; every loser gets false and retries with a fresh
// candidate. Skipping Commit after a won claim deadlocks all
// higher-numbered claimants permanently. There is no timeout and no
// runtime check; guarding would cost an extra atomic per operation.
//
// Two counters back the protocol, each on its own cache line:
//
//   - cursor: the next unclaimed number. Mutated only by winning a CAS.
//   - published: the highest committed number. Always <= cursor.
//
// A third padded field caches the published value so that repeated Get
// calls hit the local core's cache instead of paying a fenced read
// every time. The cache may be stale at any instant; GetAtomic
// refreshes it when freshness matters.
//
// Usage:
//
//	for {
//		seq := s.Get()
//		// preliminary checks (capacity etc.) go here
//		if s.Update(seq) {
//			// perform the atomic unit of work for seq
//			s.Commit()
//			return
//		}
//	}
//
// Unlike a mutex, this mechanism fences nothing beyond its own
// counters. If the unit of work mutates state that other threads must
// observe on commit, that state needs its own atomic publication.
//
// The sequence can flip negative after enough increments. That is
// harmless as long as comparisons are relative, seq1-seq2 > 0, rather
// than absolute, seq1 > seq2. Absolute comparisons invert near the
// wrap boundary.
//
// The zero value starts the sequence at 0 and is ready to use. A
// Sequence must not be copied after first use.
type Sequence struct {
	_         noCopy
	cursor    PaddedAtomicInt64
	published PaddedAtomicInt64

	// cache holds the last published value seen by a fenced read.
	// Racy by design: every writer stores a value obtained from a
	// correct fenced read, so a lost update costs staleness only.
	cache PaddedInt64
}

// Get returns the cached published sequence without a fence. The
// cheapest read; the result may lag the true published value. Use
// GetAtomic when the cache is known out of date.
//
//go:nosplit
func (s *Sequence) Get() int64 {
	return s.cache.Load()
}

// GetAtomic performs a fenced read of the published sequence,
// refreshes the cache, and returns the fresh value.
//
//go:nosplit
func (s *Sequence) GetAtomic() int64 {
	v := s.published.Load()
	s.cache.Store(v)
	return v
}

// Update attempts to claim sequence number seq. On success the caller
// exclusively owns the atomic change for seq and must call Commit
// exactly once. On failure another claimant moved the cursor first;
// the cache is refreshed from a fenced read so the caller's next
// candidate reflects current state.
//
//go:nosplit
func (s *Sequence) Update(seq int64) bool {
	if s.cursor.CompareAndSwap(seq, seq+1) {
		return true
	}

	// the cursor moved under us; re-read the published sequence from
	// memory so the retry loop starts from fresh state
	s.cache.Store(s.published.Load())

	return false
}

// Commit publishes the claim won by the preceding Update. The store is
// relaxed; the fenced read-back repopulates the cache so the committing
// thread's own Get immediately observes the new value, while other
// threads may see it a beat later and simply retry.
//
// Calling Commit without a won claim, or twice for one claim, corrupts
// the published sequence. This is an unchecked precondition.
//
//go:nosplit
func (s *Sequence) Commit() {
	s.published.StoreRelaxed(s.cursor.Load())
	s.cache.Store(s.published.Load())
}
