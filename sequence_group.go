package seqx

import (
	"github.com/llxisdsh/pb"
)

// SequenceGroup coordinates independent sequences keyed by arbitrary
// comparable values (string, int, struct, etc.), one Sequence per
// key, created lazily on first use.
//
// Useful when a system runs one claim/commit pipeline per partition,
// shard or file and the key space is unbounded or unknown up front.
//
// Usage:
//
//	var group SequenceGroup[string]
//	s := group.Get("partition-7")
//	for {
//		seq := s.Get()
//		if s.Update(seq) {
//			// atomic work for partition-7, sequence seq
//			s.Commit()
//			break
//		}
//	}
//
// Unlike the entries of a lock group, a Sequence carries durable
// counter state, so entries are never dropped automatically; removal
// is explicit via Forget. Forgetting a key while claimants still hold
// its Sequence is safe, but a later Get mints a fresh Sequence
// starting at 0.
type SequenceGroup[K comparable] struct {
	_ noCopy
	m pb.MapOf[K, *Sequence]
}

// Get returns the Sequence for k, creating it on first use. All
// callers passing the same key observe the same Sequence until it is
// forgotten.
func (g *SequenceGroup[K]) Get(k K) *Sequence {
	var s *Sequence
	g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *Sequence]) (*pb.EntryOf[K, *Sequence], *Sequence, bool) {
			if l != nil {
				s = l.Value
				return l, s, true
			}
			s = &Sequence{}
			return &pb.EntryOf[K, *Sequence]{Value: s}, s, false
		},
	)
	return s
}

// Load returns the Sequence for k without creating one.
func (g *SequenceGroup[K]) Load(k K) (*Sequence, bool) {
	return g.m.Load(k)
}

// Forget detaches the Sequence for k. Existing holders keep their
// (now private) Sequence; future Get calls for k start a new one.
func (g *SequenceGroup[K]) Forget(k K) {
	g.m.Delete(k)
}

// Range calls fn for each key and its Sequence until fn returns false.
func (g *SequenceGroup[K]) Range(fn func(k K, s *Sequence) bool) {
	g.m.Range(fn)
}
