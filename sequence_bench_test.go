package seqx

import (
	"testing"
)

func BenchmarkSequenceGet(b *testing.B) {
	b.ReportAllocs()
	var s Sequence
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = s.Get()
		}
	})
}

func BenchmarkSequenceGetAtomic(b *testing.B) {
	b.ReportAllocs()
	var s Sequence
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = s.GetAtomic()
		}
	})
}

func BenchmarkSequenceClaimCommit(b *testing.B) {
	b.ReportAllocs()
	var s Sequence
	for i := 0; i < b.N; i++ {
		seq := s.Get()
		if !s.Update(seq) {
			b.Fatal("uncontended claim failed")
		}
		s.Commit()
	}
}

func BenchmarkSequenceClaimCommitContended(b *testing.B) {
	b.ReportAllocs()
	var s Sequence
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for {
				seq := s.Get()
				if s.Update(seq) {
					s.Commit()
					break
				}
			}
		}
	})
}

func BenchmarkSequenceGroupGet(b *testing.B) {
	b.ReportAllocs()
	var g SequenceGroup[int]
	for k := range 16 {
		g.Get(k)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		k := 0
		for pb.Next() {
			_ = g.Get(k)
			k++
			if k >= 16 {
				k = 0
			}
		}
	})
}
