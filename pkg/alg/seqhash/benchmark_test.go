package seqhash

import "testing"

// benchSize is the sequence length for benchmarks.
const benchSize = 4096

func BenchmarkSumUint64(b *testing.B) {
	hashes := make([]uint64, benchSize)
	for i := range hashes {
		hashes[i] = uint64(i) * 0x9e3779b97f4a7c15
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		SumUint64(hashes)
	}
}

func BenchmarkHasherSum(b *testing.B) {
	h, err := New(func(v int) uint64 { return uint64(v) })
	if err != nil {
		b.Fatal(err)
	}

	seq := make([]int, benchSize)
	for i := range seq {
		seq[i] = i
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		h.Sum(seq)
	}
}
