package cyclic

import "github.com/caleblevy/funcstructs-sub001/pkg/alg/seqhash"

// Hash returns a rotation-invariant fingerprint of seq: the wrapping sum of
// the order-sensitive fingerprint of every rotation. Rotating the input
// permutes the set of rotations, so the sum is unchanged; sequences that are
// rotations of each other always collide, and little else does in practice.
//
// Degenerate rotations contribute once per occurrence, so a sequence and its
// repeated block hash differently. O(n^2) in the sequence length.
func Hash[T any](h *seqhash.Hasher[T], seq []T) uint64 {
	n := len(seq)
	if n == 0 {
		return h.Sum(nil)
	}

	doubled := make([]T, 0, 2*n)
	doubled = append(doubled, seq...)
	doubled = append(doubled, seq...)

	var total uint64
	for i := range n {
		total += h.Sum(doubled[i : i+n])
	}

	return total
}

// HashUint64 is Hash for elements already reduced to 64-bit hashes.
func HashUint64(hashes []uint64) uint64 {
	n := len(hashes)
	if n == 0 {
		return seqhash.SumUint64(nil)
	}

	doubled := make([]uint64, 0, 2*n)
	doubled = append(doubled, hashes...)
	doubled = append(doubled, hashes...)

	var total uint64
	for i := range n {
		total += seqhash.SumUint64(doubled[i : i+n])
	}

	return total
}
