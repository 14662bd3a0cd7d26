// Package cyclic provides utilities for sequences considered equivalent
// under rotation: periodicity, canonical (lexicographically smallest)
// rotation, and a rotation-invariant fingerprint.
//
// A necklace is the equivalence class of a sequence under cyclic rotation;
// its periodicity is the number of distinct rotations, always a divisor of
// the length.
package cyclic

import (
	"cmp"

	"github.com/caleblevy/funcstructs-sub001/pkg/alg/zvalues"
)

// Periodicity returns the number of distinct rotations of seq in O(n) time.
// It is the smallest p such that rotating by p yields the sequence itself,
// found as the smallest divisor p of n whose suffix seq[p:] matches a prefix
// of the full remaining length in the Z-array.
func Periodicity[T comparable](seq []T) int {
	n := len(seq)
	if n < 2 {
		return n
	}

	z := zvalues.Compute(seq)
	for p := 1; p < n; p++ {
		if n%p == 0 && z[p] == n-p {
			return p
		}
	}

	return n
}

// Degeneracy returns the number of rotations fixing seq: len(seq) divided by
// the periodicity. A sequence with no repeated block has degeneracy 1.
func Degeneracy[T comparable](seq []T) int {
	n := len(seq)
	if n == 0 {
		return 0
	}

	return n / Periodicity(seq)
}

// SmallestRotation returns the lexicographically smallest rotation of seq as
// a fresh slice, using Booth's algorithm in O(n) time. The input is not
// modified. An empty input yields an empty result.
func SmallestRotation[T cmp.Ordered](seq []T) []T {
	n := len(seq)
	if n == 0 {
		return nil
	}

	// Booth's least-rotation scan over the conceptually doubled sequence;
	// f is the failure function of the best rotation found so far.
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0

	for j := 1; j < 2*n; j++ {
		sj := seq[j%n]

		i := f[j-k-1]
		for i != -1 && sj != seq[(k+i+1)%n] {
			if sj < seq[(k+i+1)%n] {
				k = j - i - 1
			}

			i = f[i]
		}

		if sj != seq[(k+i+1)%n] {
			if sj < seq[k%n] {
				k = j
			}

			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]T, n)
	for i := range out {
		out[i] = seq[(k+i)%n]
	}

	return out
}
