// Package zvalues computes Z-arrays: for every position of a sequence, the
// length of the longest prefix of the sequence that also begins at that
// position.
//
// The Z-array is the preprocessing step behind linear-time pattern matching
// and periodicity detection. Compute runs in O(n) time and O(n) space using
// the standard Z-box window reuse: each element comparison either extends the
// rightmost confirmed match window or is skipped entirely by mirroring a
// value already inside it.
package zvalues

// Compute returns the Z-array of seq.
//
// The result has the same length as seq. Position 0 holds len(seq) by
// convention; for i > 0, position i holds the length of the longest common
// prefix between seq and the suffix seq[i:]. An empty input yields an empty
// result.
func Compute[T comparable](seq []T) []int {
	n := len(seq)
	if n == 0 {
		return nil
	}

	z := make([]int, n)
	z[0] = n

	// [left, right) is the rightmost window already confirmed to match a
	// prefix of seq.
	left, right := 0, 0

	for i := 1; i < n; i++ {
		if i < right {
			k := i - left
			if z[k] < right-i {
				// The mirrored value stops before the window
				// boundary, so it is exact.
				z[i] = z[k]

				continue
			}

			// The mirrored value reaches the boundary and is only
			// a lower bound; keep the window end and extend from
			// there.
			left = i
		} else {
			left, right = i, i
		}

		for right < n && seq[right-left] == seq[right] {
			right++
		}

		z[i] = right - left
	}

	return z
}
