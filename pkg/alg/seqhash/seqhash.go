// Package seqhash computes an order-sensitive fingerprint of a sequence from
// the hashes of its elements.
//
// The recipe is the classic fixed-width tuple hash used by CPython
// (Objects/tupleobject.c before the xxHash rewrite): elements are folded into
// an accumulator by XOR and multiplication, and the multiplier itself evolves
// with the number of remaining elements, coupling position to mixing
// strength. Plain XOR accumulation would be order-blind; the evolving
// multiplier is what makes the result depend on element order.
//
// All arithmetic is fixed at 64 bits regardless of the host platform, so
// outputs are portable: the mask 2^64-1 is exactly uint64 wraparound.
// Determinism is the caller's side of the contract — the element hash
// function supplied to New must itself be deterministic, or results will not
// reproduce across runs.
package seqhash

import "errors"

// Hash recipe constants.
const (
	// seed is the accumulator's initial value.
	seed uint64 = 0x345678

	// initialMultiplier is CPython's _PyHASH_MULTIPLIER (Include/pyhash.h).
	initialMultiplier uint64 = 0xf4243

	// multiplierStep is the base increment applied to the multiplier
	// after each element; 2*remaining is added on top of it.
	multiplierStep uint64 = 82520

	// finalAddend is added once after the scan so that sequences ending
	// in zero hashes still perturb the result.
	finalAddend uint64 = 97531
)

// EmptySum is the fingerprint of the empty sequence: the seed plus the final
// addend, with the element loop never executing.
const EmptySum = seed + finalAddend

// ErrNilHashFunc is returned when New is given a nil element hash function.
var ErrNilHashFunc = errors.New("seqhash: nil element hash function")

// SumUint64 fingerprints a sequence whose elements have already been reduced
// to 64-bit hashes. It is a pure function of the slice contents and length.
func SumUint64(hashes []uint64) uint64 {
	x := seed
	mult := initialMultiplier
	l := uint64(len(hashes))

	for _, y := range hashes {
		x = (x ^ y) * mult
		l--
		mult += multiplierStep + 2*l
	}

	return x + finalAddend
}

// Hasher fingerprints sequences of T using a caller-supplied element hash.
type Hasher[T any] struct {
	hash func(T) uint64
}

// New creates a Hasher from an element hash function. The function must be
// deterministic for fingerprints to be reproducible across runs.
func New[T any](hash func(T) uint64) (*Hasher[T], error) {
	if hash == nil {
		return nil, ErrNilHashFunc
	}

	return &Hasher[T]{hash: hash}, nil
}

// Sum returns the order-sensitive fingerprint of seq. The input is read
// once, left to right, and never retained.
func (h *Hasher[T]) Sum(seq []T) uint64 {
	x := seed
	mult := initialMultiplier
	l := uint64(len(seq))

	for _, elem := range seq {
		x = (x ^ h.hash(elem)) * mult
		l--
		mult += multiplierStep + 2*l
	}

	return x + finalAddend
}
