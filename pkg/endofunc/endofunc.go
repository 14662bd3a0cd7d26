// Package endofunc represents endofunctions — maps from {0,...,n-1} into
// itself — and the cycle structure of their functional graphs.
//
// Every functional graph is a set of cycles with trees hanging off them;
// iterating any point eventually enters a cycle. Cycles enumerates those
// cycles in linear time, and CyclesHash fingerprints them independently of
// traversal order and of where each cycle is entered.
package endofunc

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/caleblevy/funcstructs-sub001/pkg/alg/cyclic"
	"github.com/caleblevy/funcstructs-sub001/pkg/alg/seqhash"
)

// Sentinel validation errors.
var (
	// ErrImageOutOfRange is returned when an image point falls outside
	// the domain.
	ErrImageOutOfRange = errors.New("endofunc: image point out of range")

	// ErrLengthMismatch is returned when composing functions on
	// different domains.
	ErrLengthMismatch = errors.New("endofunc: domain sizes differ")
)

// Endofunction is a function from {0,...,n-1} to itself, stored as its image
// list: f maps x to image[x]. The zero value is the function on the empty
// domain.
type Endofunction struct {
	image []int
}

// New validates and seals a copy of image as an Endofunction. Every entry
// must lie in [0, len(image)).
func New(image []int) (Endofunction, error) {
	n := len(image)
	for _, y := range image {
		if y < 0 || y >= n {
			return Endofunction{}, ErrImageOutOfRange
		}
	}

	return Endofunction{image: slices.Clone(image)}, nil
}

// Identity returns the identity function on n points.
func Identity(n int) Endofunction {
	image := make([]int, n)
	for i := range image {
		image[i] = i
	}

	return Endofunction{image: image}
}

// Random returns a uniformly random endofunction on n points drawn from rng.
func Random(n int, rng *rand.Rand) Endofunction {
	image := make([]int, n)
	for i := range image {
		image[i] = rng.Intn(n)
	}

	return Endofunction{image: image}
}

// Len returns the domain size.
func (f Endofunction) Len() int {
	return len(f.image)
}

// Apply returns f(x). x must lie in [0, Len()).
func (f Endofunction) Apply(x int) int {
	return f.image[x]
}

// Table returns a copy of f's image list: position x holds f(x).
func (f Endofunction) Table() []int {
	return slices.Clone(f.image)
}

// Image returns the sorted distinct image points of f.
func (f Endofunction) Image() []int {
	seen := make([]bool, len(f.image))
	for _, y := range f.image {
		seen[y] = true
	}

	out := make([]int, 0, len(f.image))
	for y, ok := range seen {
		if ok {
			out = append(out, y)
		}
	}

	return out
}

// Compose returns the function x -> f(g(x)). Both functions must share a
// domain size.
func (f Endofunction) Compose(g Endofunction) (Endofunction, error) {
	if len(f.image) != len(g.image) {
		return Endofunction{}, ErrLengthMismatch
	}

	image := make([]int, len(f.image))
	for x := range image {
		image[x] = f.image[g.image[x]]
	}

	return Endofunction{image: image}, nil
}

// Traversal states for the cycle scan.
const (
	unseen int8 = iota
	onPath
	done
)

// Cycles returns every cycle of f's functional graph in O(n) time. Each
// cycle is listed in iteration order — cycle[i+1] == f(cycle[i]), wrapping
// at the end — starting from the first of its points reached by the scan.
func (f Endofunction) Cycles() [][]int {
	n := len(f.image)
	state := make([]int8, n)
	pos := make([]int, n)
	path := make([]int, 0, n)

	var cycles [][]int

	for s := range n {
		if state[s] != unseen {
			continue
		}

		path = path[:0]

		x := s
		for state[x] == unseen {
			state[x] = onPath
			pos[x] = len(path)
			path = append(path, x)
			x = f.image[x]
		}

		// Hitting a node on the current path closes a new cycle;
		// hitting a finished node means this path only feeds an
		// already-recorded one.
		if state[x] == onPath {
			cycles = append(cycles, slices.Clone(path[pos[x]:]))
		}

		for _, v := range path {
			state[v] = done
		}
	}

	return cycles
}

// CyclesHash fingerprints the cycle set of f. Each cycle is hashed
// rotation-invariantly, so the result does not depend on where a cycle is
// entered; the per-cycle fingerprints are then sorted and folded, so it does
// not depend on cycle enumeration order either.
func (f Endofunction) CyclesHash() uint64 {
	cycles := f.Cycles()

	hs := make([]uint64, len(cycles))
	for i, cyc := range cycles {
		labels := make([]uint64, len(cyc))
		for j, v := range cyc {
			labels[j] = uint64(v)
		}

		hs[i] = cyclic.HashUint64(labels)
	}

	slices.Sort(hs)

	return seqhash.SumUint64(hs)
}
