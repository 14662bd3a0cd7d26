// Package multiset provides an immutable multiset: an unordered collection
// whose elements carry a multiplicity, the frozen counterpart of a counter.
//
// A Multiset is sealed at construction and every accessor is read-only, so
// values are safe to share across goroutines and usable as canonical
// fingerprinted keys.
package multiset

import (
	"cmp"
	"errors"
	"slices"

	"github.com/caleblevy/funcstructs-sub001/pkg/alg/frozenmap"
)

// ErrBadCount is returned when a supplied multiplicity is not positive.
var ErrBadCount = errors.New("multiset: element count must be positive")

// Item is an element together with its multiplicity.
type Item[T cmp.Ordered] struct {
	Elem  T
	Count int
}

// Multiset is an immutable collection of elements with multiplicities.
// The zero Multiset is empty and ready to use.
type Multiset[T cmp.Ordered] struct {
	counts frozenmap.Map[T, int]
	total  int
}

// FromSeq counts the elements of seq into a Multiset.
func FromSeq[T cmp.Ordered](seq []T) Multiset[T] {
	counts := make(map[T]int, len(seq))
	for _, v := range seq {
		counts[v]++
	}

	return Multiset[T]{counts: frozenmap.New(counts), total: len(seq)}
}

// FromCounts builds a Multiset from explicit multiplicities. Every count
// must be positive; a zero count is rejected rather than dropped so that a
// malformed table fails loudly.
func FromCounts[T cmp.Ordered](counts map[T]int) (Multiset[T], error) {
	total := 0

	for _, c := range counts {
		if c <= 0 {
			return Multiset[T]{}, ErrBadCount
		}

		total += c
	}

	return Multiset[T]{counts: frozenmap.New(counts), total: total}, nil
}

// Count returns the multiplicity of v, zero if absent.
func (m Multiset[T]) Count(v T) int {
	c, _ := m.counts.Get(v)

	return c
}

// Len returns the total number of elements, multiplicities included.
func (m Multiset[T]) Len() int {
	return m.total
}

// Distinct returns the number of distinct elements.
func (m Multiset[T]) Distinct() int {
	return m.counts.Len()
}

// Elements returns all elements in sorted order, each repeated according to
// its multiplicity.
func (m Multiset[T]) Elements() []T {
	out := make([]T, 0, m.total)

	for _, item := range m.counts.Items() {
		for range item.Value {
			out = append(out, item.Key)
		}
	}

	return out
}

// Items returns the distinct elements with their multiplicities, most common
// first; ties break on the smaller element.
func (m Multiset[T]) Items() []Item[T] {
	items := make([]Item[T], 0, m.counts.Len())

	for _, e := range m.counts.Items() {
		items = append(items, Item[T]{Elem: e.Key, Count: e.Value})
	}

	slices.SortStableFunc(items, func(a, b Item[T]) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		return cmp.Compare(a.Elem, b.Elem)
	})

	return items
}

// MostCommon returns the k most common items, or all of them when k is
// negative or exceeds the number of distinct elements.
func (m Multiset[T]) MostCommon(k int) []Item[T] {
	items := m.Items()
	if k < 0 || k > len(items) {
		return items
	}

	return items[:k]
}

// Equal reports whether both multisets hold the same elements with the same
// multiplicities.
func (m Multiset[T]) Equal(other Multiset[T]) bool {
	return m.total == other.total && m.counts.Equal(other.counts)
}

// Hash returns a fingerprint derived from the canonical sorted view of the
// element/count table. Equal multisets hash alike for the same element hash.
func (m Multiset[T]) Hash(eh func(T) uint64) (uint64, error) {
	return m.counts.Hash(eh, func(c int) uint64 { return uint64(c) })
}
