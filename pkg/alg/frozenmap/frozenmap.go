// Package frozenmap provides an immutable map value type with read accessors
// only and a content-derived fingerprint.
//
// A Map is sealed at construction: New copies the input and nothing exported
// can alter the entries afterwards. As with a frozen set, the values
// themselves may still be mutable reference types; freezing is shallow.
// Keys are constrained to be ordered so that Keys, Items, and Hash have a
// single canonical order with no caller-supplied comparator.
package frozenmap

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/caleblevy/funcstructs-sub001/pkg/alg/seqhash"
)

// ErrNilHashFunc is returned by Hash when either hash function is nil.
var ErrNilHashFunc = errors.New("frozenmap: nil hash function")

// Entry is a single key/value pair of a Map.
type Entry[K cmp.Ordered, V comparable] struct {
	Key   K
	Value V
}

// Map is an immutable view over a set of key/value pairs.
// The zero Map is empty and ready to use.
type Map[K cmp.Ordered, V comparable] struct {
	entries map[K]V
}

// New seals a copy of m into a Map. The input map stays owned by the caller
// and may be mutated afterwards without affecting the result.
func New[K cmp.Ordered, V comparable](m map[K]V) Map[K, V] {
	if len(m) == 0 {
		return Map[K, V]{}
	}

	return Map[K, V]{entries: maps.Clone(m)}
}

// Get returns the value stored under k and whether it is present.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]

	return v, ok
}

// Contains reports whether k is present.
func (m Map[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]

	return ok
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in sorted order.
func (m Map[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(m.entries))
}

// Values returns the values in sorted-key order.
func (m Map[K, V]) Values() []V {
	keys := m.Keys()
	vals := make([]V, len(keys))

	for i, k := range keys {
		vals[i] = m.entries[k]
	}

	return vals
}

// Items returns the entries in sorted-key order.
func (m Map[K, V]) Items() []Entry[K, V] {
	keys := m.Keys()
	items := make([]Entry[K, V], len(keys))

	for i, k := range keys {
		items[i] = Entry[K, V]{Key: k, Value: m.entries[k]}
	}

	return items
}

// Equal reports whether both maps hold exactly the same entries.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	return maps.Equal(m.entries, other.entries)
}

// Hash returns a fingerprint of the canonical sorted view of the entries,
// folding each key hash and value hash in key order. Maps that are Equal
// always hash alike, provided the same hash functions are used.
func (m Map[K, V]) Hash(kh func(K) uint64, vh func(V) uint64) (uint64, error) {
	if kh == nil || vh == nil {
		return 0, ErrNilHashFunc
	}

	flat := make([]uint64, 0, 2*len(m.entries))
	for _, k := range m.Keys() {
		flat = append(flat, kh(k), vh(m.entries[k]))
	}

	return seqhash.SumUint64(flat), nil
}
