package multiset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteHash(b byte) uint64 { return uint64(b) }

func TestFromSeq(t *testing.T) {
	t.Parallel()

	m := FromSeq([]byte("abracadabra"))

	assert.Equal(t, 11, m.Len())
	assert.Equal(t, 5, m.Distinct())
	assert.Equal(t, 5, m.Count('a'))
	assert.Equal(t, 2, m.Count('b'))
	assert.Equal(t, 1, m.Count('c'))
	assert.Zero(t, m.Count('z'))
}

func TestFromCounts(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		m, err := FromCounts(map[string]int{"x": 2, "y": 1})
		require.NoError(t, err)
		assert.Equal(t, 3, m.Len())
		assert.Equal(t, 2, m.Count("x"))
	})

	t.Run("zero_count_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := FromCounts(map[string]int{"x": 0})
		require.ErrorIs(t, err, ErrBadCount)
	})

	t.Run("negative_count_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := FromCounts(map[string]int{"x": -3})
		require.ErrorIs(t, err, ErrBadCount)
	})
}

func TestElements(t *testing.T) {
	t.Parallel()

	m := FromSeq([]byte("abracadabra"))
	assert.Equal(t, []byte("aaaaabbcdrr"), m.Elements())

	var empty Multiset[byte]
	assert.Empty(t, empty.Elements())
}

func TestMostCommon(t *testing.T) {
	t.Parallel()

	m := FromSeq([]byte("abracadabra"))

	t.Run("top_three", func(t *testing.T) {
		t.Parallel()

		got := m.MostCommon(3)
		require.Len(t, got, 3)
		assert.Equal(t, Item[byte]{Elem: 'a', Count: 5}, got[0])

		// 'b' and 'r' both occur twice; ties break on the element.
		assert.Equal(t, Item[byte]{Elem: 'b', Count: 2}, got[1])
		assert.Equal(t, Item[byte]{Elem: 'r', Count: 2}, got[2])
	})

	t.Run("negative_k_returns_all", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, m.MostCommon(-1), 5)
	})

	t.Run("oversized_k_returns_all", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, m.MostCommon(100), 5)
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := FromSeq([]byte("aabbb"))
	b, err := FromCounts(map[byte]int{'a': 2, 'b': 3})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(FromSeq([]byte("aabb"))))
}

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("content_determined", func(t *testing.T) {
		t.Parallel()

		a := FromSeq([]byte("cabba"))
		b := FromSeq([]byte("abcab"))

		ha, err := a.Hash(byteHash)
		require.NoError(t, err)
		hb, err := b.Hash(byteHash)
		require.NoError(t, err)

		assert.Equal(t, ha, hb)
	})

	t.Run("multiplicity_matters", func(t *testing.T) {
		t.Parallel()

		ha, err := FromSeq([]byte("ab")).Hash(byteHash)
		require.NoError(t, err)
		hb, err := FromSeq([]byte("abb")).Hash(byteHash)
		require.NoError(t, err)

		assert.NotEqual(t, ha, hb)
	})

	t.Run("nil_hash_func", func(t *testing.T) {
		t.Parallel()

		_, err := FromSeq([]byte("ab")).Hash(nil)
		require.Error(t, err)
	})
}
