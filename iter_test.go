package intmap

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIterator_VisitsEveryKey(t *testing.T) {
	m := New[int](-1, WithCapacity(32))
	want := make(map[int]bool)
	for i := range 20 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
		want[i] = true
	}

	got := make(map[int]bool)
	it := m.KeySet().Iterator()
	for it.Next() {
		key := it.Key()
		require.Falsef(t, got[key], "key %d visited twice", key)
		got[key] = true
	}

	assert.Equal(t, want, got)
}

func TestValueIterator_VisitsEveryValue(t *testing.T) {
	m := New[string](-1)
	_, err := m.Put("a", 1)
	require.NoError(t, err)
	_, err = m.Put("b", 2)
	require.NoError(t, err)

	var got []int32
	it := m.Values().Iterator()
	for it.Next() {
		got = append(got, it.Value())
	}

	slices.Sort(got)
	assert.Equal(t, []int32{1, 2}, got)
}

func TestIterator_EmptyMap(t *testing.T) {
	m := New[string](-1)

	it := m.KeySet().Iterator()
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestIterator_SequencingPanics(t *testing.T) {
	m := New[string](-1)
	_, err := m.Put("a", 1)
	require.NoError(t, err)

	t.Run("access before Next", func(t *testing.T) {
		it := m.KeySet().Iterator()
		assert.Panics(t, func() { it.Key() })
	})

	t.Run("access after exhaustion", func(t *testing.T) {
		it := m.KeySet().Iterator()
		for it.Next() {
		}
		assert.Panics(t, func() { it.Key() })
	})

	t.Run("remove before Next", func(t *testing.T) {
		it := m.EntrySet().Iterator()
		assert.Panics(t, func() { it.Remove() })
	})

	t.Run("double remove", func(t *testing.T) {
		m := New[string](-1)
		_, err := m.Put("x", 1)
		require.NoError(t, err)
		_, err = m.Put("y", 2)
		require.NoError(t, err)

		it := m.KeySet().Iterator()
		require.True(t, it.Next())
		it.Remove()
		assert.Panics(t, func() { it.Remove() })
	})
}

func TestIterator_RemoveEvenValues(t *testing.T) {
	tests := []struct {
		name string
		home uint64
	}{
		{
			name: "chain from slot zero",
			home: 0,
		},
		{
			name: "chain wrapping the array end",
			home: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinned := func(int) uint64 { return tt.home }
			m := NewWithHasher(-1, pinned, WithCapacity(8), WithLoadFactor(1))

			for i := 1; i <= 6; i++ {
				_, err := m.Put(i, int32(i))
				require.NoError(t, err)
			}

			it := m.EntrySet().Iterator()
			for it.Next() {
				if it.Value()%2 == 0 {
					it.Remove()
				}
			}

			assert.Equal(t, 3, m.Len())
			for i := 1; i <= 6; i++ {
				if i%2 == 0 {
					assert.Falsef(t, m.ContainsKey(i), "even key %d survived", i)
				} else {
					assert.Equalf(t, int32(i), m.Get(i), "odd key %d lost", i)
				}
			}
			requireChainInvariants(t, m)
		})
	}
}

func TestIterator_RemoveEverything(t *testing.T) {
	m := New[int](-1)
	for i := range 30 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
	}

	it := m.KeySet().Iterator()
	for it.Next() {
		it.Remove()
	}

	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
}

func TestIterator_RemoveThenContinue(t *testing.T) {
	// Chain repair during iteration only relocates entries the cursor has
	// already passed, so interleaving Remove with Next drops nothing.
	pinned := func(int) uint64 { return 6 }
	m := NewWithHasher(-1, pinned, WithCapacity(16))

	for i := range 10 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
	}

	visited := 0
	it := m.KeySet().Iterator()
	for it.Next() {
		visited++
		if visited%2 == 1 {
			it.Remove()
		}
	}

	assert.Equal(t, 10, visited, "every key must be visited exactly once")
	assert.Equal(t, 5, m.Len())
	requireChainInvariants(t, m)
}

func TestIterator_RemoveOnFullTable(t *testing.T) {
	// Load factor 1.0 lets the table fill completely, leaving the sweep no
	// empty slot to anchor at. Removal must still hand over every survivor.
	pinned := func(int) uint64 { return 4 }
	m := NewWithHasher(-1, pinned, WithCapacity(8), WithLoadFactor(1))

	for i := range 8 {
		_, err := m.Put(i, int32(i+10))
		require.NoError(t, err)
	}
	require.Equal(t, 8, m.Capacity())
	require.Equal(t, 8, m.Len())

	it := m.KeySet().Iterator()
	require.True(t, it.Next())
	removed := it.Key()
	it.Remove()

	seen := map[int]bool{removed: true}
	for it.Next() {
		key := it.Key()
		require.Falsef(t, seen[key], "key %d visited twice", key)
		seen[key] = true
	}

	assert.Len(t, seen, 8, "every key must be visited exactly once")
	assert.Equal(t, 7, m.Len())
	assert.False(t, m.ContainsKey(removed))
	requireChainInvariants(t, m)
}

func TestIterator_RemoveEverythingOnFullTable(t *testing.T) {
	pinned := func(int) uint64 { return 4 }
	m := NewWithHasher(-1, pinned, WithCapacity(8), WithLoadFactor(1))

	for i := range 8 {
		_, err := m.Put(i, int32(i+10))
		require.NoError(t, err)
	}

	visited := 0
	it := m.EntrySet().Iterator()
	for it.Next() {
		assert.Equal(t, int32(it.Key()+10), it.Value())
		visited++
		it.Remove()
	}

	assert.Equal(t, 8, visited)
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
}

func TestIterator_RemoveAfterCompactToFull(t *testing.T) {
	// Compact sizes the table to round(size/loadFactor): 8 entries at 0.95
	// land in exactly 8 slots, completely full below load factor 1.
	m := New[int](-1, WithLoadFactor(0.95))
	for i := range 8 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
	}
	m.Compact()
	require.Equal(t, 8, m.Capacity())
	require.Equal(t, 8, m.Len())

	visited := 0
	it := m.KeySet().Iterator()
	for it.Next() {
		visited++
		if it.Key()%2 == 1 {
			it.Remove()
		}
	}

	assert.Equal(t, 8, visited, "every key must be visited exactly once")
	assert.Equal(t, 4, m.Len())
	for i := range 8 {
		if i%2 == 1 {
			assert.Falsef(t, m.ContainsKey(i), "odd key %d survived", i)
		} else {
			assert.Equalf(t, int32(i), m.Get(i), "even key %d lost", i)
		}
	}
	requireChainInvariants(t, m)
}

func TestIterator_RemoveOnFullTableShiftsBothWays(t *testing.T) {
	// Hand-built full table whose chains wrap the array end. Removing the
	// entry at slot 4 first shifts the slot-5 entry onto it, then pulls the
	// slot-3 entry up across the sweep position, then pushes the relocated
	// entry back down below it. The walk must neither drop the first nor
	// hand out the second twice.
	homes := map[int]uint64{10: 0, 11: 1, 12: 2, 13: 5, 14: 4, 15: 6, 16: 6, 17: 7}
	m := NewWithHasher(-1, func(k int) uint64 { return homes[k] }, WithCapacity(8), WithLoadFactor(1))
	m.keys = []int{10, 11, 12, 13, 14, 15, 16, 17}
	m.values = []int32{10, 11, 12, 13, 14, 15, 16, 17}
	m.size = 8
	requireChainInvariants(t, m)

	seen := make(map[int]int)
	it := m.KeySet().Iterator()
	for it.Next() {
		key := it.Key()
		seen[key]++
		if key == 14 {
			it.Remove()
		}
	}

	for key := range homes {
		assert.Equalf(t, 1, seen[key], "key %d visit count", key)
	}
	assert.Equal(t, 7, m.Len())
	assert.False(t, m.ContainsKey(14))
	requireChainInvariants(t, m)
}

func TestIterator_RandomRemovalAtFullCapacity(t *testing.T) {
	for _, capacity := range []int{8, 16, 64} {
		tests := []struct {
			name string
			hash HashFunc[int]
		}{
			{
				name: "default hash",
				hash: nil,
			},
			{
				name: "two wrapping chains",
				hash: func(k int) uint64 {
					if k%2 == 0 {
						return 0
					}
					return uint64(capacity / 2)
				},
			},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s capacity=%d", tt.name, capacity), func(t *testing.T) {
				rng := rand.New(rand.NewPCG(11, uint64(capacity)))
				m := NewWithHasher(-1, tt.hash, WithCapacity(capacity), WithLoadFactor(1))

				for round := range 25 {
					base := int32(round * 1000)
					for key := range capacity {
						_, err := m.Put(key, base+int32(key))
						require.NoError(t, err)
					}
					require.Equal(t, capacity, m.Len())
					require.Equal(t, capacity, m.Capacity())

					removed := make(map[int]bool)
					seen := make(map[int]int)
					it := m.KeySet().Iterator()
					for it.Next() {
						key := it.Key()
						seen[key]++
						if rng.IntN(2) == 0 {
							it.Remove()
							removed[key] = true
						}
					}

					for key := range capacity {
						require.Equalf(t, 1, seen[key], "round %d key %d visit count", round, key)
					}
					require.Equal(t, capacity-len(removed), m.Len())
					for key := range capacity {
						if removed[key] {
							require.Falsef(t, m.ContainsKey(key), "round %d key %d still present", round, key)
						} else {
							require.Equalf(t, base+int32(key), m.Get(key), "round %d key %d lost", round, key)
						}
					}
					requireChainInvariants(t, m)
				}
			})
		}
	}
}

func TestIterator_FreshPerCallByDefault(t *testing.T) {
	m := New[int](-1)
	for i := range 4 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
	}

	keys := m.KeySet()
	first := keys.Iterator()
	second := keys.Iterator()
	require.NotSame(t, first, second)

	count := 0
	for first.Next() {
		count++
	}
	require.Equal(t, 4, count)

	count = 0
	for second.Next() {
		count++
	}
	require.Equal(t, 4, count, "iterators must not share traversal state")
}

func TestIterator_CachedReuse(t *testing.T) {
	m := New[int](-1, WithCachedIterators())
	for i := range 4 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
	}

	keys := m.KeySet()
	first := keys.Iterator()
	require.True(t, first.Next())
	require.True(t, first.Next())

	// The next request resets and hands back the same instance.
	second := keys.Iterator()
	require.Same(t, first, second)

	count := 0
	for second.Next() {
		count++
	}
	assert.Equal(t, 4, count)
}

func TestIterator_ExternalMutationPanics(t *testing.T) {
	m := New[int](-1)
	for i := range 6 {
		_, err := m.Put(i, int32(i))
		require.NoError(t, err)
	}

	it := m.KeySet().Iterator()
	require.True(t, it.Next())

	// Removing behind the iterator's back starves the walk.
	for i := range 6 {
		m.Remove(i)
	}

	assert.Panics(t, func() {
		for it.Next() {
		}
	})
}

func TestMap_All(t *testing.T) {
	m := New[string](-1)
	want := map[string]int32{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		_, err := m.Put(k, v)
		require.NoError(t, err)
	}

	got := make(map[string]int32)
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, want, got)

	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count, "early break must stop the walk")
}
