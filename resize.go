package intmap

import (
	"fmt"
	"math"
)

// increaseCapacity doubles the backing arrays. Doubling past the int range
// panics; the insert that triggered the growth has already completed, so
// the map is intact and over its threshold but never corrupt.
func (m *Map[K]) increaseCapacity() {
	newCapacity := len(m.values) << 1
	if newCapacity < 0 {
		panic(fmt.Sprintf("intmap: max capacity reached at size=%d", m.size))
	}
	m.rehash(newCapacity)
}

// rehash reinserts every entry into fresh arrays of newCapacity slots.
// There are no tombstones to skip: every occupied slot carries a live
// entry, so the pass is a plain probe-insert per entry.
func (m *Map[K]) rehash(newCapacity int) {
	mask := newCapacity - 1
	m.resizeThreshold = int(float64(newCapacity) * m.loadFactor)

	newKeys := make([]K, newCapacity)
	newValues := make([]int32, newCapacity)
	for i := range newValues {
		newValues[i] = m.missing
	}

	for i, value := range m.values {
		if value == m.missing {
			continue
		}

		key := m.keys[i]
		idx := int(m.hashFunc(key) & uint64(mask))
		for newValues[idx] != m.missing {
			idx = (idx + 1) & mask
		}
		newKeys[idx] = key
		newValues[idx] = value
	}

	m.keys = newKeys
	m.values = newValues
}

// Compact rehashes into the smallest power-of-two capacity that keeps the
// current size within the load factor. Growth never shrinks the arrays;
// this is the only way to give memory back after a burst of entries.
func (m *Map[K]) Compact() {
	idealCapacity := int(math.Round(float64(m.size) / m.loadFactor))
	m.rehash(NextPowerOfTwo(max(MinCapacity, idealCapacity)))
}
