package intmap

// ComputeIfAbsent returns the value stored for key, computing and inserting
// one with fn when absent. fn returning the missing value means "do not
// insert"; that value is returned and the map is unchanged. fn runs only
// when the key is absent.
func (m *Map[K]) ComputeIfAbsent(key K, fn func(K) int32) int32 {
	idx, found := m.findSlot(key)
	if found {
		return m.values[idx]
	}

	value := fn(key)
	if value == m.missing {
		return value
	}

	if idx < 0 {
		m.increaseCapacity()
		idx, _ = m.findSlot(key)
	}
	m.keys[idx] = key
	m.values[idx] = value

	m.size++
	if m.size > m.resizeThreshold {
		m.increaseCapacity()
	}
	return value
}

// ComputeIfPresent replaces the value stored for key with fn's result when
// key is present. fn returning the missing value removes the entry. Returns
// the value now stored, or the missing value when key was absent or the
// entry was removed. fn runs only when the key is present.
func (m *Map[K]) ComputeIfPresent(key K, fn func(K, int32) int32) int32 {
	idx, found := m.findSlot(key)
	if !found {
		return m.missing
	}

	value := fn(key, m.values[idx])
	if value == m.missing {
		m.clearSlot(idx)
		m.compactChain(idx)
	} else {
		m.values[idx] = value
	}
	return value
}

// Compute stores fn's result for key, passing fn the current value or the
// missing value when absent. fn returning the missing value removes a
// present entry and is a no-op for an absent one. Returns the value now
// associated with key, the missing value meaning none.
func (m *Map[K]) Compute(key K, fn func(K, int32) int32) int32 {
	idx, found := m.findSlot(key)
	oldValue := m.missing
	if found {
		oldValue = m.values[idx]
	}

	newValue := fn(key, oldValue)
	switch {
	case newValue != m.missing:
		if idx < 0 {
			m.increaseCapacity()
			idx, _ = m.findSlot(key)
		}
		m.values[idx] = newValue
		if !found {
			m.keys[idx] = key
			m.size++
			if m.size > m.resizeThreshold {
				m.increaseCapacity()
			}
		}
	case found:
		m.clearSlot(idx)
		m.compactChain(idx)
	}
	return newValue
}
