package intmap

// Len returns the number of stored entries.
func (m *Map[K]) Len() int {
	return m.size
}

func (m *Map[K]) IsEmpty() bool {
	return m.size == 0
}

// MissingValue returns the reserved sentinel this map reports for absent
// keys. It can never be stored as an entry value.
func (m *Map[K]) MissingValue() int32 {
	return m.missing
}

// LoadFactor returns the occupancy fraction beyond which the map grows.
func (m *Map[K]) LoadFactor() float64 {
	return m.loadFactor
}

func (m *Map[K]) Capacity() int {
	return len(m.values)
}

// ResizeThreshold returns the entry count that, once exceeded, makes the
// next insert double the capacity.
func (m *Map[K]) ResizeThreshold() int {
	return m.resizeThreshold
}
