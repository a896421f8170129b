package intmap

import "iter"

// All returns an iterator over the map's entries for use with range. The
// order matches what the cursor iterators produce and changes when the map
// resizes. The map must not be modified during the walk.
func (m *Map[K]) All() iter.Seq2[K, int32] {
	return func(yield func(K, int32) bool) {
		c := cursor[K]{m: m}
		c.reset()
		for c.Next() {
			pos := c.position()
			if !yield(m.keys[pos], m.values[pos]) {
				return
			}
		}
	}
}

// KeySet is a live view of the map's keys. It stores nothing of its own;
// every method reads or writes through to the map, and removals through the
// view remove the whole entry.
type KeySet[K comparable] struct {
	m  *Map[K]
	it *KeyIterator[K]
}

// KeySet returns the key view, created once and reused across calls.
func (m *Map[K]) KeySet() *KeySet[K] {
	if m.keySet == nil {
		m.keySet = &KeySet[K]{m: m}
	}
	return m.keySet
}

// Len returns the map's entry count.
func (s *KeySet[K]) Len() int {
	return s.m.size
}

// Contains reports whether key is in the map.
func (s *KeySet[K]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Remove deletes key's entry from the map, reporting whether it existed.
func (s *KeySet[K]) Remove(key K) bool {
	return s.m.Remove(key) != s.m.missing
}

// Clear removes every entry from the map.
func (s *KeySet[K]) Clear() {
	s.m.Clear()
}

// Iterator returns a cursor over the keys. With iterator caching enabled
// the same instance is reset and returned every call, so starting a new
// traversal abandons any unfinished one.
func (s *KeySet[K]) Iterator() *KeyIterator[K] {
	it := s.it
	if it == nil {
		it = &KeyIterator[K]{cursor[K]{m: s.m}}
		if s.m.cacheIterators {
			s.it = it
		}
	}
	it.reset()
	return it
}

// All returns a range iterator over the keys in cursor order.
func (s *KeySet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		c := cursor[K]{m: s.m}
		c.reset()
		for c.Next() {
			if !yield(s.m.keys[c.position()]) {
				return
			}
		}
	}
}

// Values is a live view of the stored values. Like KeySet it holds no data;
// it exists so value traversal and membership reads have a home of their
// own.
type Values[K comparable] struct {
	m  *Map[K]
	it *ValueIterator[K]
}

// Values returns the value view, created once and reused across calls.
func (m *Map[K]) Values() *Values[K] {
	if m.valuesView == nil {
		m.valuesView = &Values[K]{m: m}
	}
	return m.valuesView
}

// Len returns the map's entry count.
func (v *Values[K]) Len() int {
	return v.m.size
}

// Contains reports whether any entry holds value.
func (v *Values[K]) Contains(value int32) bool {
	return v.m.ContainsValue(value)
}

// Clear removes every entry from the map.
func (v *Values[K]) Clear() {
	v.m.Clear()
}

// Iterator returns a cursor over the values. With iterator caching enabled
// the same instance is reset and returned every call.
func (v *Values[K]) Iterator() *ValueIterator[K] {
	it := v.it
	if it == nil {
		it = &ValueIterator[K]{cursor[K]{m: v.m}}
		if v.m.cacheIterators {
			v.it = it
		}
	}
	it.reset()
	return it
}

// All returns a range iterator over the values in cursor order.
func (v *Values[K]) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		c := cursor[K]{m: v.m}
		c.reset()
		for c.Next() {
			if !yield(v.m.values[c.position()]) {
				return
			}
		}
	}
}

// EntrySet is a live view of the map's associations.
type EntrySet[K comparable] struct {
	m  *Map[K]
	it *EntryIterator[K]
}

// EntrySet returns the entry view, created once and reused across calls.
func (m *Map[K]) EntrySet() *EntrySet[K] {
	if m.entrySet == nil {
		m.entrySet = &EntrySet[K]{m: m}
	}
	return m.entrySet
}

// Len returns the map's entry count.
func (s *EntrySet[K]) Len() int {
	return s.m.size
}

// Contains reports whether the map holds exactly the association
// key=value.
func (s *EntrySet[K]) Contains(key K, value int32) bool {
	got := s.m.Get(key)
	return got != s.m.missing && got == value
}

// Clear removes every entry from the map.
func (s *EntrySet[K]) Clear() {
	s.m.Clear()
}

// Iterator returns a cursor over the entries. With iterator caching enabled
// the same instance is reset and returned every call, and its entries are
// live rather than detached.
func (s *EntrySet[K]) Iterator() *EntryIterator[K] {
	it := s.it
	if it == nil {
		it = &EntryIterator[K]{cursor[K]{m: s.m}}
		if s.m.cacheIterators {
			s.it = it
		}
	}
	it.reset()
	return it
}

// All returns a range iterator over the entries in cursor order.
func (s *EntrySet[K]) All() iter.Seq2[K, int32] {
	return s.m.All()
}
