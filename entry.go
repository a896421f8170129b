package intmap

// Entry is one key/value association. Entries handed out by an
// EntryIterator in caching mode are live, reading and writing the
// iterator's current slot directly; otherwise they are detached snapshots
// that write back through the map.
type Entry[K comparable] interface {
	Key() K
	Value() int32

	// SetValue stores a new value for the entry's key and returns the
	// previous one. Storing the missing value fails with ErrMissingValue.
	SetValue(value int32) (int32, error)
}

// EntryIterator walks the map's entries. Obtain one from
// EntrySet().Iterator(). In caching mode the iterator doubles as the live
// Entry for its current position.
type EntryIterator[K comparable] struct {
	cursor[K]
}

// Entry returns the association at the cursor: the iterator itself in
// caching mode, a detached MapEntry otherwise. It panics when no entry is
// current.
func (it *EntryIterator[K]) Entry() Entry[K] {
	pos := it.current()
	if it.m.cacheIterators {
		return it
	}
	return &MapEntry[K]{m: it.m, key: it.m.keys[pos], value: it.m.values[pos]}
}

// Key returns the key at the cursor. It panics when no entry is current.
func (it *EntryIterator[K]) Key() K {
	return it.m.keys[it.current()]
}

// Value returns the value at the cursor. It panics when no entry is
// current.
func (it *EntryIterator[K]) Value() int32 {
	return it.m.values[it.current()]
}

// SetValue writes straight into the iterator's current slot, returning the
// value it replaced. It panics when no entry is current.
func (it *EntryIterator[K]) SetValue(value int32) (int32, error) {
	pos := it.current()
	if value == it.m.missing {
		return it.m.missing, ErrMissingValue
	}

	old := it.m.values[pos]
	it.m.values[pos] = value
	return old, nil
}

// MapEntry is a detached snapshot of one association. It stays useful after
// its iterator has moved on; SetValue routes through the map's Put and may
// grow the map.
type MapEntry[K comparable] struct {
	m     *Map[K]
	key   K
	value int32
}

// Key returns the snapshotted key.
func (e *MapEntry[K]) Key() K {
	return e.key
}

// Value returns the snapshotted value, including any value stored through
// this entry since the snapshot.
func (e *MapEntry[K]) Value() int32 {
	return e.value
}

// SetValue stores value for the entry's key via Put and returns the value
// it replaced.
func (e *MapEntry[K]) SetValue(value int32) (int32, error) {
	old, err := e.m.Put(e.key, value)
	if err != nil {
		return old, err
	}
	e.value = value
	return old, nil
}
