// Package intmap provides a hash map from comparable keys to int32 values,
// specialized to keep values out of the heap. Values live in a flat int32
// array instead of boxed per-entry allocations, so reads and writes leave
// nothing for the garbage collector to trace.
//
// The map uses open addressing with linear probing over a pair of flat
// arrays. Absence is encoded by a reserved sentinel in the value array (the
// "missing value", chosen at construction), so slots carry no metadata and
// are always either empty or live. Deletion repairs the probe chain in place
// instead of leaving tombstones, and lookups never allocate. The missing
// value itself can never be stored.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize externally.
package intmap

import (
	"errors"
	"slices"
)

// ErrMissingValue is returned when a caller tries to store the map's
// reserved missing-value sentinel as a real value.
var ErrMissingValue = errors.New("intmap: cannot store the missing-value sentinel")

// Map associates keys of comparable type K with int32 values. The zero Map
// is not usable; construct one with New or NewWithHasher.
type Map[K comparable] struct {
	keys   []K
	values []int32

	loadFactor      float64
	resizeThreshold int
	size            int
	missing         int32
	cacheIterators  bool

	hashFunc HashFunc[K]

	keySet     *KeySet[K]
	valuesView *Values[K]
	entrySet   *EntrySet[K]
}

// Config carries construction settings. Use the With... options to populate
// one; callers never build a Config directly.
type Config struct {
	capacity       int
	loadFactor     float64
	cacheIterators bool
}

// Option adjusts a Config during construction.
type Option func(*Config)

// WithCapacity requests an initial capacity. The map rounds it up to a power
// of two and never allocates fewer than MinCapacity slots.
func WithCapacity(n int) Option {
	return func(c *Config) {
		c.capacity = n
	}
}

// WithLoadFactor sets the occupancy fraction beyond which the map doubles
// its capacity. Valid values lie in (0, 1]; New panics on anything else.
// Higher values trade longer probe chains for denser memory.
func WithLoadFactor(f float64) Option {
	return func(c *Config) {
		c.loadFactor = f
	}
}

// WithCachedIterators makes each view reuse a single iterator instance
// across traversals instead of allocating a fresh one per call, and makes
// entry iterators hand out live entries backed by the iterator position.
// Only one traversal per view can then be in flight at a time.
func WithCachedIterators() Option {
	return func(c *Config) {
		c.cacheIterators = true
	}
}

// New constructs a map that reports missingValue for absent keys. Keys are
// hashed with the package default hasher; see NewWithHasher to supply a
// custom one.
//
// New panics when an option carries an invalid load factor.
func New[K comparable](missingValue int32, opts ...Option) *Map[K] {
	return NewWithHasher[K](missingValue, nil, opts...)
}

// NewWithHasher constructs a map that hashes keys with hashFunc. A nil
// hashFunc falls back to the package default. Maps built with different
// hash functions still compare with Equal, but their Hash digests diverge.
func NewWithHasher[K comparable](missingValue int32, hashFunc HashFunc[K], opts ...Option) *Map[K] {
	cfg := Config{
		capacity:   MinCapacity,
		loadFactor: DefaultLoadFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := ValidateLoadFactor(cfg.loadFactor); err != nil {
		panic(err)
	}
	if hashFunc == nil {
		hashFunc = DefaultHashFunc[K]()
	}

	capacity := NextPowerOfTwo(max(MinCapacity, cfg.capacity))
	m := &Map[K]{
		keys:            make([]K, capacity),
		values:          make([]int32, capacity),
		loadFactor:      cfg.loadFactor,
		resizeThreshold: int(float64(capacity) * cfg.loadFactor),
		missing:         missingValue,
		cacheIterators:  cfg.cacheIterators,
		hashFunc:        hashFunc,
	}
	for i := range m.values {
		m.values[i] = missingValue
	}
	return m
}

// findSlot locates key by linear probing from its hash position. It returns
// the matching slot when the key is present, otherwise the empty slot an
// insert would use. The scan is bounded by capacity; idx -1 means the table
// is completely full and the key absent, which is only reachable at load
// factor 1.0.
func (m *Map[K]) findSlot(key K) (idx int, found bool) {
	mask := len(m.values) - 1
	idx = int(m.hashFunc(key) & uint64(mask))

	for range m.values {
		if m.values[idx] == m.missing {
			return idx, false
		}
		if m.keys[idx] == key {
			return idx, true
		}
		idx = (idx + 1) & mask
	}
	return -1, false
}

// Get returns the value stored for key, or the missing value when absent.
func (m *Map[K]) Get(key K) int32 {
	if idx, found := m.findSlot(key); found {
		return m.values[idx]
	}
	return m.missing
}

// ContainsKey reports whether key has a stored value.
func (m *Map[K]) ContainsKey(key K) bool {
	_, found := m.findSlot(key)
	return found
}

// ContainsValue reports whether any entry holds value. The missing value is
// never contained. This scans the whole backing array.
func (m *Map[K]) ContainsValue(value int32) bool {
	if value == m.missing {
		return false
	}
	return slices.Contains(m.values, value)
}

// Put stores value under key and returns the value it replaced, or the
// missing value when the key was absent. Storing the missing value itself
// fails with ErrMissingValue and leaves the map untouched.
func (m *Map[K]) Put(key K, value int32) (int32, error) {
	if value == m.missing {
		return m.missing, ErrMissingValue
	}

	idx, found := m.findSlot(key)
	if idx < 0 {
		m.increaseCapacity()
		idx, found = m.findSlot(key)
	}

	prev := m.missing
	if found {
		prev = m.values[idx]
	} else {
		m.size++
		m.keys[idx] = key
	}
	m.values[idx] = value

	if m.size > m.resizeThreshold {
		m.increaseCapacity()
	}
	return prev, nil
}

// Remove deletes key and returns the removed value, or the missing value
// when the key was absent. The vacated slot is repaired immediately, so no
// tombstones accumulate and later lookups pay nothing for past deletions.
func (m *Map[K]) Remove(key K) int32 {
	idx, found := m.findSlot(key)
	if !found {
		return m.missing
	}

	value := m.values[idx]
	m.clearSlot(idx)
	m.compactChain(idx)
	return value
}

// clearSlot empties a single slot and adjusts size. Probe-chain repair is
// the caller's responsibility.
func (m *Map[K]) clearSlot(idx int) {
	var zero K
	m.keys[idx] = zero
	m.values[idx] = m.missing
	m.size--
}

// Replace stores value for key only when key is already present, returning
// the previous value. When absent it returns the missing value and changes
// nothing. Storing the missing value for a present key fails with
// ErrMissingValue.
func (m *Map[K]) Replace(key K, value int32) (int32, error) {
	if m.Get(key) == m.missing {
		return m.missing, nil
	}
	return m.Put(key, value)
}

// ReplaceValue stores newValue for key only when key currently maps to
// oldValue, reporting whether the swap happened. oldValue equal to the
// missing value never matches.
func (m *Map[K]) ReplaceValue(key K, oldValue, newValue int32) (bool, error) {
	cur := m.Get(key)
	if cur == m.missing || cur != oldValue {
		return false, nil
	}
	if _, err := m.Put(key, newValue); err != nil {
		return false, err
	}
	return true, nil
}

// PutAll copies every entry of other into m. When other holds a value equal
// to m's missing value the copy stops there with ErrMissingValue; entries
// copied before the clash remain.
func (m *Map[K]) PutAll(other *Map[K]) error {
	for i, value := range other.values {
		if value == other.missing {
			continue
		}
		if _, err := m.Put(other.keys[i], value); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every entry. Capacity is retained.
func (m *Map[K]) Clear() {
	if m.size == 0 {
		return
	}

	clear(m.keys)
	for i := range m.values {
		m.values[i] = m.missing
	}
	m.size = 0
}

// Clone returns an independent copy with the same contents, load factor,
// missing value and hash function. Cached views and iterators are not
// shared with the original.
func (m *Map[K]) Clone() *Map[K] {
	return &Map[K]{
		keys:            slices.Clone(m.keys),
		values:          slices.Clone(m.values),
		loadFactor:      m.loadFactor,
		resizeThreshold: m.resizeThreshold,
		size:            m.size,
		missing:         m.missing,
		cacheIterators:  m.cacheIterators,
		hashFunc:        m.hashFunc,
	}
}
