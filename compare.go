package intmap

import (
	"fmt"
	"strings"
)

// Equal reports whether m and other hold identical key/value pairs. Each
// map's own missing value is irrelevant: maps built with different
// sentinels compare equal when their stored pairs match.
func (m *Map[K]) Equal(other *Map[K]) bool {
	if m == other {
		return true
	}
	if other == nil || m.size != other.size {
		return false
	}

	for i, value := range m.values {
		if value == m.missing {
			continue
		}
		// The explicit sentinel check matters when value happens to equal
		// other's sentinel: Get then reports "absent" with that same value.
		if got := other.Get(m.keys[i]); got == other.missing || got != value {
			return false
		}
	}
	return true
}

// Hash returns an order-independent digest of the contents: the sum over
// all entries of the key hash XORed with the value. Maps sharing a hash
// function, which includes any two maps on the default hasher, digest
// equally exactly when Equal.
func (m *Map[K]) Hash() uint64 {
	var h uint64
	for i, value := range m.values {
		if value == m.missing {
			continue
		}
		h += m.hashFunc(m.keys[i]) ^ uint64(uint32(value))
	}
	return h
}

// String renders the contents as "{k1=v1, k2=v2}" in cursor order, or "{}"
// when empty.
func (m *Map[K]) String() string {
	if m.size == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for key, value := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=%d", key, value)
	}
	sb.WriteByte('}')
	return sb.String()
}
