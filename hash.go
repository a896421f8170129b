package intmap

import "hash/maphash"

// HashFunc produces a 64-bit hash for a key. The map masks the hash with
// capacity-1 to pick the initial probe slot, so for a fixed capacity equal
// keys must hash equal. Distribution quality affects probe lengths only,
// never correctness.
type HashFunc[K comparable] func(K) uint64

// defaultSeed is shared by every map built with the default hasher. Keeping
// it process-global makes Hash digests comparable across map instances,
// which the Equal/Hash contract relies on.
var defaultSeed = maphash.MakeSeed()

// DefaultHashFunc returns the hasher New installs when none is supplied,
// backed by hash/maphash with a process-global seed. Useful for wrapping
// the default with instrumentation while keeping its distribution.
func DefaultHashFunc[K comparable]() HashFunc[K] {
	return func(key K) uint64 {
		return maphash.Comparable(defaultSeed, key)
	}
}
