package intmap

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// MinCapacity is the smallest number of slots a map will allocate.
const MinCapacity = 8

// DefaultLoadFactor is used when WithLoadFactor is not given.
const DefaultLoadFactor = 0.65

// NextPowerOfTwo returns the next power of 2 greater than or equal to `v`.
// v must be at least 1.
func NextPowerOfTwo(v int) int {
	return 1 << min(bits.Len32(uint32(v-1)), 31)
}

// ValidateLoadFactor reports whether `f` is usable as a load factor. Valid
// values lie in (0, 1]; NaN and infinities are rejected.
func ValidateLoadFactor(f float64) error {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return fmt.Errorf("intmap: load factor must be in (0, 1], got %v", f)
	}
	return nil
}

// CapacityForBytes returns how many slots fit into `n` bytes of backing
// storage, counting one K and one int32 per slot. The result can be passed
// to WithCapacity to size a map for a given amount of memory.
func CapacityForBytes[K comparable](n uintptr) int {
	var key K
	slotSize := unsafe.Sizeof(key) + unsafe.Sizeof(int32(0))
	return int(n / slotSize)
}
