package intmap

// AtomicBuffer is the capability contract for raw memory with concurrent
// visibility guarantees. Flyweight variants of this map's layout that live
// in shared or memory-mapped regions require their backing store to satisfy
// it. The map in this package is single-writer by contract and neither
// implements nor consumes the interface; it is published here so backing
// stores and the containers above them can agree on one vocabulary.
//
// Offsets are byte offsets into the underlying region. Load and Store carry
// synchronizing (volatile) semantics. The Ordered stores are release
// stores: prior writes become visible no later than the store itself, with
// no full fence. Add returns the updated value and Swap the previous one,
// following sync/atomic conventions. Implementations are expected to reject
// misaligned regions up front rather than tear words at runtime.
type AtomicBuffer interface {
	// VerifyAlignment returns an error unless the region is aligned for
	// the widest atomic access the platform requires.
	VerifyAlignment() error

	LoadInt64(offset int) int64
	StoreInt64(offset int, value int64)
	StoreInt64Ordered(offset int, value int64)
	AddInt64(offset int, delta int64) int64
	CompareAndSwapInt64(offset int, old, new int64) bool
	SwapInt64(offset int, value int64) int64

	LoadInt32(offset int) int32
	StoreInt32(offset int, value int32)
	StoreInt32Ordered(offset int, value int32)
	AddInt32(offset int, delta int32) int32
	CompareAndSwapInt32(offset int, old, new int32) bool
	SwapInt32(offset int, value int32) int32

	LoadInt16(offset int) int16
	StoreInt16(offset int, value int16)

	LoadInt8(offset int) int8
	StoreInt8(offset int, value int8)
}
