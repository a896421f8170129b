package intmap

import "slices"

// cursor is the traversal state shared by every iterator kind. It walks the
// backing array downward from a start position chosen at an empty-slot
// boundary, so a single pass never splits a probe chain: chain repair
// during Remove only ever relocates entries the cursor has already
// visited. A table with no empty slot offers no such boundary; reset marks
// the sweep and Remove then watches the chain repair for entries carried
// across the sweep position. Traversal order is an implementation detail
// and changes when the map resizes.
type cursor[K comparable] struct {
	m           *Map[K]
	posCounter  int
	stopCounter int
	remaining   int
	valid       bool

	// Bookkeeping for sweeps started on a completely full table. pending
	// holds keys shifted behind the sweep before their turn, yielded once
	// the positional walk ends; skip holds keys shifted ahead of it after
	// they were already yielded. pendingPos is the slot of the entry
	// yielded from pending, -1 while the positional walk is live.
	fullSweep  bool
	pending    []K
	skip       []K
	pendingPos int
}

// reset positions the cursor before the first element and snapshots the
// current size. A traversal must not outlive a resize of its map.
func (c *cursor[K]) reset() {
	m := c.m
	c.remaining = m.size
	capacity := len(m.values)

	i := capacity
	if m.values[capacity-1] != m.missing {
		i = 0
		for ; i < capacity; i++ {
			if m.values[i] == m.missing {
				break
			}
		}
	}

	c.stopCounter = i
	c.posCounter = i + capacity
	c.fullSweep = i == capacity && m.values[capacity-1] != m.missing
	c.pending = nil
	c.skip = nil
	c.pendingPos = -1
	c.valid = false
}

// Next advances to the next entry, reporting false once every entry present
// at reset time has been visited. It panics when entries go missing
// mid-traversal, which means the map was modified behind the cursor's back
// by something other than the cursor's own Remove.
func (c *cursor[K]) Next() bool {
	if c.remaining <= 0 {
		c.valid = false
		return false
	}

	m := c.m
	mask := len(m.values) - 1
	for i := c.posCounter - 1; i >= c.stopCounter; i-- {
		idx := i & mask
		if m.values[idx] == m.missing {
			continue
		}
		if len(c.skip) > 0 {
			if j := slices.Index(c.skip, m.keys[idx]); j >= 0 {
				c.skip = slices.Delete(c.skip, j, j+1)
				continue
			}
		}
		c.posCounter = i
		c.valid = true
		c.remaining--
		return true
	}
	c.posCounter = c.stopCounter

	for len(c.pending) > 0 {
		key := c.pending[0]
		c.pending = c.pending[1:]
		if idx, found := m.findSlot(key); found {
			c.pendingPos = idx
			c.valid = true
			c.remaining--
			return true
		}
	}

	c.valid = false
	panic("intmap: map modified during iteration")
}

// Remove deletes the entry returned by the last Next and repairs the probe
// chain. On a sweep started with no empty slot the repair is watched,
// since without an empty boundary it can carry entries past the sweep
// position in either direction. It panics when no entry is current: before
// the first Next, after Next reported false, or twice in a row without an
// intervening Next.
func (c *cursor[K]) Remove() {
	if !c.valid {
		panic("intmap: Remove without a current entry")
	}

	pos := c.position()
	c.m.clearSlot(pos)
	if c.fullSweep && c.pendingPos < 0 {
		c.m.compactChainFunc(pos, func(key K, from, to int) {
			c.noteShift(key, from, to, pos)
		})
	} else {
		c.m.compactChain(pos)
	}
	c.valid = false
}

// noteShift classifies one chain-repair shift against the sweep position.
// The walk runs downward, so slots at pos and above are already swept: a
// shift from below pos into them parks a not-yet-visited key on pending,
// the reverse direction parks an already-visited key on skip. A key
// shifted back across the position simply leaves its list again.
func (c *cursor[K]) noteShift(key K, from, to, pos int) {
	switch {
	case from < pos && to >= pos:
		if i := slices.Index(c.skip, key); i >= 0 {
			c.skip = slices.Delete(c.skip, i, i+1)
			return
		}
		c.pending = append(c.pending, key)
	case from >= pos && to < pos:
		if i := slices.Index(c.pending, key); i >= 0 {
			c.pending = slices.Delete(c.pending, i, i+1)
			return
		}
		c.skip = append(c.skip, key)
	}
}

func (c *cursor[K]) position() int {
	if c.pendingPos >= 0 {
		return c.pendingPos
	}
	return c.posCounter & (len(c.m.values) - 1)
}

// current returns the position of the current entry, panicking when the
// cursor does not rest on one.
func (c *cursor[K]) current() int {
	if !c.valid {
		panic("intmap: no current entry; call Next first")
	}
	return c.position()
}

// KeyIterator walks the map's keys. Obtain one from KeySet().Iterator().
type KeyIterator[K comparable] struct {
	cursor[K]
}

// Key returns the key at the cursor. It panics when no entry is current.
func (it *KeyIterator[K]) Key() K {
	return it.m.keys[it.current()]
}

// ValueIterator walks the stored values. Obtain one from
// Values().Iterator().
type ValueIterator[K comparable] struct {
	cursor[K]
}

// Value returns the value at the cursor. It panics when no entry is
// current.
func (it *ValueIterator[K]) Value() int32 {
	return it.m.values[it.current()]
}
