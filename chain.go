package intmap

// compactChain re-establishes the probe invariant after the slot at gap has
// been emptied. It walks forward from the gap; every entry whose probe path
// from its hash position crosses the gap is shifted back into it, the
// entry's old slot becoming the new gap, until an empty slot terminates the
// chain. Afterwards every remaining entry is again reachable from its hash
// position without crossing an empty slot.
func (m *Map[K]) compactChain(gap int) {
	m.compactChainFunc(gap, nil)
}

// compactChainFunc is compactChain with a callback: a non-nil shifted is
// invoked for every entry moved, with the slot it left and the slot it
// landed in. Cursors sweeping a table that had no empty slot use it to
// spot entries carried across their position.
func (m *Map[K]) compactChainFunc(gap int, shifted func(key K, from, to int)) {
	mask := len(m.values) - 1
	idx := gap
	var zero K

	for {
		idx = (idx + 1) & mask
		if m.values[idx] == m.missing {
			return
		}

		home := int(m.hashFunc(m.keys[idx]) & uint64(mask))
		if inChainRange(home, gap, idx) {
			m.keys[gap] = m.keys[idx]
			m.values[gap] = m.values[idx]

			m.keys[idx] = zero
			m.values[idx] = m.missing
			if shifted != nil {
				shifted(m.keys[gap], idx, gap)
			}
			gap = idx
		}
	}
}

// inChainRange reports whether gap lies on the circular probe path from
// home to slot, i.e. whether an entry sitting at slot with hash position
// home probed across gap to get there. Entries whose path does not cross
// the gap must stay put; shifting one would break lookups for it.
func inChainRange(home, gap, slot int) bool {
	if slot < home {
		return home <= gap || gap <= slot
	}
	return home <= gap && gap <= slot
}
