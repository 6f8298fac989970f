package hamster

// insertAt returns a new node with key bound to val, reusing every
// untouched sibling from n by reference, plus whether the binding is new.
// n may be nil (an empty root), which this function treats identically to
// a node with no entries — the absent-slot branch below builds the very
// first node in that case. Grounded in hamt32/hamt.go's Put() combined
// with compressed_table.go's recursive split-building loop.
func insertAt[K comparable, V any](n *node[K, V], h hashCode, level uint, key K, val V) (*node[K, V], bool) {
	slot := h.fragment(level)

	if !n.occupied(slot) {
		return n.withInserted(slot, leafEntry[K, V]{hash: uint64(h), key: key, val: val}), true
	}

	existing := n.entryAt(slot)

	var newEntry entry[K, V]
	var added bool

	switch ex := existing.(type) {
	case subtreeEntry[K, V]:
		child, a := insertAt(ex.child, h, level+1, key, val)
		newEntry, added = subtreeEntry[K, V]{child: child}, a

	case leafEntry[K, V]:
		if ex.key == key {
			newEntry, added = leafEntry[K, V]{hash: ex.hash, key: key, val: val}, false
		} else {
			newEntry, added = resolve(ex.hash, ex, uint64(h), key, val, level)
		}

	case collisionEntry[K, V]:
		if ex.hash == uint64(h) {
			pairs, a := upsertPair(ex.pairs, key, val)
			newEntry, added = collisionEntry[K, V]{hash: ex.hash, pairs: pairs}, a
		} else {
			newEntry, added = resolve(ex.hash, ex, uint64(h), key, val, level)
		}

	default:
		panic("hamster: unreachable entry type in insertAt")
	}

	return n.withReplaced(slot, newEntry), added
}

// resolve builds the replacement for a slot whose existing entry (a leaf
// or a collision, carrying existingHash) conflicts with a new key whose
// hash is newHash. It implements spec.md section 4.3's split procedure:
// equal hashes always produce a Collision regardless of level (this is
// checked before ever looking at fragments, so two hashes that coincide
// only from level onward but were already known to differ cannot be
// mistaken for a real collision); otherwise it descends one level at a
// time, building single-entry nodes while the two hashes' fragments keep
// agreeing, until they diverge into a genuine two-entry node.
func resolve[K comparable, V any](existingHash uint64, existingEntry entry[K, V], newHash uint64, newKey K, newVal V, level uint) (entry[K, V], bool) {
	if existingHash == newHash {
		pairs, added := upsertPair(pairsOf[K, V](existingEntry), newKey, newVal)
		return collisionEntry[K, V]{hash: existingHash, pairs: pairs}, added
	}

	if level >= maxDepth {
		// Two 64-bit hashes that differ must diverge in fragments by the
		// time all 64 bits are consumed; reaching here means the caller
		// violated the existingHash == newHash check above.
		panic("hamster: distinct hashes failed to diverge by max depth")
	}

	existingFrag := hashCode(existingHash).fragment(level + 1)
	newFrag := hashCode(newHash).fragment(level + 1)

	if existingFrag == newFrag {
		childEntry, added := resolve(existingHash, existingEntry, newHash, newKey, newVal, level+1)
		child := &node[K, V]{presence: 1 << existingFrag, entries: []entry[K, V]{childEntry}}
		return subtreeEntry[K, V]{child: child}, added
	}

	newLeaf := leafEntry[K, V]{hash: newHash, key: newKey, val: newVal}
	var entries []entry[K, V]
	if existingFrag < newFrag {
		entries = []entry[K, V]{existingEntry, newLeaf}
	} else {
		entries = []entry[K, V]{newLeaf, existingEntry}
	}
	child := &node[K, V]{presence: 1<<existingFrag | 1<<newFrag, entries: entries}
	return subtreeEntry[K, V]{child: child}, true
}
