package hamster

// removeAt returns a new node with any binding for key dropped, the
// removed value, and whether key was found. n is never nil here — the
// empty-map case is handled by Map.Delete before recursion starts.
// Grounded in hamt32/hamt.go's Del() combined with collision_leaf.go's
// del() (collapsing a two-pair collision down to a flat leaf).
func removeAt[K comparable, V any](n *node[K, V], h hashCode, level uint, key K) (*node[K, V], V, bool) {
	var zero V
	slot := h.fragment(level)
	if !n.occupied(slot) {
		return n, zero, false
	}

	switch ex := n.entryAt(slot).(type) {
	case leafEntry[K, V]:
		if ex.key != key {
			return n, zero, false
		}
		return n.withRemoved(slot), ex.val, true

	case collisionEntry[K, V]:
		if ex.hash != uint64(h) {
			return n, zero, false
		}
		remaining, removedVal, found := removePair(ex.pairs, key)
		if !found {
			return n, zero, false
		}
		switch len(remaining) {
		case 0:
			panic("hamster: collision entry held fewer than 2 pairs before removal")
		case 1:
			collapsed := leafEntry[K, V]{hash: ex.hash, key: remaining[0].key, val: remaining[0].val}
			return n.withReplaced(slot, collapsed), removedVal, true
		default:
			return n.withReplaced(slot, collisionEntry[K, V]{hash: ex.hash, pairs: remaining}), removedVal, true
		}

	case subtreeEntry[K, V]:
		newChild, removedVal, found := removeAt(ex.child, h, level+1, key)
		if !found {
			return n, zero, false
		}
		if newChild.presence == 0 {
			return n.withRemoved(slot), removedVal, true
		}
		if level < maxDepth && newChild.reducible() {
			return n.withReplaced(slot, newChild.entries[0]), removedVal, true
		}
		return n.withReplaced(slot, subtreeEntry[K, V]{child: newChild}), removedVal, true

	default:
		panic("hamster: unreachable entry type in removeAt")
	}
}
