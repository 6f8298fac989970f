package hamster

// lookup performs a read-only descent for key, starting at node n which
// sits at the given level. It allocates nothing, the generic descendant of
// hamt32/hamt.go's find() DepthIter loop.
func lookup[K comparable, V any](n *node[K, V], h hashCode, level uint, key K) (V, bool) {
	slot := h.fragment(level)
	if !n.occupied(slot) {
		var zero V
		return zero, false
	}

	switch e := n.entryAt(slot).(type) {
	case leafEntry[K, V]:
		if e.key == key {
			return e.val, true
		}
	case subtreeEntry[K, V]:
		return lookup(e.child, h, level+1, key)
	case collisionEntry[K, V]:
		for _, p := range e.pairs {
			if p.key == key {
				return p.val, true
			}
		}
	}

	var zero V
	return zero, false
}
