package hamster

import "math/bits"

// node is the internal branching node of the trie: a 32-bit presence
// bitmap plus a dense, slot-order slice of entries, one per set bit. It is
// the generic descendant of compressedTable in lleo-go-hamt-functional's
// hamt32 package; this module never grades up to a separate full-table
// representation (see DESIGN.md).
type node[K comparable, V any] struct {
	presence uint32
	entries  []entry[K, V]
}

// occupied reports whether slot is populated.
func (n *node[K, V]) occupied(slot uint32) bool {
	if n == nil {
		return false
	}
	return n.presence&(1<<slot) != 0
}

// positionOf returns the index into entries that slot maps to. It must
// only be called when slot is known to be occupied.
func (n *node[K, V]) positionOf(slot uint32) int {
	return bits.OnesCount32(n.presence & (1<<slot - 1))
}

// entryAt returns the entry at slot. Call sites must first check occupied.
func (n *node[K, V]) entryAt(slot uint32) entry[K, V] {
	return n.entries[n.positionOf(slot)]
}

// withInserted returns a new node with entry placed at the previously
// empty slot.
func (n *node[K, V]) withInserted(slot uint32, e entry[K, V]) *node[K, V] {
	var presence uint32
	var old []entry[K, V]
	if n != nil {
		presence = n.presence
		old = n.entries
	}
	pos := bits.OnesCount32(presence & (1<<slot - 1))

	entries := make([]entry[K, V], len(old)+1)
	copy(entries, old[:pos])
	entries[pos] = e
	copy(entries[pos+1:], old[pos:])

	return &node[K, V]{presence: presence | (1 << slot), entries: entries}
}

// withReplaced returns a new node with the occupied slot's entry swapped
// for e. The presence bitmap is unchanged.
func (n *node[K, V]) withReplaced(slot uint32, e entry[K, V]) *node[K, V] {
	pos := n.positionOf(slot)
	entries := make([]entry[K, V], len(n.entries))
	copy(entries, n.entries)
	entries[pos] = e
	return &node[K, V]{presence: n.presence, entries: entries}
}

// withRemoved returns a new node with the occupied slot cleared. The
// result may have presence == 0; callers decide what an empty node means
// at their level (legal only for the root, which Map.Delete replaces with
// nil).
func (n *node[K, V]) withRemoved(slot uint32) *node[K, V] {
	pos := n.positionOf(slot)
	entries := make([]entry[K, V], len(n.entries)-1)
	copy(entries, n.entries[:pos])
	copy(entries[pos:], n.entries[pos+1:])
	return &node[K, V]{presence: n.presence &^ (1 << slot), entries: entries}
}

// reducible reports whether n has exactly one entry and that entry is a
// leaf or collision rather than a subtree — the shape invariant (3)
// forbids at any non-root level below maxDepth.
func (n *node[K, V]) reducible() bool {
	if len(n.entries) != 1 {
		return false
	}
	switch n.entries[0].(type) {
	case leafEntry[K, V], collisionEntry[K, V]:
		return true
	default:
		return false
	}
}
