package hamster

import (
	"fmt"
	"math/bits"
)

// CheckInvariants walks the whole map verifying the structural invariants
// spec.md section 3 requires: presence/entries agreement, no reducible
// non-root node below the maximum depth, and well-formed collision
// entries. It is meant for tests, not the hot path — the teacher's
// equivalent is the ASSERT-guarded panics scattered through hamt.go's
// DepthIter loop; this collects the same checks into one walk instead of
// scattering log.Panicf calls through the descent.
func (m Map[K, V]) CheckInvariants() error {
	if m.root == nil {
		return nil
	}
	return checkNode[K, V](m.root, 0, true)
}

func checkNode[K comparable, V any](n *node[K, V], level uint, isRoot bool) error {
	if bits.OnesCount32(n.presence) != len(n.entries) {
		return fmt.Errorf("node at level %d: presence has %d bits set but entries has len %d",
			level, bits.OnesCount32(n.presence), len(n.entries))
	}

	if !isRoot {
		if n.presence == 0 {
			return fmt.Errorf("non-root node at level %d is empty", level)
		}
		if level < maxDepth && n.reducible() {
			return fmt.Errorf("non-root node at level %d is reducible (single leaf/collision entry)", level)
		}
	}

	for _, e := range n.entries {
		switch t := e.(type) {
		case collisionEntry[K, V]:
			if len(t.pairs) < 2 {
				return fmt.Errorf("collision entry at level %d has %d pairs, want >= 2", level, len(t.pairs))
			}
			for i := range t.pairs {
				for j := i + 1; j < len(t.pairs); j++ {
					if t.pairs[i].key == t.pairs[j].key {
						return fmt.Errorf("collision entry at level %d has duplicate key", level)
					}
				}
			}
		case subtreeEntry[K, V]:
			if level >= maxDepth {
				return fmt.Errorf("subtree entry found at max depth (level %d)", level)
			}
			if err := checkNode[K, V](t.child, level+1, false); err != nil {
				return err
			}
		}
	}

	return nil
}
