package hamster

import "fmt"

// Map is a persistent associative array from K to V. The zero value is not
// a usable Map; construct one with New or From. A Map is cheap to copy: it
// holds only a pointer to its root Node, its binding count and a shared
// Hasher, never the tree itself.
type Map[K comparable, V any] struct {
	root   *node[K, V]
	size   int
	hasher Hasher[K]
}

// Pair is one key/value binding, the element type From folds over.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// New returns an empty Map. Equivalent to spec's empty().
func New[K comparable, V any](opts ...Option[K, V]) Map[K, V] {
	var cfg config[K, V]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasher == nil {
		cfg.hasher = DefaultHasher[K]()
	}
	return Map[K, V]{hasher: cfg.hasher}
}

// From builds a Map by folding Insert over pairs in order, so a later pair
// overrides an earlier one with an equal key.
func From[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) Map[K, V] {
	m := New[K, V](opts...)
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Val)
	}
	return m
}

// IsEmpty reports whether the map has no bindings.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Len returns the number of key/value bindings in the map.
func (m Map[K, V]) Len() int {
	return m.size
}

// Get retrieves the value bound to key. The bool result reports whether
// key was bound; a false result is not an error.
func (m Map[K, V]) Get(key K) (V, bool) {
	if m.root == nil {
		var zero V
		return zero, false
	}
	h := hashCode(m.hasher.Hash(key))
	return lookup(m.root, h, 0, key)
}

// Contains reports whether key is bound in the map.
func (m Map[K, V]) Contains(key K) bool {
	_, found := m.Get(key)
	return found
}

// Insert returns a new Map with key bound to val, all other bindings
// preserved. If key was already bound its value is replaced.
func (m Map[K, V]) Insert(key K, val V) Map[K, V] {
	h := hashCode(m.hasher.Hash(key))
	newRoot, added := insertAt(m.root, h, 0, key, val)
	size := m.size
	if added {
		size++
	}
	return Map[K, V]{root: newRoot, size: size, hasher: m.hasher}
}

// Delete returns a new Map without any binding for key. If key was absent
// the result has contents equal to the receiver.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	h := hashCode(m.hasher.Hash(key))
	newRoot, _, removed := removeAt(m.root, h, 0, key)
	if !removed {
		return m
	}
	if newRoot != nil && newRoot.presence == 0 {
		newRoot = nil
	}
	return Map[K, V]{root: newRoot, size: m.size - 1, hasher: m.hasher}
}

// Height returns the maximum depth of any reachable node: 0 for an empty
// map, otherwise 1 + the deepest child (a leaf is depth 0 below its
// parent, a collision is depth 1, matching get_height in the Rust
// original this spec was distilled from).
func (m Map[K, V]) Height() int {
	if m.root == nil {
		return 0
	}
	return heightOf[K, V](m.root)
}

func heightOf[K comparable, V any](n *node[K, V]) int {
	if n.presence == 0 {
		return 0
	}
	max := 0
	for _, e := range n.entries {
		var d int
		switch t := e.(type) {
		case leafEntry[K, V]:
			d = 0
		case collisionEntry[K, V]:
			d = 1
		case subtreeEntry[K, V]:
			d = heightOf[K, V](t.child)
		}
		if d > max {
			max = d
		}
	}
	return max + 1
}

// String renders a short summary of the map, in the spirit of the
// teacher's Hamt.String().
func (m Map[K, V]) String() string {
	return fmt.Sprintf("Map{len: %d, height: %d}", m.Len(), m.Height())
}
