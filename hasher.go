package hamster

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher is the hasher collaborator of the trie: given a key, it produces
// a deterministic 64-bit digest. Equal keys must hash equal; poor
// uniformity only degrades lookup to collision chains, it never breaks
// correctness.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc[K comparable] func(key K) uint64

// Hash implements Hasher.
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// DefaultHasher returns a Hasher for any comparable key type, built on
// hash/maphash's generic-comparable hashing (maphash.Comparable) seeded
// once per construction. This is the "seeded, cheaply-cloneable hashing
// factory" spec.md's design notes recommend over re-hashing from scratch
// per call: the seed is captured once and reused for the life of every Map
// that shares this Hasher. No third-party library in the retrieved pack
// hashes an arbitrary comparable type directly; other_examples'
// wdamron-amt package takes the same hash/maphash route for its generic
// key type, which is the grounding for using the stdlib here instead of a
// third-party hash package (see DESIGN.md).
func DefaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return HasherFunc[K](func(key K) uint64 {
		return maphash.Comparable(seed, key)
	})
}

// XXStringHasher returns a Hasher[string] backed by xxhash, a fast
// non-cryptographic hash pulled into the retrieved pack by
// matrixorigin-matrixone (github.com/cespare/xxhash/v2) for row/index
// key hashing. Prefer this over DefaultHasher for string-keyed maps on
// the hot path — it skips maphash's per-comparable-type reflection.
func XXStringHasher() Hasher[string] {
	return HasherFunc[string](xxhash.Sum64String)
}

// XXUint64Hasher returns a Hasher[uint64] backed by xxhash, for maps keyed
// by integers where the caller wants a faster mix than maphash.Comparable.
func XXUint64Hasher() Hasher[uint64] {
	return HasherFunc[uint64](func(key uint64) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], key)
		return xxhash.Sum64(buf[:])
	})
}
