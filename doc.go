/*
Package hamster implements a persistent (functional) Hash Array Mapped Trie.
Functional here means immutable and persistent: Insert and Delete return a
new Map value and never touch the receiver. Two Map values produced from a
common ancestor share as much of their internal node structure as possible,
so an update only allocates nodes along the path from the root down to the
changed key — O(log32 N) nodes, not the whole map.

A key's 64-bit hash is split, most-significant-bit first, into twelve 5-bit
fragments (levels 0 through 11) followed by one 4-bit fragment (level 12).
Each fragment selects a slot in the Node at that depth. A Node records which
of its 32 (or, at level 12, 16) conceptual slots are populated with a
presence bitmap, and stores only the occupied slots' entries in a dense
slice ordered by slot index — the same compressed-table technique as
github.com/lleo/go-hamt-functional's hamt32 package, generalized from a
fixed key.Key type to any comparable K.

Lookup, Insert and Delete all compute a key's hash once and reuse the
fragment sequence for the whole descent. Two keys that hash identically on
their first several fragments share a chain of single-entry nodes; two keys
whose full 64-bit hashes collide are stored together in a Collision entry
rather than recursed on forever.
*/
package hamster
