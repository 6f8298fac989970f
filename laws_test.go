package hamster_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxov/hamster"
)

// contents collects m's bindings for the given keys into a plain Go map
// (keys that m does not bind are left out), giving us something go-cmp can
// diff when a test wants to assert two maps hold equal content without
// caring about internal structural sharing.
func contents(m hamster.Map[string, int], keys []string) map[string]int {
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		if v, ok := m.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

func randomKeys(n int, r *rand.Rand) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = randomString(r, 1+r.Intn(12))
	}
	return keys
}

func randomString(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// uniqueKeys returns n pairwise-distinct keys, needed by laws (like order
// independence of From) that are only stated for distinct-key inputs.
func uniqueKeys(n int, r *rand.Rand) []string {
	seen := make(map[string]bool, n)
	keys := make([]string, 0, n)
	for len(keys) < n {
		k := randomString(r, 4) + "-" + randomString(r, 4)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func TestLawLookupAfterInsert(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	m := hamster.New[string, int]()
	for i := 0; i < 500; i++ {
		k := randomKeys(1, r)[0]
		v := r.Int()
		m2 := m.Insert(k, v)
		got, ok := m2.Get(k)
		require.True(t, ok)
		assert.Equal(t, v, got)
		m = m2
	}
	require.NoError(t, m.CheckInvariants())
}

func TestLawInsertDoesNotAffectUnrelatedKeys(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	keys := randomKeys(200, r)
	m := hamster.New[string, int]()
	for i, k := range keys {
		m = m.Insert(k, i)
	}

	newKey := "zzz-not-present-zzz"
	before := contents(m, keys)
	after := m.Insert(newKey, 12345)
	afterContents := contents(after, keys)

	if diff := cmp.Diff(before, afterContents); diff != "" {
		t.Fatalf("insert of unrelated key changed existing bindings (-before +after):\n%s", diff)
	}
}

func TestLawInsertInsertOverride(t *testing.T) {
	m := hamster.New[string, int]()
	m = m.Insert("k", 1)
	m = m.Insert("k", 2)
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLawInsertRemoveRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	keys := randomKeys(300, r)
	m := hamster.New[string, int]()
	for i, k := range keys {
		m = m.Insert(k, i)
	}

	newKey := "round-trip-fresh-key"
	require.False(t, m.Contains(newKey))

	before := contents(m, keys)
	after := m.Insert(newKey, 999).Delete(newKey)
	afterContents := contents(after, keys)

	if diff := cmp.Diff(before, afterContents); diff != "" {
		t.Fatalf("insert-then-remove round trip changed contents (-before +after):\n%s", diff)
	}
	assert.False(t, after.Contains(newKey))
}

func TestLawRemoveIdempotence(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	keys := randomKeys(100, r)
	m := hamster.New[string, int]()
	for i, k := range keys {
		m = m.Insert(k, i)
	}

	once := m.Delete(keys[0])
	twice := once.Delete(keys[0])

	if diff := cmp.Diff(contents(once, keys), contents(twice, keys)); diff != "" {
		t.Fatalf("second remove changed contents (-once +twice):\n%s", diff)
	}
	require.NoError(t, twice.CheckInvariants())
}

func TestLawOrderIndependenceOfFrom(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	keys := uniqueKeys(80, r)
	pairs := make([]hamster.Pair[string, int], len(keys))
	for i, k := range keys {
		pairs[i] = hamster.Pair[string, int]{Key: k, Val: i}
	}

	shuffled := make([]hamster.Pair[string, int], len(pairs))
	copy(shuffled, pairs)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	m1 := hamster.From(pairs)
	m2 := hamster.From(shuffled)

	sortedKeys := append([]string(nil), keys...)
	sort.Strings(sortedKeys)

	if diff := cmp.Diff(contents(m1, sortedKeys), contents(m2, sortedKeys)); diff != "" {
		t.Fatalf("From result depends on input order (-original +shuffled):\n%s", diff)
	}
}

func TestLawPersistenceUnderManyUpdates(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	keys := uniqueKeys(150, r)

	snapshots := make([]hamster.Map[string, int], 0, len(keys)+1)
	m := hamster.New[string, int]()
	snapshots = append(snapshots, m)
	for i, k := range keys {
		m = m.Insert(k, i)
		snapshots = append(snapshots, m)
	}

	for i, snap := range snapshots {
		for j := 0; j < i; j++ {
			v, ok := snap.Get(keys[j])
			require.True(t, ok, "snapshot %d should still see key %d", i, j)
			assert.Equal(t, j, v)
		}
		for j := i; j < len(keys); j++ {
			assert.False(t, snap.Contains(keys[j]), "snapshot %d should not yet see key %d", i, j)
		}
	}
}
