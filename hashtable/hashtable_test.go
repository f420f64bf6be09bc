package hashtable_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/katalvlaran/dsakit/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// set is the surface shared by both tables.
type set[K comparable] interface {
	Insert(K) bool
	Remove(K) bool
	Contains(K) bool
	Len() int
	Clear()
	Values() []K
}

func stringSets(opts ...hashtable.Option) map[string]set[string] {
	return map[string]set[string]{
		"Chained":     hashtable.NewChainedSet(hashtable.StringHash, opts...),
		"Probing":     hashtable.NewProbingSet(hashtable.StringHash, opts...),
		"ChainedPoly": hashtable.NewChainedSet(hashtable.PolyStringHash, opts...),
		"ProbingPoly": hashtable.NewProbingSet(hashtable.PolyStringHash, opts...),
	}
}

func TestPrimes(t *testing.T) {
	for _, p := range []int{2, 3, 5, 7, 11, 101, 7919} {
		assert.True(t, hashtable.IsPrime(p), "%d", p)
	}
	for _, c := range []int{-7, 0, 1, 4, 9, 15, 100, 7917} {
		assert.False(t, hashtable.IsPrime(c), "%d", c)
	}
	assert.Equal(t, 2, hashtable.NextPrime(0))
	assert.Equal(t, 11, hashtable.NextPrime(8))
	assert.Equal(t, 101, hashtable.NextPrime(101))
	assert.Equal(t, 211, hashtable.NextPrime(202))
}

func TestPolyStringHash(t *testing.T) {
	assert.Equal(t, uint64(0), hashtable.PolyStringHash(""))
	assert.Equal(t, uint64('a'), hashtable.PolyStringHash("a"))
	assert.Equal(t, uint64(37*'a'+'b'), hashtable.PolyStringHash("ab"))
}

func TestSets_Basic(t *testing.T) {
	for name, s := range stringSets() {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.Insert("apple"))
			assert.True(t, s.Insert("pear"))
			assert.False(t, s.Insert("apple"), "duplicate")
			assert.Equal(t, 2, s.Len())
			assert.True(t, s.Contains("pear"))
			assert.False(t, s.Contains("plum"))

			assert.True(t, s.Remove("apple"))
			assert.False(t, s.Remove("apple"))
			assert.False(t, s.Contains("apple"))
			assert.True(t, s.Insert("apple"), "reinsert after remove")
			assert.Equal(t, 2, s.Len())

			s.Clear()
			assert.Equal(t, 0, s.Len())
			assert.False(t, s.Contains("pear"))
		})
	}
}

// TestSets_GrowthAgainstBTree fills small tables far past their initial size
// with random inserts and removes and compares with a google/btree set.
func TestSets_GrowthAgainstBTree(t *testing.T) {
	for name, s := range stringSets(hashtable.WithSize(3)) {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(11))
			ref := btree.NewOrderedG[string](8)
			for i := 0; i < 4000; i++ {
				k := fmt.Sprintf("k%d", rng.Intn(1500))
				if rng.Intn(4) == 0 {
					_, had := ref.Delete(k)
					require.Equal(t, had, s.Remove(k), "remove %s", k)
				} else {
					_, had := ref.ReplaceOrInsert(k)
					require.Equal(t, !had, s.Insert(k), "insert %s", k)
				}
			}
			require.Equal(t, ref.Len(), s.Len())

			want := make([]string, 0, ref.Len())
			ref.Ascend(func(k string) bool {
				want = append(want, k)

				return true
			})
			got := s.Values()
			slices.Sort(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestChainedSet_RehashPolicy(t *testing.T) {
	s := hashtable.NewChainedSet(hashtable.IntHash[int], hashtable.WithSize(5))
	require.Equal(t, 5, s.Buckets())
	for i := 0; i < 5; i++ {
		s.Insert(i)
	}
	assert.Equal(t, 5, s.Buckets(), "load factor 1 is allowed")
	s.Insert(5)
	assert.Equal(t, 11, s.Buckets(), "next prime above 2·5")
	for i := 0; i < 6; i++ {
		assert.True(t, s.Contains(i))
	}
}

func TestProbingSet_RehashPolicy(t *testing.T) {
	s := hashtable.NewProbingSet(hashtable.IntHash[int], hashtable.WithSize(7))
	require.Equal(t, 7, s.Slots())
	for i := 0; i < 3; i++ {
		s.Insert(i)
	}
	assert.Equal(t, 7, s.Slots())
	s.Insert(3)
	assert.Equal(t, 17, s.Slots(), "more than half full triggers growth")

	// Deleted slots still count towards the load until a rehash clears them.
	s.Remove(0)
	assert.False(t, s.Contains(0))
	assert.Equal(t, 3, s.Len())
}

func TestConstructors_NilHashPanics(t *testing.T) {
	assert.PanicsWithValue(t, hashtable.PanicNilHash, func() { hashtable.NewChainedSet[string](nil) })
	assert.PanicsWithValue(t, hashtable.PanicNilHash, func() { hashtable.NewProbingSet[string](nil) })
}
