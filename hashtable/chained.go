// SPDX-License-Identifier: MIT

package hashtable

import "github.com/katalvlaran/dsakit/list"

// ChainedSet is a hash set resolving collisions with per-bucket linked
// lists. The bucket slice is allocated once per rehash and never appended to,
// since a list.List must not move once used.
type ChainedSet[K comparable] struct {
	buckets []list.List[K]
	size    int
	hash    HashFunc[K]
}

// NewChainedSet returns an empty set using hash.
func NewChainedSet[K comparable](hash HashFunc[K], opts ...Option) *ChainedSet[K] {
	if hash == nil {
		panic(PanicNilHash)
	}
	o := applyOptions(opts)

	return &ChainedSet[K]{buckets: make([]list.List[K], o.size), hash: hash}
}

// Len returns the number of keys.
func (s *ChainedSet[K]) Len() int { return s.size }

// Buckets returns the current number of buckets.
func (s *ChainedSet[K]) Buckets() int { return len(s.buckets) }

func (s *ChainedSet[K]) bucket(x K) *list.List[K] {
	return &s.buckets[s.hash(x)%uint64(len(s.buckets))]
}

func find[K comparable](b *list.List[K], x K) (list.Iterator[K], bool) {
	end := b.End()
	for it := b.Begin(); it != end; it.Advance() {
		if it.Value() == x {
			return it, true
		}
	}

	return end, false
}

// Contains reports whether x is in the set.
func (s *ChainedSet[K]) Contains(x K) bool {
	_, ok := find(s.bucket(x), x)

	return ok
}

// Insert adds x and reports whether it was absent. The table grows once
// there are more keys than buckets.
func (s *ChainedSet[K]) Insert(x K) bool {
	b := s.bucket(x)
	if _, ok := find(b, x); ok {
		return false
	}
	b.PushBack(x)
	s.size++
	if s.size > len(s.buckets) {
		s.rehash()
	}

	return true
}

// Remove deletes x and reports whether it was present.
func (s *ChainedSet[K]) Remove(x K) bool {
	b := s.bucket(x)
	it, ok := find(b, x)
	if !ok {
		return false
	}
	b.Erase(it)
	s.size--

	return true
}

// Clear removes every key; the bucket count is kept.
func (s *ChainedSet[K]) Clear() {
	for i := range s.buckets {
		s.buckets[i].Clear()
	}
	s.size = 0
}

// Values returns every key in bucket order.
func (s *ChainedSet[K]) Values() []K {
	out := make([]K, 0, s.size)
	for i := range s.buckets {
		out = append(out, s.buckets[i].Values()...)
	}

	return out
}

// rehash moves every node into a table of NextPrime(2·buckets) buckets. Nodes
// are spliced, not copied.
func (s *ChainedSet[K]) rehash() {
	old := s.buckets
	s.buckets = make([]list.List[K], NextPrime(2*len(old)))
	for i := range old {
		from := &old[i]
		for !from.Empty() {
			it := from.Begin()
			to := s.bucket(it.Value())
			to.SpliceOne(to.End(), from, it)
		}
	}
}
