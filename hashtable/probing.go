// SPDX-License-Identifier: MIT

package hashtable

// entryState marks a probing slot. The zero value is stateEmpty so a fresh
// slice is an empty table.
type entryState uint8

const (
	stateEmpty entryState = iota
	stateActive
	stateDeleted
)

type hashEntry[K comparable] struct {
	element K
	info    entryState
}

// ProbingSet is an open-addressing hash set with quadratic probing.
// Deleted slots keep their key and stay in probe chains until the next
// rehash.
type ProbingSet[K comparable] struct {
	array    []hashEntry[K]
	size     int // active slots
	occupied int // active + deleted slots
	hash     HashFunc[K]
}

// NewProbingSet returns an empty set using hash.
func NewProbingSet[K comparable](hash HashFunc[K], opts ...Option) *ProbingSet[K] {
	if hash == nil {
		panic(PanicNilHash)
	}
	o := applyOptions(opts)

	return &ProbingSet[K]{array: make([]hashEntry[K], o.size), hash: hash}
}

// Len returns the number of keys.
func (s *ProbingSet[K]) Len() int { return s.size }

// Slots returns the current table size.
func (s *ProbingSet[K]) Slots() int { return len(s.array) }

// findPos returns the slot holding x, or the empty slot ending its probe
// chain. Probe i lands at home + i², computed incrementally.
func (s *ProbingSet[K]) findPos(x K) int {
	n := len(s.array)
	offset := 1
	pos := int(s.hash(x) % uint64(n))
	for s.array[pos].info != stateEmpty && s.array[pos].element != x {
		pos += offset
		offset += 2
		if pos >= n {
			pos -= n
		}
	}

	return pos
}

// Contains reports whether x is in the set.
func (s *ProbingSet[K]) Contains(x K) bool {
	return s.array[s.findPos(x)].info == stateActive
}

// Insert adds x and reports whether it was absent.
func (s *ProbingSet[K]) Insert(x K) bool {
	pos := s.findPos(x)
	e := &s.array[pos]
	if e.info == stateActive {
		return false
	}
	if e.info == stateEmpty {
		s.occupied++
	}
	e.element = x
	e.info = stateActive
	s.size++
	if 2*s.occupied > len(s.array) {
		s.rehash()
	}

	return true
}

// Remove marks x deleted and reports whether it was present.
func (s *ProbingSet[K]) Remove(x K) bool {
	pos := s.findPos(x)
	if s.array[pos].info != stateActive {
		return false
	}
	s.array[pos].info = stateDeleted
	s.size--

	return true
}

// Clear empties every slot; the table size is kept.
func (s *ProbingSet[K]) Clear() {
	clear(s.array)
	s.size = 0
	s.occupied = 0
}

// Values returns every key in slot order.
func (s *ProbingSet[K]) Values() []K {
	out := make([]K, 0, s.size)
	for _, e := range s.array {
		if e.info == stateActive {
			out = append(out, e.element)
		}
	}

	return out
}

// rehash reinserts the active keys into a table of NextPrime(2·slots) slots,
// dropping deleted markers.
func (s *ProbingSet[K]) rehash() {
	old := s.array
	s.array = make([]hashEntry[K], NextPrime(2*len(old)))
	s.size = 0
	s.occupied = 0
	for _, e := range old {
		if e.info == stateActive {
			s.Insert(e.element)
		}
	}
}
