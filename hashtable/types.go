// SPDX-License-Identifier: MIT

// Package hashtable implements two hash sets over comparable keys:
//
//   - ChainedSet: separate chaining. Each bucket is a list.List; the table
//     grows to the next prime above twice its size once the load factor
//     exceeds 1, relinking existing nodes into their new buckets.
//   - ProbingSet: open addressing with quadratic probing (offsets 1, 3, 5, …
//     from the home slot) and lazy deletion. The table grows once more than
//     half of its slots are in use, so a probe always finds a free slot.
//
// Hashing is supplied by the caller as a HashFunc. StringHash (xxhash),
// PolyStringHash and IntHash cover the common key types.
//
// Table sizes are always prime; see IsPrime and NextPrime.
package hashtable

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// DefaultSize is the initial number of buckets or slots.
const DefaultSize = 101

// PanicNilHash is raised by constructors given a nil HashFunc.
const PanicNilHash = "hashtable: nil hash function"

// HashFunc maps a key to a 64-bit hash. Equal keys must hash equally.
type HashFunc[K comparable] func(K) uint64

// StringHash hashes s with xxhash64.
func StringHash(s string) uint64 { return xxhash.Sum64String(s) }

// PolyStringHash is the classic polynomial string hash h = 37·h + c.
func PolyStringHash(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = 37*h + uint64(s[i])
	}

	return h
}

// IntHash hashes an integer key to itself.
func IntHash[K constraints.Integer](k K) uint64 { return uint64(k) }

// Option configures a table at construction.
type Option func(*options)

type options struct {
	size int
}

// WithSize sets the initial table size; it is rounded up to a prime. Values
// below 2 keep DefaultSize.
func WithSize(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.size = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{size: DefaultSize}
	for _, opt := range opts {
		opt(&o)
	}
	o.size = NextPrime(o.size)

	return o
}

// IsPrime reports whether n is prime, by trial division over odd divisors.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}

	return n
}
