// SPDX-License-Identifier: MIT
//
// File: radix.go
// Role: least-significant-digit string radix sorts over 256 byte buckets.

package sorting

import "fmt"

// fixedLen returns the common length of a, or ErrLengthMismatch.
func fixedLen(a []string) (int, error) {
	if len(a) == 0 {
		return 0, nil
	}
	n := len(a[0])
	for i, s := range a {
		if len(s) != n {
			return 0, fmt.Errorf("a[%d] has length %d, want %d: %w", i, len(s), n, ErrLengthMismatch)
		}
	}

	return n, nil
}

// RadixSortFixed sorts strings of one common length, one byte position per
// pass from the last, scattering into 256 buckets and gathering them back.
func RadixSortFixed(a []string) error {
	n, err := fixedLen(a)
	if err != nil {
		return fmt.Errorf("RadixSortFixed: %w", err)
	}
	var buckets [radix][]string
	for pos := n - 1; pos >= 0; pos-- {
		for _, s := range a {
			buckets[s[pos]] = append(buckets[s[pos]], s)
		}
		gather(a, buckets[:])
	}

	return nil
}

// gather copies the buckets back into dst in bucket order and empties them,
// keeping their capacity for the next pass.
func gather(dst []string, buckets [][]string) {
	idx := 0
	for b := range buckets {
		idx += copy(dst[idx:], buckets[b])
		clear(buckets[b])
		buckets[b] = buckets[b][:0]
	}
}

// CountingRadixSort sorts strings of one common length with counting passes,
// alternating between a and a scratch slice of equal size.
func CountingRadixSort(a []string) error {
	n, err := fixedLen(a)
	if err != nil {
		return fmt.Errorf("CountingRadixSort: %w", err)
	}
	in, out := a, make([]string, len(a))
	for pos := n - 1; pos >= 0; pos-- {
		var count [radix + 1]int
		for _, s := range in {
			count[int(s[pos])+1]++
		}
		for b := 1; b <= radix; b++ {
			count[b] += count[b-1]
		}
		for _, s := range in {
			out[count[s[pos]]] = s
			count[s[pos]]++
		}
		in, out = out, in
	}
	if n%2 == 1 {
		copy(a, in)
	}

	return nil
}

// RadixSort sorts strings of length at most maxLen. Strings are first grouped
// by length; the pass for byte position p only touches the suffix of a whose
// strings are longer than p, so shorter strings stay ahead of their
// extensions.
func RadixSort(a []string, maxLen int) error {
	if maxLen < 0 {
		return fmt.Errorf("RadixSort: maxLen=%d: %w", maxLen, ErrLengthMismatch)
	}
	byLength := make([][]string, maxLen+1)
	for i, s := range a {
		if len(s) > maxLen {
			return fmt.Errorf("RadixSort: a[%d] has length %d > %d: %w", i, len(s), maxLen, ErrLengthMismatch)
		}
	}
	counts := make([]int, maxLen+1)
	for _, s := range a {
		byLength[len(s)] = append(byLength[len(s)], s)
		counts[len(s)]++
	}
	gather(a, byLength)

	var buckets [radix][]string
	start := len(a)
	for pos := maxLen - 1; pos >= 0; pos-- {
		start -= counts[pos+1]
		for _, s := range a[start:] {
			buckets[s[pos]] = append(buckets[s[pos]], s)
		}
		gather(a[start:], buckets[:])
	}

	return nil
}
