package filter

import "bytes"

// compareBytes orders byte strings lexicographically on their common
// prefix; ties are broken by length, so a shorter string sorts before
// a longer string that extends it (e.g. "abc" < "abcd").
func compareBytes(lhs, rhs []byte) int {
	size := len(lhs)
	if len(rhs) < size {
		size = len(rhs)
	}
	if c := bytes.Compare(lhs[:size], rhs[:size]); c != 0 {
		return c
	}
	return len(lhs) - len(rhs)
}
