// Package hash owns the string hash used for wire-event dispatch.
//
// Ownership boundary:
// - Larson multiplicative hash (seedable)
// - delimited multi-segment hashing
//
// Event routing compares hashes of short command words instead of the
// words themselves, so both peers must agree on this exact function.
package hash

// Sum hashes s with a zero seed.
func Sum(s string) uint32 {
	return SumSeed(s, 0)
}

// SumSeed folds each byte of s into h as h*101 + byte, wrapping at 32 bits.
// An empty string returns the seed unchanged.
func SumSeed(s string, seed uint32) uint32 {
	h := seed
	for i := 0; i < len(s); i++ {
		h = h*101 + uint32(s[i])
	}
	return h
}

// Split hashes each sep-delimited segment of s, returning at most max
// results. Interior empty segments hash to 0. A trailing separator does not
// produce a trailing empty segment, and an empty input produces no segments.
func Split(s string, sep byte, max int) []uint32 {
	out := make([]uint32, 0, maxInitialCap(max))
	if max <= 0 {
		return out
	}
	start := 0
	i := 0
	for i < len(s) || i > start {
		if i == len(s) || s[i] == sep {
			out = append(out, Sum(s[start:i]))
			start = i + 1
			if len(out) == max || i == len(s) {
				break
			}
		}
		i++
	}
	return out
}

func maxInitialCap(max int) int {
	if max < 0 || max > 16 {
		return 16
	}
	return max
}
