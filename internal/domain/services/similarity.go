package services

import "strings"

// Ratio returns a similarity score in [0,1] between two strings: the ratio
// of matched-character-run length to the total length of both strings
// (2*M/T). Matched runs are found by locating the longest common block and
// recursing on the pieces to either side of it. Both sides are lowercased
// before comparison, independent of any normalization applied elsewhere.
func Ratio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	matched := matchingRunes(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

func matchingRunes(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a, b, alo, i, blo, j) +
		matchingRunes(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] within the
// given bounds, preferring the earliest block in a and then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	runEnding := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := runEnding[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		runEnding = next
	}

	return besti, bestj, bestsize
}
