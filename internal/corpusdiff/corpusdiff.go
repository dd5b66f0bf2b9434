// Package corpusdiff reports how far a segmenter's actual output drifted
// from an expected sentence list, using edit distance between sentences
// instead of a bare pass/fail count.
package corpusdiff

import "fmt"

// Levenshtein returns the edit distance between two rune sequences.
func Levenshtein(a, b []rune) int {
	alen := len(a)
	blen := len(b)
	column := make([]int, alen+1)

	for y := 1; y <= alen; y++ {
		column[y] = y
	}
	for x := 1; x <= blen; x++ {
		column[0] = x
		lastkey := x - 1
		for y := 1; y <= alen; y++ {
			oldkey := column[y]
			incr := 0
			if a[y-1] != b[x-1] {
				incr = 1
			}
			column[y] = minimum(column[y]+1, column[y-1]+1, lastkey+incr)
			lastkey = oldkey
		}
	}
	return column[alen]
}

func minimum(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// Mismatch describes one sentence position where actual disagreed with
// expected, along with the nearest expected sentence by edit distance (not
// necessarily the one at the same index) to help a reader spot an
// off-by-one split rather than a genuine content defect.
type Mismatch struct {
	Index            int
	Actual           string
	Expected         string
	NearestExpected  string
	NearestDistance  int
	ExactIndexOffset int // position of NearestExpected within the expected slice
}

// Diff compares actual against expected sentence-for-sentence and, for every
// disagreement, finds the expected sentence nearest the actual one by edit
// distance. It never changes the pass/fail verdict — spec's corpus property
// is exact equality — it only makes a failure's report readable.
func Diff(actual, expected []string) []Mismatch {
	var mismatches []Mismatch
	for i := 0; i < len(actual) || i < len(expected); i++ {
		var act, exp string
		if i < len(actual) {
			act = actual[i]
		}
		if i < len(expected) {
			exp = expected[i]
		}
		if act == exp {
			continue
		}

		best := -1
		bestDist := -1
		for j, candidate := range expected {
			dist := Levenshtein([]rune(act), []rune(candidate))
			if bestDist == -1 || dist < bestDist {
				bestDist = dist
				best = j
			}
		}

		m := Mismatch{Index: i, Actual: act, Expected: exp, ExactIndexOffset: best}
		if best >= 0 {
			m.NearestExpected = expected[best]
			m.NearestDistance = bestDist
		}
		mismatches = append(mismatches, m)
	}
	return mismatches
}

// Report renders mismatches as human-readable lines for a CLI to print.
func Report(mismatches []Mismatch) []string {
	if len(mismatches) == 0 {
		return []string{"no mismatches"}
	}
	var lines []string
	for _, m := range mismatches {
		lines = append(lines, fmt.Sprintf(
			"sentence %d: got %q, want %q (nearest expected sentence %d at edit distance %d: %q)",
			m.Index, m.Actual, m.Expected, m.ExactIndexOffset, m.NearestDistance, m.NearestExpected,
		))
	}
	return lines
}
