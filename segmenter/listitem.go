package segmenter

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// listItemReplacer detects enumerated lists (alphabetical, roman-numeral,
// numeric) and rewrites them so each item starts at a synthetic line break
// (spec §4.2). It holds no state beyond its compiled rules and the numeral
// tables, and is safe to share once built.
type listItemReplacer struct {
	vocab *vocabulary

	alphabeticalListWithPeriods *rule
	alphabeticalListWithParens  *rule

	alphabeticalListLettersAndPeriods *rule
	extractAlphabeticalListLetters    *rule

	numberedListRegex1      *rule
	numberedListRegex2      *rule
	numberedListParensRegex *rule

	findNumberedList1 *rule
	findNumberedList2 *rule

	spaceBetweenListItemsFirst  *rule
	spaceBetweenListItemsSecond *rule

	findNumberedListParens *rule

	spaceBetweenListItemsThird *rule

	substituteListPeriod *rule
	listMarker           *rule
}

func newListItemReplacer(vocab *vocabulary) (*listItemReplacer, error) {
	l := &listItemReplacer{vocab: vocab}

	type spec struct {
		dst     **rule
		pattern string
		repl    string
		opts    regexp2.RegexOptions
	}
	specs := []spec{
		// https://rubular.com/r/XcpaJKH0sz
		{&l.alphabeticalListWithPeriods, `(?<=^)[a-z](?=\.)|(?<=\A)[a-z](?=\.)|(?<=\s)[a-z](?=\.)`, "", regexp2.IgnoreCase},
		// https://rubular.com/r/Gu5rQapywf
		{&l.alphabeticalListWithParens, `(?<=\()[a-z]+(?=\))|(?<=^)[a-z]+(?=\))|(?<=\A)[a-z]+(?=\))|(?<=\s)[a-z]+(?=\))`, "", regexp2.IgnoreCase},
		// https://rubular.com/r/wMpnVedEIb
		{&l.alphabeticalListLettersAndPeriods, `(?<=^)[a-z]\.|(?<=\A)[a-z]\.|(?<=\s)[a-z]\.`, "", regexp2.IgnoreCase},
		// https://rubular.com/r/NsNFSqrNvJ
		{&l.extractAlphabeticalListLetters, `\([a-z]+(?=\))|(?<=^)[a-z]+(?=\))|(?<=\A)[a-z]+(?=\))|(?<=\s)[a-z]+(?=\))`, "", regexp2.IgnoreCase},

		// https://regex101.com/r/cd3yNz/2
		{&l.numberedListRegex1, `\s\d{1,2}(?=\.\s)|^\d{1,2}(?=\.\s)|\s\d{1,2}(?=\.\))|^\d{1,2}(?=\.\))|(?<=\s\-)\d{1,2}(?=\.\s)|(?<=^\-)\d{1,2}(?=\.\s)|(?<=\s\⁃)\d{1,2}(?=\.\s)|(?<=^\⁃)\d{1,2}(?=\.\s)|(?<=s\-)\d{1,2}(?=\.\))|(?<=^\-)\d{1,2}(?=\.\))|(?<=\s\⁃)\d{1,2}(?=\.\))|(?<=^\⁃)\d{1,2}(?=\.\))`, "", regexp2.None},
		// https://regex101.com/r/cd3yNz/1
		{&l.numberedListRegex2, `(?<=\s)\d{1,2}\.(?=\s)|^\d{1,2}\.(?=\s)|(?<=\s)\d{1,2}\.(?=\))|^\d{1,2}\.(?=\))|(?<=\s\-)\d{1,2}\.(?=\s)|(?<=^\-)\d{1,2}\.(?=\s)|(?<=\s\⁃)\d{1,2}\.(?=\s)|(?<=^\⁃)\d{1,2}\.(?=\s)|(?<=\s\-)\d{1,2}\.(?=\))|(?<=^\-)\d{1,2}\.(?=\))|(?<=\s\⁃)\d{1,2}\.(?=\))|(?<=^\⁃)\d{1,2}\.(?=\))`, "", regexp2.None},
		// https://regex101.com/r/O8bLbW/1
		{&l.numberedListParensRegex, `\d{1,2}(?=\)\s)`, "", regexp2.None},

		{&l.findNumberedList1, `♨.+\n.+♨|♨.+\r.+♨`, "", regexp2.None},
		{&l.findNumberedList2, `for\s\d{1,2}♨\s[a-z]`, "", regexp2.None},

		// https://rubular.com/r/Wv4qLdoPx7, https://regex101.com/r/62YBlv/1
		{&l.spaceBetweenListItemsFirst, `(?<=\S\S)\s(?=\S\s*\d+♨)`, "\r", regexp2.None},
		// https://rubular.com/r/AizHXC6HxK, https://regex101.com/r/62YBlv/2
		{&l.spaceBetweenListItemsSecond, `(?<=\S\S)\s(?=\d{1,2}♨)`, "\r", regexp2.None},

		{&l.findNumberedListParens, `☝.+\n.+☝|☝.+\r.+☝`, "", regexp2.None},

		// https://rubular.com/r/GE5q6yID2j, https://regex101.com/r/62YBlv/3
		{&l.spaceBetweenListItemsThird, `(?<=\S\S)\s(?=\d{1,2}☝)`, "\r", regexp2.None},

		{&l.substituteListPeriod, `♨`, sentinelMaskedPeriod, regexp2.None},
		{&l.listMarker, `☝`, "", regexp2.None},
	}

	for _, s := range specs {
		r, err := newRule(s.pattern, s.repl, s.opts)
		if err != nil {
			return nil, err
		}
		*s.dst = r
	}

	return l, nil
}

// addLineBreak runs the four alphabetical passes followed by the two
// numeric passes, in the order spec §4.2 fixes.
func (l *listItemReplacer) addLineBreak(text string) string {
	text = l.iterateAlphabetArray(text, l.alphabeticalListWithPeriods, false, false)
	text = l.iterateAlphabetArray(text, l.alphabeticalListWithParens, true, false)

	text = l.iterateAlphabetArray(text, l.alphabeticalListWithPeriods, false, true)
	text = l.iterateAlphabetArray(text, l.alphabeticalListWithParens, true, true)

	text = l.scanLists(text, l.numberedListRegex1, l.numberedListRegex2, '♨', true)
	text = l.addLineBreaksForNumberedListWithPeriods(text)
	text = l.substituteListPeriod.replaceAll(text)

	text = l.scanLists(text, l.numberedListParensRegex, l.numberedListParensRegex, '☝', false)
	text = l.addLineBreaksForNumberedListWithParens(text)
	text = l.listMarker.replaceAll(text)

	return text
}

func (l *listItemReplacer) replaceAlphabetList(text, whatToReplace string) string {
	return l.alphabeticalListLettersAndPeriods.replaceAllFunc(text, func(m *regexp2.Match) string {
		mat := m.String()
		matchWoPeriod := strings.TrimSuffix(mat, ".")
		if matchWoPeriod == whatToReplace {
			return "\r" + matchWoPeriod + sentinelMaskedPeriod
		}
		return mat
	})
}

func (l *listItemReplacer) replaceAlphabetListParens(text, whatToReplace string) string {
	return l.extractAlphabeticalListLetters.replaceAllFunc(text, func(m *regexp2.Match) string {
		mat := m.String()
		if matchWoParen, ok := strings.CutPrefix(mat, "("); ok {
			if matchWoParen == whatToReplace {
				return "\r" + sentinelOpenParen + matchWoParen
			}
			return mat
		}
		if mat == whatToReplace {
			return "\r" + mat
		}
		return mat
	})
}

// iterateAlphabetArray extracts every candidate marker via the detector
// regex, maps it to its numeral rank, and rewrites only markers kept by the
// bug-compatible adjacency predicate spec §4.2 fixes exactly (see
// per-branch comments; these intentionally do not "read naturally").
func (l *listItemReplacer) iterateAlphabetArray(text string, detector *rule, parens, useRoman bool) string {
	table := l.vocab.latinLetter
	if useRoman {
		table = l.vocab.romanNumeral
	}

	type entry struct {
		text string
		rank int
	}
	var list []entry
	for _, m := range detector.findAll(text) {
		if rank, ok := table[m.String()]; ok {
			list = append(list, entry{m.String(), rank})
		}
	}

	n := len(list)
	result := text
	for i := 0; i < n; i++ {
		var keep bool
		switch {
		case n <= 1:
			// A single marker is never treated as a list. The source
			// this is ported from treats this as a deliberate bug;
			// the behavior is pinned regardless.
			keep = false
		case i == n-1:
			keep = abs(list[n-2].rank-list[n-1].rank) == 1
		case i == 0:
			// Index 0 is special-cased: it mixes a signed difference
			// with the next marker and an absolute one with the last.
			// Preserved as-is (De Morgan's negation of the reference's
			// skip condition).
			keep = list[1].rank-list[0].rank == 1 ||
				abs(list[n-1].rank-list[0].rank) == 1
		default:
			keep = list[i+1].rank-list[i].rank == 1 ||
				abs(list[i-1].rank-list[i].rank) == 1
		}
		if !keep {
			continue
		}

		if parens {
			result = l.replaceAlphabetListParens(result, list[i].text)
		} else {
			result = l.replaceAlphabetList(result, list[i].text)
		}
	}

	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// scanLists finds candidate numeric markers with regex1, keeps only those
// adjacent (±1, with a 9<->0 wrap) to a neighbor in the parsed sequence, and
// for each kept value substitutes its terminator with replacement via
// regex2.
func (l *listItemReplacer) scanLists(text string, regex1, regex2 *rule, replacement rune, strip bool) string {
	var values []int
	for _, m := range regex1.findAll(text) {
		n, err := strconv.Atoi(strings.TrimSpace(m.String()))
		if err != nil {
			continue
		}
		values = append(values, n)
	}

	get := func(i int) (int, bool) {
		if i < 0 || i >= len(values) {
			return 0, false
		}
		return values[i], true
	}

	result := text
	for i, each := range values {
		next, hasNext := get(i + 1)
		prev, hasPrev := get(i - 1)
		adjacent := (hasNext && next == each+1) ||
			(hasPrev && prev == each-1) ||
			(each == 0 && hasPrev && prev == 9) ||
			(each == 9 && hasNext && next == 0)
		if !adjacent {
			continue
		}

		result = regex2.replaceAllFunc(result, func(m *regexp2.Match) string {
			mat := m.String()
			if strip {
				mat = strings.TrimSpace(mat)
			}
			chomped := mat
			if len(mat) != 1 {
				chomped = strings.Trim(mat, ".])")
			}
			if strconv.Itoa(each) == chomped {
				return strconv.Itoa(each) + string(replacement)
			}
			return m.String()
		})
	}

	return result
}

func (l *listItemReplacer) addLineBreaksForNumberedListWithPeriods(text string) string {
	if strings.Contains(text, "♨") &&
		!l.findNumberedList1.matchesAny(text) &&
		!l.findNumberedList2.matchesAny(text) {
		text = l.spaceBetweenListItemsFirst.replaceAll(text)
		text = l.spaceBetweenListItemsSecond.replaceAll(text)
	}
	return text
}

func (l *listItemReplacer) addLineBreaksForNumberedListWithParens(text string) string {
	if strings.Contains(text, "☝") && !l.findNumberedListParens.matchesAny(text) {
		text = l.spaceBetweenListItemsThird.replaceAll(text)
	}
	return text
}
