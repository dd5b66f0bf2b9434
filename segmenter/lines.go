package segmenter

import "strings"

// lineTerminators lists every terminator Python's str.splitlines recognizes,
// longest first so a leftmost-first/longest-match scan naturally prefers
// "\r\n" over a lone "\r" (spec §4.3, §9 "Line splitter"). The last three
// entries are NEL (U+0085), LS (U+2028) and PS (U+2029), written as literal
// runes.
var lineTerminators = []string{
	"\r\n",
	"\n",
	"\r",
	"\v",
	"\f",
	"\x1c",
	"\x1d",
	"\x1e",
	"",
	" ",
	" ",
}

// splitLinesKeepEnds mirrors Python's str.splitlines(keepends=True): every
// line is returned together with whatever terminator followed it, and a
// final unterminated line is still returned. The teacher's original_source
// reference (PythonSplitLines, built over an Aho-Corasick automaton with
// MatchKind::LeftmostFirst) is reproduced here with a direct scan, since the
// only overlap in the terminator set is "\r" vs "\r\n" and a manual
// longest-match check at each position is simpler than standing up a
// multi-pattern matcher for eleven literals.
func splitLinesKeepEnds(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	start := 0
	for i := 0; i < len(text); {
		matched := ""
		for _, term := range lineTerminators {
			if strings.HasPrefix(text[i:], term) {
				matched = term
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		end := i + len(matched)
		out = append(out, text[start:end])
		start = end
		i = end
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
