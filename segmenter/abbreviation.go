package segmenter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// abbreviationReplacer masks periods that sit inside an abbreviation
// context so the sentence-boundary stage never splits on them (spec §4.3).
type abbreviationReplacer struct {
	vocab *vocabulary

	possessiveAbbreviation        *rule
	kommanditgesellschaft         *rule
	singleLetterAbbreviationRules [2]*rule
	amPmRules                     [4]*rule

	abbreviations []abbreviationEntry

	multiPeriodAbbreviation               *rule
	replaceAbbreviationAsSentenceBoundary *rule
}

type abbreviationEntry struct {
	abbr          string
	abbrMatch     *rule
	nextWordStart *rule
}

func newAbbreviationReplacer(vocab *vocabulary) (*abbreviationReplacer, error) {
	a := &abbreviationReplacer{vocab: vocab}

	var err error
	// https://rubular.com/r/yqa4Rit8EY
	if a.possessiveAbbreviation, err = newRule(`\.(?='s\s)|\.(?='s$)|\.(?='s\Z)`, sentinelMaskedPeriod, regexp2.None); err != nil {
		return nil, err
	}
	// https://rubular.com/r/NEv265G2X2
	if a.kommanditgesellschaft, err = newRule(`(?<=Co)\.(?=\sKG)`, sentinelMaskedPeriod, regexp2.None); err != nil {
		return nil, err
	}
	// https://rubular.com/r/e3H6kwnr6H
	if a.singleLetterAbbreviationRules[0], err = newRule(`(?<=^[A-Z])\.(?=\s)`, sentinelMaskedPeriod, regexp2.None); err != nil {
		return nil, err
	}
	// https://rubular.com/r/gitvf0YWH4
	if a.singleLetterAbbreviationRules[1], err = newRule(`(?<=\s[A-Z])\.(?=,?\s)`, sentinelMaskedPeriod, regexp2.None); err != nil {
		return nil, err
	}

	// https://rubular.com/r/Vnx3m4Spc8
	if a.amPmRules[0], err = newRule(`(?<= P`+sentinelMaskedPeriod+`M)`+sentinelMaskedPeriod+`(?=\s[A-Z])`, ".", regexp2.None); err != nil {
		return nil, err
	}
	// https://rubular.com/r/AJMCotJVbW
	if a.amPmRules[1], err = newRule(`(?<=A`+sentinelMaskedPeriod+`M)`+sentinelMaskedPeriod+`(?=\s[A-Z])`, ".", regexp2.None); err != nil {
		return nil, err
	}
	// https://rubular.com/r/13q7SnOhgA
	if a.amPmRules[2], err = newRule(`(?<=p`+sentinelMaskedPeriod+`m)`+sentinelMaskedPeriod+`(?=\s[A-Z])`, ".", regexp2.None); err != nil {
		return nil, err
	}
	// https://rubular.com/r/DgUDq4mLz5
	if a.amPmRules[3], err = newRule(`(?<=a`+sentinelMaskedPeriod+`m)`+sentinelMaskedPeriod+`(?=\s[A-Z])`, ".", regexp2.None); err != nil {
		return nil, err
	}

	a.abbreviations = make([]abbreviationEntry, 0, len(vocab.abbreviations))
	for _, abbr := range vocab.abbreviations {
		// The abbreviation is interpolated into this lookbehind-context
		// matcher case-insensitively, verbatim — no escaping.
		abbrMatch, err := newRule(`(?:^|\s|\r|\n)`+abbr, "", regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}

		// Escaping here is cosmetic: the abbreviation still reaches the
		// per-match dispatch regex below unescaped, which is the
		// documented bug this implementation preserves.
		escaped := strings.ReplaceAll(abbr, ".", `\.`)
		nextWordStart, err := newRule(`(?<={`+escaped+`} ).{1}`, "", regexp2.None)
		if err != nil {
			return nil, err
		}

		a.abbreviations = append(a.abbreviations, abbreviationEntry{
			abbr:          abbr,
			abbrMatch:     abbrMatch,
			nextWordStart: nextWordStart,
		})
	}

	// https://rubular.com/r/xDkpFZ0EgH
	if a.multiPeriodAbbreviation, err = newRule(`\b[a-z](?:\.[a-z])+[.]`, "", regexp2.IgnoreCase); err != nil {
		return nil, err
	}

	boundaryPattern := `(U` + sentinelMaskedPeriod + `S|U\.S|U` + sentinelMaskedPeriod + `K|E` + sentinelMaskedPeriod + `U|E\.U|U` + sentinelMaskedPeriod + `S` + sentinelMaskedPeriod + `A|U\.S\.A|I|i\.v|I\.V)` + sentinelMaskedPeriod +
		`((?=\sA\s)|(?=\sBeing\s)|(?=\sDid\s)|(?=\sFor\s)|(?=\sHe\s)|(?=\sHow\s)|(?=\sHowever\s)|(?=\sI\s)|(?=\sIn\s)|(?=\sIt\s)|(?=\sMillions\s)|(?=\sMore\s)|(?=\sShe\s)|(?=\sThat\s)|(?=\sThe\s)|(?=\sThere\s)|(?=\sThey\s)|(?=\sWe\s)|(?=\sWhat\s)|(?=\sWhen\s)|(?=\sWhere\s)|(?=\sWho\s)|(?=\sWhy\s))`
	if a.replaceAbbreviationAsSentenceBoundary, err = newRule(boundaryPattern, "$1.", regexp2.None); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *abbreviationReplacer) replace(text string) (string, error) {
	text = a.possessiveAbbreviation.replaceAll(text)
	text = a.kommanditgesellschaft.replaceAll(text)
	for _, r := range a.singleLetterAbbreviationRules {
		text = r.replaceAll(text)
	}

	var b strings.Builder
	for _, line := range splitLinesKeepEnds(text) {
		handled, err := a.searchForAbbreviationsInString(line)
		if err != nil {
			return "", err
		}
		b.WriteString(handled)
	}
	text = b.String()

	text = a.multiPeriodAbbreviation.replaceAllFunc(text, func(m *regexp2.Match) string {
		return strings.ReplaceAll(m.String(), ".", sentinelMaskedPeriod)
	})

	for _, r := range a.amPmRules {
		text = r.replaceAll(text)
	}

	return a.replaceAbbreviationAsSentenceBoundary.replaceAll(text), nil
}

// searchForAbbreviationsInString runs the per-line abbreviation scan
// described in spec §4.3: for every abbreviation whose context appears on
// the line, decide (by the case of the following word and the
// abbreviation's category) whether its period is a sentence boundary, and
// if not, mask it. All replacement positions for one abbreviation are
// collected before rewriting so an earlier substitution never shifts the
// offset of a later one.
func (a *abbreviationReplacer) searchForAbbreviationsInString(text string) (string, error) {
	lowered := strings.ToLower(text)

	runes := []rune(text)
	for _, entry := range a.abbreviations {
		if !strings.Contains(lowered, entry.abbr) {
			continue
		}

		abbrevMatches := entry.abbrMatch.findAll(text)
		if len(abbrevMatches) == 0 {
			continue
		}
		nextWordStarts := entry.nextWordStart.findAll(text)

		replaceLocations := make(map[int]struct{})
		for i, match := range abbrevMatches {
			// The context match includes its leading boundary character
			// (start-of-line/space/CR/LF), and keeps whatever case the
			// source text used — both are load-bearing: the dispatch
			// regex below is compiled case-sensitively against this
			// exact matched spelling, not the canonical lowercase form.
			abbrText := strings.TrimSpace(match.String())

			var ch string
			if i < len(nextWordStarts) {
				ch = nextWordStarts[i].String()
			}

			upper := pythonIsUpper(ch)
			abbrLower := strings.ToLower(abbrText)
			_, isPrepositive := a.vocab.prepositive[abbrLower]
			if upper && !isPrepositive {
				continue
			}

			var pattern string
			switch {
			case isPrepositive:
				pattern = `(?<=\s` + abbrText + `)\.(?=(\s|:\d+))`
			default:
				if _, isNumber := a.vocab.numberContext[abbrLower]; isNumber {
					pattern = `(?<=\s` + abbrText + `)\.(?=(\s\d|\s+\())`
				} else {
					pattern = `(?<=\s` + abbrText + `)\.(?=((\.|\:|-|\?|,)|(\s([a-z]|I\s|I'm|I'll|\d|\())))`
				}
			}

			dispatch, err := newRule(pattern, "", regexp2.None)
			if err != nil {
				return "", fmt.Errorf("segmenter: abbreviation dispatch regex for %q: %w", entry.abbr, err)
			}

			prepended := " " + text
			for _, m := range dispatch.findAll(prepended) {
				replaceLocations[m.Index-1] = struct{}{}
			}
		}

		if len(replaceLocations) == 0 {
			continue
		}

		locs := make([]int, 0, len(replaceLocations))
		for loc := range replaceLocations {
			locs = append(locs, loc)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(locs)))
		for _, loc := range locs {
			if loc < 0 || loc >= len(runes) {
				continue
			}
			runes[loc] = []rune(sentinelMaskedPeriod)[0]
		}
		text = string(runes)
		lowered = strings.ToLower(text)
	}

	return string(runes), nil
}
