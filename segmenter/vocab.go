package segmenter

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"
)

// The curated abbreviation and numeral tables are embedded data, not
// compiled-in constants, the way the teacher keeps its scanno/dictionary
// word lists in a block-delimited data file (dict.go's ReadDict/ReadScannos)
// rather than in Go source. Unlike the teacher, construction must never
// depend on the filesystem (spec §7: a missing data file is not a
// documented error kind), so the table travels with the binary via
// go:embed and is parsed by loadVocabulary each time a Segmenter is built.
//
//go:embed data/vocab.dat
var vocabData []byte

// vocabulary holds the five curated tables the Abbreviation Replacer and
// List-Item Replacer consult (spec §3 Data model: Abbreviation table,
// Numeral table).
type vocabulary struct {
	abbreviations []string
	prepositive   map[string]struct{}
	numberContext map[string]struct{}
	romanNumeral  map[string]int
	latinLetter   map[string]int
}

func loadVocabulary() (*vocabulary, error) {
	blocks, err := parseBlocks(vocabData)
	if err != nil {
		return nil, err
	}

	need := func(name string) ([]string, error) {
		lines, ok := blocks[name]
		if !ok {
			return nil, fmt.Errorf("segmenter: vocab data missing section %q", name)
		}
		return lines, nil
	}

	abbrevs, err := need("ABBREVIATIONS")
	if err != nil {
		return nil, err
	}
	prepositive, err := need("PREPOSITIVE")
	if err != nil {
		return nil, err
	}
	numberContext, err := need("NUMBER CONTEXT")
	if err != nil {
		return nil, err
	}
	romanNumerals, err := need("ROMAN NUMERALS")
	if err != nil {
		return nil, err
	}
	latinLetters, err := need("LATIN LETTERS")
	if err != nil {
		return nil, err
	}

	return &vocabulary{
		abbreviations: abbrevs,
		prepositive:   toSet(prepositive),
		numberContext: toSet(numberContext),
		// Ranks are assigned by position, later entries overwriting
		// earlier ones on a duplicate key. The roman-numeral list
		// intentionally repeats "x"/"xi"/"xii"/"xiii" (bug-compatible
		// with the pySBD/pragmatic_segmenter lineage); this reproduces
		// the overwrite-on-duplicate-key behavior of a Rust
		// HashMap::from_iter over the same ordered list.
		romanNumeral: toRankMap(romanNumerals),
		latinLetter:  toRankMap(latinLetters),
	}, nil
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}

func toRankMap(items []string) map[string]int {
	out := make(map[string]int, len(items))
	for i, item := range items {
		out[item] = i
	}
	return out
}

// parseBlocks reads "*** BEGIN <NAME> ***" / "*** END <NAME> ***" delimited
// sections, generalizing dict.go's single-hardcoded-block scanner to an
// arbitrary set of named blocks in one data file.
func parseBlocks(data []byte) (map[string][]string, error) {
	blocks := make(map[string][]string)
	var current string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "*** BEGIN ") && strings.HasSuffix(line, " ***"):
			current = strings.TrimSuffix(strings.TrimPrefix(line, "*** BEGIN "), " ***")
			if _, exists := blocks[current]; !exists {
				blocks[current] = []string{}
			}
		case strings.HasPrefix(line, "*** END ") && strings.HasSuffix(line, " ***"):
			current = ""
		case current != "" && line != "":
			blocks[current] = append(blocks[current], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("segmenter: reading vocab data: %w", err)
	}
	return blocks, nil
}
