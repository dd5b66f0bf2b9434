// Package corpus loads newline-delimited JSON sentence-segmentation test
// cases and runs them against a segmenter.Segmenter, checking the spec's
// exact-equality acceptance property.
//
// The reference corpus format is two XZ-compressed NDJSON files
// (inputs.xz/outputs.xz); no XZ library is available in this module's
// dependency surface, and corpus loading is named an out-of-scope external
// collaborator, so this package reads the decompressed .jsonl form directly.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/asylumcs/ppsegment/segmenter"
)

// Case is one (input, expected sentences) pair from the corpus.
type Case struct {
	Input    string
	Expected []string
}

// Load reads line-paired NDJSON files: each line of inputsPath is a JSON
// string, each corresponding line of outputsPath is a JSON array of
// strings. Line i of one pairs with line i of the other.
func Load(inputsPath, outputsPath string) ([]Case, error) {
	inputs, err := readJSONLines(inputsPath)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading inputs: %w", err)
	}
	outputs, err := readJSONLines(outputsPath)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading outputs: %w", err)
	}
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("corpus: %d input lines but %d output lines", len(inputs), len(outputs))
	}

	cases := make([]Case, len(inputs))
	for i := range inputs {
		var text string
		if err := json.Unmarshal(inputs[i], &text); err != nil {
			return nil, fmt.Errorf("corpus: input line %d: %w", i, err)
		}
		var expected []string
		if err := json.Unmarshal(outputs[i], &expected); err != nil {
			return nil, fmt.Errorf("corpus: output line %d: %w", i, err)
		}
		cases[i] = Case{Input: text, Expected: expected}
	}
	return cases, nil
}

func readJSONLines(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cp := make(json.RawMessage, len(line))
		copy(cp, line)
		lines = append(lines, cp)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, err
	}
	return lines, nil
}

// Result pairs a Case with what the segmenter actually produced.
type Result struct {
	Case
	Actual []string
	Passed bool
}

// Run segments every case's input and checks it against the expected
// sentence list exactly, per spec's corpus acceptance property.
func Run(seg *segmenter.Segmenter, cases []Case) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		actual := seg.Segment(c.Input)
		results[i] = Result{Case: c, Actual: actual, Passed: equalSlices(actual, c.Expected)}
	}
	return results
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
