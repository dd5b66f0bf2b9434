package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asylumcs/ppsegment/segmenter"
)

func TestLoadAndRunFixture(t *testing.T) {
	cases, err := Load("testdata/inputs.jsonl", "testdata/outputs.jsonl")
	require.NoError(t, err)
	require.Len(t, cases, 3)

	seg, err := segmenter.New()
	require.NoError(t, err)

	results := Run(seg, cases)
	require.Len(t, results, 3)
	for _, r := range results {
		require.True(t, r.Passed, "input %q: got %v, want %v", r.Input, r.Actual, r.Expected)
	}
}

func TestLoadMissingOutputsFile(t *testing.T) {
	_, err := Load("testdata/inputs.jsonl", "testdata/nonexistent.jsonl")
	require.Error(t, err)
}
