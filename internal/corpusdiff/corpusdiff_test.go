package corpusdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinIdentical(t *testing.T) {
	require.Equal(t, 0, Levenshtein([]rune("hello"), []rune("hello")))
}

func TestLevenshteinSubstitution(t *testing.T) {
	require.Equal(t, 1, Levenshtein([]rune("hello"), []rune("hallo")))
}

func TestLevenshteinInsertDelete(t *testing.T) {
	require.Equal(t, 1, Levenshtein([]rune("hello"), []rune("helloo")))
	require.Equal(t, 1, Levenshtein([]rune("hello"), []rune("hell")))
}

func TestDiffNoMismatches(t *testing.T) {
	sentences := []string{"Hello world.", "Goodbye."}
	require.Empty(t, Diff(sentences, sentences))
}

func TestDiffFindsNearestExpected(t *testing.T) {
	actual := []string{"Hello wrold.", "Goodbye."}
	expected := []string{"Hello world.", "Goodbye."}
	mismatches := Diff(actual, expected)
	require.Len(t, mismatches, 1)
	require.Equal(t, 0, mismatches[0].Index)
	require.Equal(t, "Hello world.", mismatches[0].NearestExpected)
	require.Equal(t, 2, mismatches[0].NearestDistance)
}

func TestDiffLengthMismatch(t *testing.T) {
	actual := []string{"One sentence only."}
	expected := []string{"One sentence.", "Only."}
	mismatches := Diff(actual, expected)
	require.NotEmpty(t, mismatches)
}

func TestReportEmpty(t *testing.T) {
	require.Equal(t, []string{"no mismatches"}, Report(nil))
}
