package segmenter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestAbbreviationReplacer(t *testing.T) *abbreviationReplacer {
	t.Helper()
	vocab, err := loadVocabulary()
	require.NoError(t, err)
	ar, err := newAbbreviationReplacer(vocab)
	require.NoError(t, err)
	return ar
}

func TestAbbreviationReplacerConstructs(t *testing.T) {
	newTestAbbreviationReplacer(t)
}

func TestAbbreviationReplace(t *testing.T) {
	ar := newTestAbbreviationReplacer(t)
	got, err := ar.replace("Humana Inc. is including")
	require.NoError(t, err)
	require.Equal(t, "Humana Inc∯ is including", got)
}

func TestSearchForAbbreviationsInString(t *testing.T) {
	ar := newTestAbbreviationReplacer(t)
	got, err := ar.searchForAbbreviationsInString("Humana Inc. is including")
	require.NoError(t, err)
	require.Equal(t, "Humana Inc∯ is including", got)
}

func TestAbbreviationReplaceAAInc(t *testing.T) {
	ar := newTestAbbreviationReplacer(t)
	got, err := ar.replace("AA Inc. is including")
	require.NoError(t, err)
	require.Equal(t, "AA Inc∯ is including", got)
}

func TestPythonIsUpper(t *testing.T) {
	require.False(t, pythonIsUpper("abc"))
	require.False(t, pythonIsUpper("123"))
	require.True(t, pythonIsUpper("A_B"))
	require.False(t, pythonIsUpper("a_b"))
	require.True(t, pythonIsUpper("A1"))
	require.True(t, pythonIsUpper("1A"))
	require.False(t, pythonIsUpper("a1"))
	require.False(t, pythonIsUpper("1a"))
	require.False(t, pythonIsUpper("가나다a"))
	require.True(t, pythonIsUpper("가나다A"))
}
