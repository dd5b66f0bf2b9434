package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanFloatingQuote(t *testing.T) {
	findings := Scan([]string{`He said “ hello there.`})
	require.NotEmpty(t, findings)
	require.Equal(t, "floating-quote", findings[0].Category)
}

func TestScanQuoteDirection(t *testing.T) {
	findings := Scan([]string{`She said, “this is wrong.‘`})
	var categories []string
	for _, f := range findings {
		categories = append(categories, f.Category)
	}
	require.Contains(t, categories, "quote-direction")
}

func TestScanEllipsisShape(t *testing.T) {
	findings := Scan([]string{"give....us some pudding"})
	require.Len(t, findings, 1)
	require.Equal(t, "ellipsis-shape", findings[0].Category)
}

func TestScanPunctuationRun(t *testing.T) {
	findings := Scan([]string{"What?!?! Are you serious?!?!"})
	var categories []string
	for _, f := range findings {
		categories = append(categories, f.Category)
	}
	require.Contains(t, categories, "punctuation-run")
}

func TestScanUnbalancedQuote(t *testing.T) {
	findings := Scan([]string{`He said "hello there.`})
	require.Len(t, findings, 1)
	require.Equal(t, "unbalanced-double-quote", findings[0].Category)
}

func TestScanDashSpacing(t *testing.T) {
	findings := Scan([]string{"a long paragraph of plain words — - more words continuing on after that dash"})
	require.Len(t, findings, 1)
	require.Equal(t, "dash-spacing", findings[0].Category)
}

func TestScanClean(t *testing.T) {
	findings := Scan([]string{"This is a perfectly ordinary sentence."})
	require.Empty(t, findings)
}

func TestSummarize(t *testing.T) {
	got := Summarize([]string{"Hello world.", "Auburn-haired and fo’c’s’le survive."})
	require.Equal(t, "2 sentence(s), 6 word(s)", got)
}
