package segmenter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLinesKeepEnds(t *testing.T) {
	input := "x\nx\rx\r\nx\vx\fx\x1cx\x1dx\x1ex\u0085x\u2028x\u2029"
	want := []string{
		"x\n",
		"x\r",
		"x\r\n",
		"x\v",
		"x\f",
		"x\x1c",
		"x\x1d",
		"x\x1e",
		"x\u0085",
		"x\u2028",
		"x\u2029",
	}
	require.Equal(t, want, splitLinesKeepEnds(input))

	require.Equal(t, []string{"\n", "\n", "a"}, splitLinesKeepEnds("\n\na"))
	require.Nil(t, splitLinesKeepEnds(""))
}
