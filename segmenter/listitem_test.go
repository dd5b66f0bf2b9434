package segmenter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestListItemReplacer(t *testing.T) *listItemReplacer {
	t.Helper()
	vocab, err := loadVocabulary()
	require.NoError(t, err)
	lir, err := newListItemReplacer(vocab)
	require.NoError(t, err)
	return lir
}

func TestAlphabeticalListWithPeriodsDetector(t *testing.T) {
	lir := newTestListItemReplacer(t)
	text := "a. The first item b. The second item c. The third list item D. case insesitive " +
		"E. Don't select the nextF.dont't select this G should be followed by dot"

	var got []string
	for _, m := range lir.alphabeticalListWithPeriods.findAll(text) {
		got = append(got, m.String())
	}
	require.Equal(t, []string{"a", "b", "c", "D", "E"}, got)
}

func TestReplaceAlphabetList(t *testing.T) {
	lir := newTestListItemReplacer(t)
	got := lir.replaceAlphabetList("a. ffegnog b. fgegkl c.", "b")
	require.Equal(t, "a. ffegnog \rb∯ fgegkl c.", got)
}

func TestReplaceAlphabetListParens(t *testing.T) {
	lir := newTestListItemReplacer(t)

	got := lir.replaceAlphabetListParens("a) ffegnog (b) fgegkl c)", "a")
	require.Equal(t, "\ra) ffegnog (b) fgegkl c)", got)

	got = lir.replaceAlphabetListParens("a) ffegnog (b) fgegkl c)", "b")
	require.Equal(t, "a) ffegnog \r&✂&b) fgegkl c)", got)
}

func TestIterateAlphabetArraySingleMarkerNeverAList(t *testing.T) {
	lir := newTestListItemReplacer(t)
	got := lir.iterateAlphabetArray("i. Hi", lir.alphabeticalListWithPeriods, false, true)
	require.Equal(t, "i. Hi", got)
}

const threeListDocument = `List 1

a. Lorem ipsum dolor sit amet, consectetur adipiscing elit.
b. Donec interdum lectus sed facilisis accumsan.
c. Aenean aliquam suscipit elit quis lobortis.

A. Vestibulum ante ipsum primis in faucibus orci luctus et ultrices posuere cubilia curae; Suspendisse ligula nulla, interdum at gravida tempor, pulvinar at nunc.
B. Proin porta, tellus sit amet condimentum scelerisque, orci urna gravida libero, at semper lectus felis a metus.
C. Maecenas hendrerit eros nisi.

i. Ut eu volutpat felis.
ii. Mauris varius felis sed scelerisque auctor.
iii. Proin leo nunc, pretium et rhoncus sed, hendrerit id ipsum.

I. Suspendisse placerat neque non leo aliquam pharetra.
II. Maecenas tempor auctor mauris, non ullamcorper dui posuere nec.
III. Nam vestibulum magna id lectus tristique egestas.

List 2

a) Lorem ipsum dolor sit amet, consectetur adipiscing elit.
b) Donec interdum lectus sed facilisis accumsan.
c) Aenean aliquam suscipit elit quis lobortis.

A) Vestibulum ante ipsum primis in faucibus orci luctus et ultrices posuere cubilia curae; Suspendisse ligula nulla, interdum at gravida tempor, pulvinar at nunc.
B) Proin porta, tellus sit amet condimentum scelerisque, orci urna gravida libero, at semper lectus felis a metus.
C) Maecenas hendrerit eros nisi.

i) Ut eu volutpat felis.
ii) Mauris varius felis sed scelerisque auctor.
iii) Proin leo nunc, pretium et rhoncus sed, hendrerit id ipsum.

I) Suspendisse placerat neque non leo aliquam pharetra.
II) Maecenas tempor auctor mauris, non ullamcorper dui posuere nec.
III) Nam vestibulum magna id lectus tristique egestas.

List 3

(a) Lorem ipsum dolor sit amet, consectetur adipiscing elit.
(b) Donec interdum lectus sed facilisis accumsan.
(c) Aenean aliquam suscipit elit quis lobortis.

(A) Vestibulum ante ipsum primis in faucibus orci luctus et ultrices posuere cubilia curae; Suspendisse ligula nulla, interdum at gravida tempor, pulvinar at nunc.
(B) Proin porta, tellus sit amet condimentum scelerisque, orci urna gravida libero, at semper lectus felis a metus.
(C) Maecenas hendrerit eros nisi.

(i) Ut eu volutpat felis.
(ii) Mauris varius felis sed scelerisque auctor.
(iii) Proin leo nunc, pretium et rhoncus sed, hendrerit id ipsum.

(I) Suspendisse placerat neque non leo aliquam pharetra.
(II) Maecenas tempor auctor mauris, non ullamcorper dui posuere nec.
(III) Nam vestibulum magna id lectus tristique egestas.
`

func TestIterateAlphabetArrayLatinPeriods(t *testing.T) {
	lir := newTestListItemReplacer(t)
	got := lir.iterateAlphabetArray(threeListDocument, lir.alphabeticalListWithPeriods, false, false)
	require.Contains(t, got, "\ra∯ Lorem ipsum")
	require.Contains(t, got, "\rb∯ Donec interdum")
	require.Contains(t, got, "\rc∯ Aenean aliquam")
	require.Contains(t, got, "A. Vestibulum ante ipsum")
	require.NotContains(t, got, "\rA∯")
}

func TestIterateAlphabetArrayLatinParens(t *testing.T) {
	lir := newTestListItemReplacer(t)
	got := lir.iterateAlphabetArray(threeListDocument, lir.alphabeticalListWithParens, true, false)
	require.Contains(t, got, "\r\ra) Lorem ipsum")
	require.Contains(t, got, "\r\rb) Donec interdum")
	require.Contains(t, got, "\r&✂&a) Lorem ipsum")
	require.Contains(t, got, "\r&✂&b) Donec interdum")
}

func TestIterateAlphabetArrayRomanPeriods(t *testing.T) {
	lir := newTestListItemReplacer(t)
	got := lir.iterateAlphabetArray(threeListDocument, lir.alphabeticalListWithPeriods, false, true)
	require.Contains(t, got, "i. Ut eu volutpat")
	require.NotContains(t, got, "\ri∯")
}

func TestIterateAlphabetArrayRomanParens(t *testing.T) {
	lir := newTestListItemReplacer(t)
	got := lir.iterateAlphabetArray(threeListDocument, lir.alphabeticalListWithParens, true, true)
	require.Contains(t, got, "\r\ri) Ut eu volutpat")
	require.Contains(t, got, "\r&✂&i) Ut eu volutpat")
}

func TestAddLineBreakNumericWithPeriods(t *testing.T) {
	lir := newTestListItemReplacer(t)
	// \r is the synthetic line separator by the time list-item
	// replacement runs; newline normalization happens one stage earlier.
	text := "1. First item\r2. Second item\r3. Third item"
	got := lir.addLineBreak(text)
	require.Contains(t, got, "∯")
}

func TestAddLineBreakNumericWithParens(t *testing.T) {
	lir := newTestListItemReplacer(t)
	text := "1) First item\r2) Second item\r3) Third item"
	got := lir.addLineBreak(text)
	require.NotContains(t, got, "☝")
}
