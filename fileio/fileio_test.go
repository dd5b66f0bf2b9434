package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	require.NoError(t, SaveText([]string{"Hello world.", "This is a test."}, path, false, false))

	got, err := ReadText(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Hello world.", "This is a test."}, got)
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText("/nonexistent/path/doc.txt")
	require.Error(t, err)
}

func TestSaveTextUncreatableFile(t *testing.T) {
	err := SaveText([]string{"Hello."}, "/nonexistent/dir/doc.txt", false, false)
	require.Error(t, err)
}

func TestReadTextStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, SaveText([]string{"Hello."}, path, true, false))

	got, err := ReadText(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Hello."}, got)
}
