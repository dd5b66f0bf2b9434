package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// BOM is the UTF-8 byte order mark, stripped from the first line read and
// optionally re-added on save.
var BOM = string([]byte{239, 187, 191})

// Readln returns a single line (without the ending \n) from the input
// buffered reader, reassembling it across ReadLine's prefix continuations.
// An error is returned iff there is an error with the buffered reader.
func Readln(r *bufio.Reader) (string, error) {
	var err error
	var line, ln []byte
	isPrefix := true
	for isPrefix && err == nil {
		line, isPrefix, err = r.ReadLine()
		ln = append(ln, line...)
	}
	return string(ln), err
}

// ReadText reads infile a line at a time into a slice of lines, stripping a
// leading BOM if present.
func ReadText(infile string) ([]string, error) {
	wb := []string{}
	f, err := os.Open(infile)
	if err != nil {
		return nil, fmt.Errorf("fileio: opening %s: %w", infile, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	s, e := Readln(r) // read first line
	for e == nil {    // continue as long as there are no errors reported
		wb = append(wb, s)
		s, e = Readln(r)
	}
	if e != io.EOF {
		return nil, fmt.Errorf("fileio: reading %s: %w", infile, e)
	}
	if len(wb) > 0 {
		wb[0] = strings.TrimPrefix(wb[0], BOM)
	}
	return wb, nil
}

// SaveText writes a working buffer to outfile, one line per entry. BOM and
// CRLF line endings are both opt-in; the zero value of each writes plain
// LF-terminated lines with no BOM. Errors are returned, not fatal, matching
// ReadText's convention: this package never decides how its caller should
// react to an I/O failure.
func SaveText(a []string, outfile string, useBOM bool, useCRLF bool) error {
	f2, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("fileio: creating %s: %w", outfile, err)
	}
	defer f2.Close()
	if useBOM && len(a) > 0 {
		a[0] = BOM + a[0]
	}
	for _, line := range a {
		if useCRLF {
			_, err = fmt.Fprintf(f2, "%s\r\n", line)
		} else {
			_, err = fmt.Fprintf(f2, "%s\n", line)
		}
		if err != nil {
			return fmt.Errorf("fileio: writing %s: %w", outfile, err)
		}
	}
	if err := f2.Close(); err != nil {
		return fmt.Errorf("fileio: closing %s: %w", outfile, err)
	}
	return nil
}
