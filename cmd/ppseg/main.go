// Command ppseg splits an English plain-text document into sentences, one
// per output line, or runs its diagnostics/corpus sub-modes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/asylumcs/ppsegment/corpus"
	"github.com/asylumcs/ppsegment/fileio"
	"github.com/asylumcs/ppsegment/internal/corpusdiff"
	"github.com/asylumcs/ppsegment/internal/diagnostics"
	"github.com/asylumcs/ppsegment/segmenter"
)

type params struct {
	Infile    string
	Outfile   string
	JSON      bool
	Diagnose  bool
	CorpusIn  string
	CorpusOut string
}

func doparams() params {
	p := params{}
	flag.StringVar(&p.Infile, "i", "", "input file (default stdin)")
	flag.StringVar(&p.Outfile, "o", "", "output file (default stdout)")
	flag.BoolVar(&p.JSON, "json", false, "emit a JSON array of sentences instead of one per line")
	flag.BoolVar(&p.Diagnose, "diagnose", false, "run the pre-segmentation advisory pass and print findings")
	flag.StringVar(&p.CorpusIn, "corpus-in", "", "NDJSON corpus inputs file (runs the corpus harness)")
	flag.StringVar(&p.CorpusOut, "corpus-out", "", "NDJSON corpus expected-outputs file, paired with -corpus-in")
	flag.Parse()
	return p
}

func main() {
	p := doparams()

	if p.CorpusIn != "" || p.CorpusOut != "" {
		runCorpus(p)
		return
	}

	seg, err := segmenter.New()
	if err != nil {
		log.Fatal(err)
	}

	var wb []string
	if p.Infile != "" {
		wb, err = fileio.ReadText(p.Infile)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		wb, err = readAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
	}
	text := strings.Join(wb, "\n")

	if p.Diagnose {
		for _, f := range diagnostics.Scan(wb) {
			fmt.Fprintf(os.Stderr, "%s line %d: %s\n", f.Category, f.Line, f.Context)
		}
	}

	sentences := seg.Segment(text)

	if p.Diagnose {
		fmt.Fprintln(os.Stderr, diagnostics.Summarize(sentences))
	}

	if err := writeOutput(p, sentences); err != nil {
		log.Fatal(err)
	}
}

func runCorpus(p params) {
	if p.CorpusIn == "" || p.CorpusOut == "" {
		log.Fatal("ppseg: both -corpus-in and -corpus-out are required to run the corpus harness")
	}
	cases, err := corpus.Load(p.CorpusIn, p.CorpusOut)
	if err != nil {
		log.Fatal(err)
	}
	seg, err := segmenter.New()
	if err != nil {
		log.Fatal(err)
	}

	results := corpus.Run(seg, cases)
	failed := 0
	for _, r := range results {
		if r.Passed {
			continue
		}
		failed++
		for _, line := range corpusdiff.Report(corpusdiff.Diff(r.Actual, r.Expected)) {
			fmt.Fprintf(os.Stderr, "input %q: %s\n", r.Input, line)
		}
	}
	fmt.Printf("%d/%d cases passed\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}

func writeOutput(p params, sentences []string) error {
	if p.JSON {
		b, err := json.MarshalIndent(sentences, "", "  ")
		if err != nil {
			return err
		}
		if p.Outfile == "" {
			fmt.Println(string(b))
			return nil
		}
		return fileio.SaveText([]string{string(b)}, p.Outfile, false, false)
	}
	if p.Outfile == "" {
		for _, s := range sentences {
			fmt.Println(s)
		}
		return nil
	}
	return fileio.SaveText(sentences, p.Outfile, false, false)
}

func readAll(f *os.File) ([]string, error) {
	var lines []string
	var b strings.Builder
	buf := make([]byte, 64*1024)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	lines = strings.Split(b.String(), "\n")
	return lines, nil
}
