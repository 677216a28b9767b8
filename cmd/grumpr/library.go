package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/ingest"
	"github.com/twoolhouse/grumpr-go/library"
)

func runLibraryStage(args []string) (*library.Librarian, error) {
	fs := pflag.NewFlagSet("library", pflag.ContinueOnError)
	format := fs.StringP("format", "f", "", "file format: csv or tsv (default: inferred from the file extension)")
	build := fs.BoolP("build", "b", false, "build the library by counting words in a literal string instead of reading a corpus file")
	threshold := fs.Uint64P("threshold", "t", 1, "keep only built words that occurred more than this many times (requires --build)")
	_ = fs.BoolP("ignore-case", "i", false, "accepted for CLI parity; building already lowercases every word")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("grumpr: library requires \"google\", a file path, or (with --build) a string of words")
	}
	source := rest[0]

	var records []ingest.Record
	var err error
	switch {
	case *build:
		words := strings.Fields(source)
		records = ingest.Generate(sliceSeq(words), *threshold)
	case source == "google":
		records, err = ingest.Sample()
	default:
		records, err = loadLibraryFile(source, *format)
	}
	if err != nil {
		return nil, err
	}

	lib := library.New(ingest.Seeds(records))
	log.Info().Int("seeds", lib.Len()).Str("source", source).Msg("library loaded")
	return lib.NewLibrarian(), nil
}

func loadLibraryFile(path, format string) ([]ingest.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grumpr: %w", err)
	}
	defer f.Close()

	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "csv":
		return ingest.ParseCSV(f)
	case "tsv", "":
		return ingest.ParseTSV(f)
	default:
		return nil, fmt.Errorf("grumpr: unknown library format %q", format)
	}
}

func sliceSeq(xs []string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}
