package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

func runStatsStage(lz *library.Librarian, args []string) error {
	fs := pflag.NewFlagSet("stats", pflag.ContinueOnError)
	format := fs.StringP("format", "f", "human", "output format: human or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := lz.Stats()
	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "human", "":
		fmt.Printf("seeds:        %d\n", s.Seeds)
		fmt.Printf("ngrams:       %d\n", s.Ngrams)
		fmt.Printf("ngram seeds:  %d\n", s.NgramSeeds)
		fmt.Printf("chars/seeds:  %d\n", s.CharsSeeds)
		fmt.Printf("chars/ngrams: %d\n", s.CharsNgrams)
		fmt.Println("occurrences:")
		fmt.Printf("  seeds:        %d\n", s.Occurrences.Seeds)
		fmt.Printf("  ngrams:       %d\n", s.Occurrences.Ngrams)
		fmt.Printf("  chars/seeds:  %d\n", s.Occurrences.CharsSeeds)
		fmt.Printf("  chars/ngrams: %d\n", s.Occurrences.CharsNgrams)
		return nil
	default:
		return fmt.Errorf("grumpr: unknown stats format %q", *format)
	}
}
