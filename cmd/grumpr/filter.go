package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

func runFilterStage(lz *library.Librarian, args []string) (*library.Librarian, error) {
	fs := pflag.NewFlagSet("filter", pflag.ContinueOnError)
	negate := fs.BoolP("negate", "n", false, "remove matches instead of keeping them")
	top := fs.IntP("top", "o", 0, "keep only the top N grams by occurrence count (0 disables)")
	count := fs.Uint64P("count", "c", 1, "keep grams that have occurred at least this many times")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()

	out := lz
	if len(rest) > 0 {
		words, err := loadWordlist(rest[0])
		if err != nil {
			return nil, err
		}
		if *negate {
			out = out.Blacklist(words)
		} else {
			out = out.Whitelist(words)
		}
	}

	lib := out.Library()
	minCount := *count
	out = out.Filter(func(g library.Gram) bool { return g.Count(lib) >= minCount })

	if *top > 0 {
		out = keepTopN(out, *top)
	}
	return out, nil
}

func loadWordlist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grumpr: %w", err)
	}
	return strings.Fields(string(data)), nil
}

// keepTopN keeps the N highest-occurrence-count grams in lz, ties broken
// by their existing order.
func keepTopN(lz *library.Librarian, n int) *library.Librarian {
	lib := lz.Library()
	grams := append([]library.Gram(nil), lz.Grams()...)
	sort.SliceStable(grams, func(i, j int) bool {
		return grams[i].Count(lib) > grams[j].Count(lib)
	})
	if len(grams) > n {
		grams = grams[:n]
	}
	keep := make(map[string]bool, len(grams))
	for _, g := range grams {
		keep[gramKey(g)] = true
	}
	return lz.Filter(func(g library.Gram) bool { return keep[gramKey(g)] })
}

// gramKey is a unique string key for a Gram's seed indices, used only to
// build membership sets for CLI-side filtering.
func gramKey(g library.Gram) string {
	var b strings.Builder
	for _, idx := range g.Indices() {
		b.WriteString(strconv.FormatUint(idx, 10))
		b.WriteByte(',')
	}
	return b.String()
}
