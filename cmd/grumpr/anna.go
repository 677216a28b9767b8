package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

func runAnnaStage(lz *library.Librarian, args []string) (*library.Librarian, error) {
	fs := pflag.NewFlagSet("anna", pflag.ContinueOnError)
	wildcards := fs.IntP("wild", "w", 0, "number of wildcard (unknown) characters in the anagram")
	partial := fs.BoolP("partial", "p", false, "allow anagrams formed from a subset of the pattern's letters")
	depth := fs.IntP("depth", "d", 1, "depth of the search")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("grumpr: anna requires an anagram pattern")
	}
	return lz.Anagrams(library.Anagram{
		Pattern:   rest[0],
		Wildcards: *wildcards,
		Depth:     *depth,
		Partial:   *partial,
	})
}
