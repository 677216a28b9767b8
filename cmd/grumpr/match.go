package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

func runMatchStage(lz *library.Librarian, args []string) (*library.Librarian, error) {
	fs := pflag.NewFlagSet("match", pflag.ContinueOnError)
	depth := fs.IntP("depth", "d", 1, "depth of the search")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("grumpr: match requires a regex pattern")
	}
	return lz.Search(library.Match{Pattern: rest[0], Depth: *depth})
}
