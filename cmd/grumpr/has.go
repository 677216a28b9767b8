package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

func runHasStage(lz *library.Librarian, args []string) (*library.Librarian, error) {
	fs := pflag.NewFlagSet("has", pflag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("grumpr: has requires a set of characters")
	}
	return lz.Has(library.Has{Characters: rest[0]}), nil
}
