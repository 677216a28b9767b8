package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

// runFuzzyStage performs a Levenshtein search. With --edits, it looks for
// grams at those distances (library.Distance); only with --strict is each
// result's true distance one of them. Without --edits, it
// looks for the nearest grams within --max edits, defaulting max to the
// pattern's length (library.Nearest). Unlike the CLI this was modelled
// on, fuzzy never nests — library.Nearest/library.Distance have no depth
// parameter to drive a nested search with.
func runFuzzyStage(lz *library.Librarian, args []string) (*library.Librarian, error) {
	fs := pflag.NewFlagSet("fuzzy", pflag.ContinueOnError)
	edits := fs.IntSliceP("edits", "e", nil, "exact edit distances to accept (comma-separated)")
	maxDist := fs.Int("max", -1, "maximum distance to consider a match (default: pattern length)")
	strict := fs.Bool("strict", false, "require results to be at exactly one of --edits rather than merely close")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("grumpr: fuzzy requires a pattern")
	}
	pattern := rest[0]

	if len(*edits) > 0 {
		distances := make([]uint8, len(*edits))
		for i, e := range *edits {
			distances[i] = uint8(e)
		}
		return lz.Distance(library.Distance{Pattern: pattern, Distances: distances, Strict: *strict})
	}

	max := *maxDist
	if max < 0 {
		max = len(pattern)
	}
	out, minDist, err := lz.Nearest(library.Nearest{Pattern: pattern, Distance: uint8(max)})
	if err != nil {
		return nil, err
	}
	log.Info().Uint8("distance", minDist).Msg("nearest match distance")
	return out, nil
}
