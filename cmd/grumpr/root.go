package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/twoolhouse/grumpr-go/library"
)

var rootCmd = &cobra.Command{
	Use:          "grumpr",
	Short:        "Query a word corpus for matches, anagrams, and fuzzy neighbours",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(args)
	},
}

// stageVerbs are the recognized stage names. A pipeline is every
// remaining argument after one of these, up to the next one.
var stageVerbs = map[string]bool{
	"library": true,
	"filter":  true,
	"match":   true,
	"anna":    true,
	"fuzzy":   true,
	"has":     true,
	"show":    true,
	"write":   true,
	"stats":   true,
}

var terminalVerbs = map[string]bool{"show": true, "write": true, "stats": true}

type stage struct {
	verb string
	args []string
}

// splitStages breaks a flat argument list into per-stage groups on the
// recognized verbs. A flag value that happens to collide with a verb
// name (e.g. a match pattern of literally "show") is mis-split by this; the
// CLI does not attempt to disambiguate that case.
func splitStages(args []string) ([]stage, error) {
	if len(args) == 0 || !stageVerbs[args[0]] {
		return nil, fmt.Errorf("grumpr: expected a pipeline starting with \"library\", got %v", args)
	}
	var stages []stage
	cur := stage{verb: args[0]}
	for _, a := range args[1:] {
		if stageVerbs[a] {
			stages = append(stages, cur)
			cur = stage{verb: a}
			continue
		}
		cur.args = append(cur.args, a)
	}
	return append(stages, cur), nil
}

func runPipeline(args []string) error {
	stages, err := splitStages(args)
	if err != nil {
		return err
	}
	if stages[0].verb != "library" {
		return fmt.Errorf("grumpr: pipeline must begin with \"library\", got %q", stages[0].verb)
	}

	lz, err := runLibraryStage(stages[0].args)
	if err != nil {
		return err
	}

	terminal := -1
	for i := 1; i < len(stages); i++ {
		s := stages[i]
		if terminalVerbs[s.verb] {
			if terminal != -1 {
				return fmt.Errorf("grumpr: only one terminal stage is allowed, got a second %q", s.verb)
			}
			terminal = i
			continue
		}
		if terminal != -1 {
			return fmt.Errorf("grumpr: %q must come before the terminal stage %q", s.verb, stages[terminal].verb)
		}
		lz, err = applyRefinement(lz, s)
		if err != nil {
			return err
		}
	}

	if terminal == -1 {
		return runShowStage(lz, nil)
	}
	return applyTerminal(lz, stages[terminal])
}

func applyRefinement(lz *library.Librarian, s stage) (*library.Librarian, error) {
	switch s.verb {
	case "filter":
		return runFilterStage(lz, s.args)
	case "match":
		return runMatchStage(lz, s.args)
	case "anna":
		return runAnnaStage(lz, s.args)
	case "fuzzy":
		return runFuzzyStage(lz, s.args)
	case "has":
		return runHasStage(lz, s.args)
	}
	return lz, nil
}

func applyTerminal(lz *library.Librarian, s stage) error {
	switch s.verb {
	case "show":
		return runShowStage(lz, s.args)
	case "write":
		return runWriteStage(lz, s.args)
	case "stats":
		return runStatsStage(lz, s.args)
	}
	return fmt.Errorf("grumpr: unknown terminal stage %q", s.verb)
}
