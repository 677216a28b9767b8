package search

import "errors"

// Sentinel errors raised while building or starting an automaton. library
// re-exports these under the same names so callers that only import
// library never need to reach into search directly.
var (
	ErrAutomatonBuild = errors.New("automaton build failed")
	ErrAutomatonStart = errors.New("automaton start state unreachable")
	ErrRegexSyntax    = errors.New("invalid regex pattern")
)
