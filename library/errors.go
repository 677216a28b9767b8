package library

import (
	"errors"

	"github.com/twoolhouse/grumpr-go/search"
)

// Re-exported so callers that only import library never need to reach
// into search directly — the automaton failures it raises are part of
// this package's own error taxonomy.
var (
	ErrAutomatonBuild = search.ErrAutomatonBuild
	ErrAutomatonStart = search.ErrAutomatonStart
	ErrRegexSyntax    = search.ErrRegexSyntax
)

// ErrNoNearest is returned by Nearest when no gram lies within the
// requested maximum distance of the pattern.
var ErrNoNearest = errors.New("no candidates within requested distance")
