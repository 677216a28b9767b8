package library

import "strings"

// Gram is a tagged union over a Library: a Word references exactly one
// seed, a Sequence references two or more in concatenation order. A
// Sequence of length 1 is never constructed — NewSequence canonicalizes
// it down to a Word, and that invariant is relied on throughout this
// package (IsWord/IsSequence partition every Gram with no overlap).
type Gram struct {
	indices []uint64
}

// NewWord returns a Gram referencing a single seed.
func NewWord(index uint64) Gram {
	return Gram{indices: []uint64{index}}
}

// NewSequence returns a Gram referencing indices in order. A single-index
// slice is canonicalized to the equivalent Word.
func NewSequence(indices []uint64) Gram {
	if len(indices) == 1 {
		return NewWord(indices[0])
	}
	cp := make([]uint64, len(indices))
	copy(cp, indices)
	return Gram{indices: cp}
}

func (g Gram) IsWord() bool     { return len(g.indices) == 1 }
func (g Gram) IsSequence() bool { return len(g.indices) >= 2 }

// Indices returns the seed indices g references, root to tail.
func (g Gram) Indices() []uint64 { return g.indices }

// Text concatenates the roots of g's referenced seeds with no separator
// between segments. This is a deliberate, preserved choice (see
// DESIGN.md): a Sequence's flat-joined text is genuinely ambiguous to
// re-split (e.g. "doorstop" could be "door"+"stop" or "do"+"orstop"), and
// this package never needs to reverse the join — only to produce the
// candidate string an automaton is driven or tested against.
func (g Gram) Text(lib *Library) string {
	if len(g.indices) == 1 {
		return lib.Seed(g.indices[0]).Root
	}
	var b strings.Builder
	for _, idx := range g.indices {
		b.WriteString(lib.Seed(idx).Root)
	}
	return b.String()
}

// Count sums the occurrence counts of every seed g references.
func (g Gram) Count(lib *Library) uint64 {
	var total uint64
	for _, idx := range g.indices {
		total += lib.Seed(idx).Count
	}
	return total
}
