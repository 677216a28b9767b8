package search

import "fmt"

// LevenshteinAutomaton pairs a DFA with the distance each of its match
// patterns represents. The distance a matched state reports is the
// smallest distance among the caller's requested layers that the DFA can
// reach for the consumed input — requesting a sparse distance set (e.g.
// {2} alone) can misreport a zero-edit match as distance 2, because the
// lower layers were never built. Callers that want a true nearest
// distance must request the full range 0..=max.
type LevenshteinAutomaton struct {
	dfa              *denseDFA
	patternDistances []uint8 // patternID -> distance
}

func (a *LevenshteinAutomaton) DFA() DFA { return a.dfa }

// Distance returns the edit distance associated with a match state. It
// panics if state is not a match state — callers must check
// DFA().IsMatchState first.
func (a *LevenshteinAutomaton) Distance(state StateID) uint8 {
	id, ok := a.dfa.patternAt(state)
	if !ok {
		panic("search: Distance called on a non-match state")
	}
	return a.patternDistances[id]
}

// CompileLevenshtein builds the layered parametric Levenshtein automaton
// for pattern over the requested distances. Layer k represents "at least
// k edits used so far": |pattern|+1 column states per layer, horizontal
// edges within a layer consume pattern bytes verbatim (zero-edit moves),
// and three kinds of edges climb from layer k to k+1 — insertion (any
// byte, same column), deletion (epsilon, next column), substitution (any
// byte, next column). Each requested distance's final column is wired to
// a distinct match state gated behind an end-of-input assertion (see
// (*nfaBuilder).lookEnd), so reaching that column mid-gram — a shorter
// prefix of a deeper word — does not itself satisfy the match; only
// MultiHeadDFA's leaf check, via DFA.NextEOIState, can reveal it.
func CompileLevenshtein(pattern string, distances []uint8) (*LevenshteinAutomaton, error) {
	if len(distances) == 0 {
		return nil, fmt.Errorf("%w: empty distance set", ErrAutomatonBuild)
	}
	wanted := map[uint8]bool{}
	maxDist := uint8(0)
	for _, d := range distances {
		wanted[d] = true
		if d > maxDist {
			maxDist = d
		}
	}

	pat := []byte(pattern)
	b := newNFABuilder()

	var patternDistances []uint8
	nextPatternID := 0

	buildLayer := func(matched bool) []int {
		n := len(pat)
		col := make([]int, n+1)
		for i := range col {
			col[i] = b.newUnion()
		}
		for i := 0; i < n; i++ {
			br := b.byteRange(pat[i], pat[i])
			b.addOut(col[i], br.start)
			b.patchList(br.out, col[i+1])
		}
		if matched {
			m := b.match(nextPatternID)
			end := b.lookEnd(m)
			b.addOut(col[n], end)
			nextPatternID++
		}
		return col
	}

	start := b.newUnion()
	layerPrev := buildLayer(wanted[0])
	if wanted[0] {
		patternDistances = append(patternDistances, 0)
	}
	b.addOut(start, layerPrev[0])

	for d := uint8(1); d <= maxDist; d++ {
		layer := buildLayer(wanted[d])
		if wanted[d] {
			patternDistances = append(patternDistances, d)
		}
		for i := 0; i <= len(pat); i++ {
			prev, curr := layerPrev[i], layer[i]

			// insertion: any byte, same column, one layer up.
			ins := b.byteRange(0, 255)
			b.addOut(prev, ins.start)
			b.patchList(ins.out, curr)

			if i < len(pat) {
				next := layer[i+1]
				// deletion: epsilon, next column, one layer up.
				b.addOut(prev, next)
				// substitution: any byte, next column, one layer up.
				sub := b.byteRange(0, 255)
				b.addOut(prev, sub.start)
				b.patchList(sub.out, next)
			}
		}
		layerPrev = layer
	}

	prog := &nfaProgram{insts: b.insts, start: start}
	dfa := determinize(prog)
	return &LevenshteinAutomaton{dfa: dfa, patternDistances: patternDistances}, nil
}
