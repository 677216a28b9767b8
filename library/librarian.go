package library

import (
	"fmt"
	"regexp"

	"github.com/cloudflare/ahocorasick"
	"github.com/twoolhouse/grumpr-go/search"
	"github.com/twoolhouse/grumpr-go/trie"
)

// Librarian is a refinable view over a Library: an ordered sequence of
// grams, each a Word or a Sequence of that library's seeds. Every
// operation below returns a new view; the library itself is never
// touched.
type Librarian struct {
	library *Library
	grams   []Gram
}

func (lz *Librarian) Library() *Library { return lz.library }
func (lz *Librarian) Grams() []Gram     { return lz.grams }
func (lz *Librarian) Len() int          { return len(lz.grams) }

// Stats folds the current view into a Stats snapshot.
func (lz *Librarian) Stats() Stats { return NewStats(lz) }

func (lz *Librarian) withGrams(grams []Gram) *Librarian {
	return &Librarian{library: lz.library, grams: grams}
}

// textTrie builds a trie over the current grams keyed by each gram's
// joined text, with the gram's index into lz.grams as the stored value —
// the shape every nested query (Search depth>0, Anagrams depth>0,
// Nearest, Distance) drives a NestedNode/MultiHeadDFA over.
func (lz *Librarian) textTrie() *trie.Trie[uint64] {
	tr := trie.New[uint64]()
	for i, g := range lz.grams {
		tr.Insert([]byte(g.Text(lz.library)), uint64(i))
	}
	return tr
}

// collectChain flattens a matched NestedNode's chain of trie segments back
// into a single Gram whose indices are plain seed indices — concatenation
// of concatenations flattens, it never nests.
func (lz *Librarian) collectChain(n *search.NestedNode[byte]) (Gram, bool) {
	var indices []uint64
	for _, seg := range n.Chain() {
		tn, ok := seg.(search.TrieNode[uint64])
		if !ok {
			return Gram{}, false
		}
		gramIdx, ok := tn.Value()
		if !ok {
			return Gram{}, false
		}
		indices = append(indices, lz.grams[*gramIdx].Indices()...)
	}
	if len(indices) == 0 {
		return Gram{}, false
	}
	return NewSequence(indices), true
}

// runNested drives dfa over a NestedNode(depth) built from the current
// grams' text trie, collecting every accepted concatenation.
func (lz *Librarian) runNested(dfa search.DFA, depth int) (*Librarian, error) {
	root := search.NewNestedNode[byte](search.WrapTrie[uint64](lz.textTrie()), depth)
	driver, err := search.NewMultiHeadDFA[byte](dfa, root)
	if err != nil {
		return nil, err
	}
	var kept []Gram
	for {
		node, _, ok := driver.Next()
		if !ok {
			break
		}
		nn, ok := node.(*search.NestedNode[byte])
		if !ok {
			continue
		}
		if g, ok := lz.collectChain(nn); ok {
			kept = append(kept, g)
		}
	}
	return lz.withGrams(kept), nil
}

// Search implements Match: depth 0 tests every current gram's text
// against pattern as a plain unanchored substring search (the same
// semantics regexp.MatchString already gives); depth > 0 drives the
// automaton over every 1..=depth+1 concatenation.
func (lz *Librarian) Search(q Match) (*Librarian, error) {
	if q.Depth == 0 {
		re, err := regexp.Compile(q.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegexSyntax, err)
		}
		var kept []Gram
		for _, g := range lz.grams {
			if re.MatchString(g.Text(lz.library)) {
				kept = append(kept, g)
			}
		}
		return lz.withGrams(kept), nil
	}

	dfa, err := search.CompileRegex(q.Pattern)
	if err != nil {
		return nil, err
	}
	return lz.runNested(dfa, q.Depth)
}

// Anagrams implements Anagram per the selection tree: nested queries
// filter first with the cheap superset automaton, or drive the exact
// permutation automaton directly when the pattern is short and
// wildcard-free; flat queries fall back to histogram comparisons.
func (lz *Librarian) Anagrams(q Anagram) (*Librarian, error) {
	switch {
	case q.Depth > 0 && (q.Wildcards > 0 || len(q.Pattern) >= 8):
		dfa, err := search.CompileAnagramFilter(q.Pattern)
		if err != nil {
			return nil, err
		}
		candidates, err := lz.runNested(dfa, q.Depth)
		if err != nil {
			return nil, err
		}
		return candidates.anagramHistogramFilter(q.Pattern, q.Wildcards, q.Partial), nil

	case q.Depth > 0 && len(q.Pattern) < 8 && q.Wildcards == 0:
		dfa, err := search.CompileAnagramExact(q.Pattern)
		if err != nil {
			return nil, err
		}
		return lz.runNested(dfa, q.Depth)

	case q.Depth == 0 && q.Wildcards > 0:
		return lz.anagramHistogramFilter(q.Pattern, q.Wildcards, false), nil

	case q.Depth == 0 && q.Partial:
		return lz.anagramHistogramFilter(q.Pattern, q.Wildcards, true), nil

	default:
		patternHist := histogramOf(q.Pattern)
		var kept []Gram
		for _, g := range lz.grams {
			if sortedEqual(histogramOf(g.Text(lz.library)), patternHist) {
				kept = append(kept, g)
			}
		}
		return lz.withGrams(kept), nil
	}
}

func (lz *Librarian) anagramHistogramFilter(pattern string, wildcards int, partial bool) *Librarian {
	patternHist := histogramOf(pattern)
	var kept []Gram
	for _, g := range lz.grams {
		gramHist := histogramOf(g.Text(lz.library))
		var ok bool
		if partial {
			ok = anagramPartial(gramHist, patternHist, wildcards)
		} else {
			ok = anagramExact(gramHist, patternHist, wildcards)
		}
		if ok {
			kept = append(kept, g)
		}
	}
	return lz.withGrams(kept)
}

// Nearest implements Nearest: builds the Levenshtein automaton for every
// distance 0..=q.Distance, runs it flat over the current grams, and keeps
// only the results at the smallest distance actually achieved.
func (lz *Librarian) Nearest(q Nearest) (*Librarian, uint8, error) {
	distances := make([]uint8, int(q.Distance)+1)
	for i := range distances {
		distances[i] = uint8(i)
	}
	automaton, err := search.CompileLevenshtein(q.Pattern, distances)
	if err != nil {
		return nil, 0, err
	}

	type found struct {
		idx  uint64
		dist uint8
	}
	driver, err := search.NewMultiHeadDFA[byte](automaton.DFA(), search.WrapTrie[uint64](lz.textTrie()))
	if err != nil {
		return nil, 0, err
	}

	var results []found
	minDist := uint8(255)
	for {
		node, state, ok := driver.Next()
		if !ok {
			break
		}
		tn, ok := node.(search.TrieNode[uint64])
		if !ok {
			continue
		}
		idx, ok := tn.Value()
		if !ok {
			continue
		}
		dist := automaton.Distance(state)
		results = append(results, found{idx: *idx, dist: dist})
		if dist < minDist {
			minDist = dist
		}
	}
	if len(results) == 0 {
		return nil, 0, fmt.Errorf("%w: pattern %q within distance %d", ErrNoNearest, q.Pattern, q.Distance)
	}

	var kept []Gram
	for _, r := range results {
		if r.dist == minDist {
			kept = append(kept, lz.grams[r.idx])
		}
	}
	return lz.withGrams(kept), minDist, nil
}

// Distance implements Distance. Strict builds the full 0..=max(distances)
// automaton and filters results down to exactly the requested set
// afterwards. Non-strict builds the automaton with only the requested
// distances' entry layers wired — cheaper, but a sparse request can
// misreport a closer match as one of the requested distances, since the
// unrequested lower layers were never built (see
// search.LevenshteinAutomaton's doc comment).
func (lz *Librarian) Distance(q Distance) (*Librarian, error) {
	if len(q.Distances) == 0 {
		return nil, fmt.Errorf("%w: empty distance set", ErrAutomatonBuild)
	}

	requested := q.Distances
	if q.Strict {
		maxDist := uint8(0)
		for _, d := range q.Distances {
			if d > maxDist {
				maxDist = d
			}
		}
		requested = make([]uint8, int(maxDist)+1)
		for i := range requested {
			requested[i] = uint8(i)
		}
	}

	automaton, err := search.CompileLevenshtein(q.Pattern, requested)
	if err != nil {
		return nil, err
	}
	wanted := map[uint8]bool{}
	for _, d := range q.Distances {
		wanted[d] = true
	}

	driver, err := search.NewMultiHeadDFA[byte](automaton.DFA(), search.WrapTrie[uint64](lz.textTrie()))
	if err != nil {
		return nil, err
	}

	var kept []Gram
	for {
		node, state, ok := driver.Next()
		if !ok {
			break
		}
		tn, ok := node.(search.TrieNode[uint64])
		if !ok {
			continue
		}
		idx, ok := tn.Value()
		if !ok {
			continue
		}
		if wanted[automaton.Distance(state)] {
			kept = append(kept, lz.grams[*idx])
		}
	}
	return lz.withGrams(kept), nil
}

// Has implements Has: keeps grams whose text contains at least the given
// characters' required counts (an at-least histogram filter, no
// wildcards).
func (lz *Librarian) Has(q Has) *Librarian {
	patternHist := histogramOf(q.Characters)
	var kept []Gram
	for _, g := range lz.grams {
		if anagramAtLeast(histogramOf(g.Text(lz.library)), patternHist) {
			kept = append(kept, g)
		}
	}
	return lz.withGrams(kept)
}

// Filter keeps only grams for which predicate reports true.
func (lz *Librarian) Filter(predicate func(Gram) bool) *Librarian {
	var kept []Gram
	for _, g := range lz.grams {
		if predicate(g) {
			kept = append(kept, g)
		}
	}
	return lz.withGrams(kept)
}

// Whitelist keeps only grams whose text contains at least one of words as
// a substring. A single Aho-Corasick automaton is built over words once
// and streamed across every current gram, rather than testing each gram
// against each word in turn.
func (lz *Librarian) Whitelist(words []string) *Librarian {
	matcher := ahocorasick.NewStringMatcher(words)
	return lz.Filter(func(g Gram) bool {
		return len(matcher.Match([]byte(g.Text(lz.library)))) > 0
	})
}

// Blacklist keeps only grams whose text contains none of words as a
// substring.
func (lz *Librarian) Blacklist(words []string) *Librarian {
	matcher := ahocorasick.NewStringMatcher(words)
	return lz.Filter(func(g Gram) bool {
		return len(matcher.Match([]byte(g.Text(lz.library)))) == 0
	})
}
