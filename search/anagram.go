package search

import "fmt"

// maxExactAnagramLength bounds the permutation automaton: it unions one
// branch per permutation of the pattern, O(n!) branches, so callers must
// guard on pattern length before reaching for CompileAnagramExact.
const maxExactAnagramLength = 8

// CompileAnagramExact builds the permutation automaton for pattern: a
// start-union with one linear branch per permutation of pattern's bytes,
// each branch terminating in the same end-of-input-anchored match state.
// It accepts exactly the strings that are byte-permutations of pattern —
// anchoring the match at end-of-input is what stops a shorter permutation
// prefix (e.g. "ab" mid-string while matching "abc") from satisfying it.
//
// O(n!) branches — the caller must ensure len(pattern) < 8 (see
// library.Librarian.Anagrams, which picks this automaton only for short,
// wildcard-free patterns).
func CompileAnagramExact(pattern string) (*denseDFA, error) {
	chars := []byte(pattern)
	if len(chars) >= maxExactAnagramLength {
		return nil, fmt.Errorf("%w: anagram pattern of length %d exceeds permutation limit", ErrAutomatonBuild, len(chars))
	}
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: empty anagram pattern", ErrAutomatonBuild)
	}

	b := newNFABuilder()
	var branches []fragment
	permuteBytes(chars, 0, func(perm []byte) {
		branches = append(branches, literalByteChain(b, perm))
	})
	frag := b.altAll(branches)
	prog := b.finishAnchored(frag, 0)
	return determinize(prog), nil
}

func literalByteChain(b *nfaBuilder, bytes []byte) fragment {
	frag := b.byteRange(bytes[0], bytes[0])
	for _, c := range bytes[1:] {
		frag = b.concat(frag, b.byteRange(c, c))
	}
	return frag
}

// permuteBytes invokes yield with a copy of every ordering of chars,
// permuting a single backing array in place by recursive swaps. Repeated
// bytes in chars produce repeated orderings.
func permuteBytes(chars []byte, k int, yield func([]byte)) {
	if k == len(chars) {
		cp := append([]byte{}, chars...)
		yield(cp)
		return
	}
	for i := k; i < len(chars); i++ {
		chars[k], chars[i] = chars[i], chars[k]
		permuteBytes(chars, k+1, yield)
		chars[k], chars[i] = chars[i], chars[k]
	}
}

// CompileAnagramFilter builds the superset automaton for pattern: matches
// any string of length len(pattern) drawn only from pattern's distinct
// bytes, anchored so the match only fires once exactly that many bytes
// have been consumed and no more. This is an upper bound on anagram
// membership — every true anagram passes it, but so do strings with the
// wrong per-character multiplicity — intended as a cheap first pass over
// a nested trie before a histogram recheck (library.anagramPartial /
// anagramExact) confirms true anagram membership.
func CompileAnagramFilter(pattern string) (*denseDFA, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("%w: empty anagram pattern", ErrAutomatonBuild)
	}
	alphabet := distinctBytes([]byte(pattern))

	b := newNFABuilder()
	charClass := func() fragment {
		frags := make([]fragment, len(alphabet))
		for i, c := range alphabet {
			frags[i] = b.byteRange(c, c)
		}
		return b.altAll(frags)
	}

	frag := charClass()
	for i := 1; i < len(pattern); i++ {
		frag = b.concat(frag, charClass())
	}
	prog := b.finishAnchored(frag, 0)
	return determinize(prog), nil
}

func distinctBytes(s []byte) []byte {
	seen := [256]bool{}
	var out []byte
	for _, c := range s {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
