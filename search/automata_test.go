package search

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// simulate drives a fully-anchored automaton (anagram, anagram-filter,
// Levenshtein) across the whole of s and reports whether the final state
// is a match.
func simulate(t *testing.T, dfa DFA, s string) bool {
	t.Helper()
	state, err := dfa.StartState()
	if err != nil {
		return false
	}
	for i := 0; i < len(s); i++ {
		state = dfa.NextState(state, s[i])
		if dfa.IsDeadState(state) {
			return false
		}
	}
	state = dfa.NextEOIState(state)
	return dfa.IsMatchState(state)
}

// matchesSubstring drives CompileRegex's unanchored-start automaton across
// s, reporting whether a match triggers at any prefix — the DFA-level half
// of the substring search MultiHeadDFA completes via its accepting-head
// mechanism, which holds the match once it triggers.
func matchesSubstring(t *testing.T, dfa DFA, s string) bool {
	t.Helper()
	state, err := dfa.StartState()
	if err != nil {
		return false
	}
	if dfa.IsMatchState(state) {
		return true
	}
	for i := 0; i < len(s); i++ {
		state = dfa.NextState(state, s[i])
		if dfa.IsMatchState(state) {
			return true
		}
		if dfa.IsDeadState(state) {
			return false
		}
	}
	return false
}

func TestCompileRegexLiteral(t *testing.T) {
	dfa, err := CompileRegex("hello")
	require.NoError(t, err)
	require.True(t, matchesSubstring(t, dfa, "hello"))
	require.True(t, matchesSubstring(t, dfa, "sayhellothere"), "unanchored: pattern may start mid-string")
	require.False(t, matchesSubstring(t, dfa, "hell"))
}

func TestCompileRegexAlternationAndStar(t *testing.T) {
	dfa, err := CompileRegex("a(b|c)*d")
	require.NoError(t, err)
	for _, s := range []string{"ad", "abd", "acd", "abcbcd", "xxabcbcdxx"} {
		require.True(t, matchesSubstring(t, dfa, s), "expected %q to match", s)
	}
	for _, s := range []string{"a", "abc", "abce"} {
		require.False(t, matchesSubstring(t, dfa, s), "expected %q not to match", s)
	}
}

func TestCompileRegexCharClass(t *testing.T) {
	dfa, err := CompileRegex("[a-c]+")
	require.NoError(t, err)
	require.True(t, matchesSubstring(t, dfa, "abc"))
	require.True(t, matchesSubstring(t, dfa, "a"))
	require.True(t, matchesSubstring(t, dfa, "zzazz"))
	require.False(t, matchesSubstring(t, dfa, "zzz"))
}

func TestCompileRegexDotMatchesAnyNonEmptyGram(t *testing.T) {
	dfa, err := CompileRegex(".")
	require.NoError(t, err)
	for _, s := range []string{"a", "hello", "librarian"} {
		require.True(t, matchesSubstring(t, dfa, s))
	}
}

func TestCompileRegexInvalidSyntax(t *testing.T) {
	_, err := CompileRegex("(unterminated")
	require.ErrorIs(t, err, ErrRegexSyntax)
}

func TestCompileAnagramExactAcceptsAllPermutations(t *testing.T) {
	dfa, err := CompileAnagramExact("cat")
	require.NoError(t, err)
	for _, s := range []string{"cat", "cta", "act", "atc", "tca", "tac"} {
		require.True(t, simulate(t, dfa, s), "expected %q to match", s)
	}
	require.False(t, simulate(t, dfa, "dog"))
	require.False(t, simulate(t, dfa, "ca"))
	require.False(t, simulate(t, dfa, "caat"))
}

func TestCompileAnagramExactRejectsLongPatterns(t *testing.T) {
	_, err := CompileAnagramExact("abcdefgh")
	require.ErrorIs(t, err, ErrAutomatonBuild)
}

func TestCompileAnagramFilterIsSuperset(t *testing.T) {
	dfa, err := CompileAnagramFilter("cat")
	require.NoError(t, err)
	// True anagrams pass.
	require.True(t, simulate(t, dfa, "act"))
	// So does a same-length, same-alphabet string that is NOT a true
	// anagram — the filter is an upper bound, not exact membership.
	require.True(t, simulate(t, dfa, "ccc"))
	// Wrong alphabet or wrong length never pass.
	require.False(t, simulate(t, dfa, "dog"))
	require.False(t, simulate(t, dfa, "ca"))
}

func TestCompileLevenshteinZeroDistance(t *testing.T) {
	automaton, err := CompileLevenshtein("cat", []uint8{0})
	require.NoError(t, err)
	dfa := automaton.DFA()
	require.True(t, simulate(t, dfa, "cat"))
	require.False(t, simulate(t, dfa, "bat"))
	require.False(t, simulate(t, dfa, "cats"))
}

func TestCompileLevenshteinDistanceReporting(t *testing.T) {
	automaton, err := CompileLevenshtein("cat", []uint8{0, 1, 2})
	require.NoError(t, err)
	dfa := automaton.DFA()

	state, err := dfa.StartState()
	require.NoError(t, err)
	for i := 0; i < len("bat"); i++ {
		state = dfa.NextState(state, "bat"[i])
		require.False(t, dfa.IsDeadState(state))
	}
	state = dfa.NextEOIState(state)
	require.True(t, dfa.IsMatchState(state))
	require.Equal(t, uint8(1), automaton.Distance(state))
}

func TestCompileLevenshteinEmptyDistanceSetFails(t *testing.T) {
	_, err := CompileLevenshtein("cat", nil)
	require.ErrorIs(t, err, ErrAutomatonBuild)
}

func TestPermuteBytesProducesAllDistinctOrderings(t *testing.T) {
	var got []string
	permuteBytes([]byte("abc"), 0, func(p []byte) {
		got = append(got, string(p))
	})
	sort.Strings(got)
	require.Equal(t, []string{"abc", "acb", "bac", "bca", "cab", "cba"}, got)
}
