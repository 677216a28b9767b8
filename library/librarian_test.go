package library_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twoolhouse/grumpr-go/library"
)

// words is the worked example library used throughout spec scenarios:
// counts equal insertion index.
var words = []string{
	"hello", "world", "librarian", "gram", "rust", "regex",
	"search", "test", "seed", "library", "pear", "pears", "spear",
}

func newTestLibrarian(t *testing.T) *library.Librarian {
	t.Helper()
	entries := func(yield func(string, uint64) bool) {
		for i, w := range words {
			if !yield(w, uint64(i)) {
				return
			}
		}
	}
	lib := library.New(entries)
	return lib.NewLibrarian()
}

func gramTexts(t *testing.T, lz *library.Librarian) []string {
	t.Helper()
	lib := lz.Library()
	out := make([]string, lz.Len())
	for i, g := range lz.Grams() {
		out[i] = g.Text(lib)
	}
	return out
}

func TestSearchDepthZeroExactWord(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Search(library.Match{Pattern: "^librarian$", Depth: 0})
	require.NoError(t, err)
	require.Equal(t, []string{"librarian"}, gramTexts(t, out))
	require.True(t, out.Grams()[0].IsWord())
}

func TestSearchDepthOneConcatenation(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Search(library.Match{Pattern: "^helloworld$", Depth: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"helloworld"}, gramTexts(t, out))
	require.True(t, out.Grams()[0].IsSequence())
}

func TestSearchDotMatchesEverySingletonAndPair(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Search(library.Match{Pattern: ".", Depth: 1})
	require.NoError(t, err)
	n := len(words)
	require.Equal(t, n+n*n, out.Len())
}

func TestAnagramExactShortPattern(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Anagrams(library.Anagram{Pattern: "stur"})
	require.NoError(t, err)
	require.Equal(t, []string{"rust"}, gramTexts(t, out))
}

func TestAnagramPartial(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Anagrams(library.Anagram{Pattern: "pears", Partial: true})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"pear", "pears", "spear"}, gramTexts(t, out))
}

func TestNearestFindsMinimumDistance(t *testing.T) {
	lz := newTestLibrarian(t)
	out, dist, err := lz.Nearest(library.Nearest{Pattern: "librar", Distance: 5})
	require.NoError(t, err)
	require.Equal(t, uint8(1), dist)
	require.Equal(t, []string{"library"}, gramTexts(t, out))
}

func TestNearestFailsWhenNoCandidateWithinDistance(t *testing.T) {
	lz := newTestLibrarian(t)
	_, _, err := lz.Nearest(library.Nearest{Pattern: "zzzzzzzzzzzzzzzzzzzz", Distance: 0})
	require.ErrorIs(t, err, library.ErrNoNearest)
}

func TestDistanceNonStrictSparseLayerOvermatches(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Distance(library.Distance{Pattern: "librar", Distances: []uint8{3}, Strict: false})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"librarian", "library"}, gramTexts(t, out))
}

func TestDistanceStrictKeepsOnlyTrueDistanceMatches(t *testing.T) {
	lz := newTestLibrarian(t)
	out, err := lz.Distance(library.Distance{Pattern: "librar", Distances: []uint8{3}, Strict: true})
	require.NoError(t, err)
	require.Equal(t, []string{"librarian"}, gramTexts(t, out))
}

func TestHasRequiresEveryCharacter(t *testing.T) {
	lz := newTestLibrarian(t)
	out := lz.Has(library.Has{Characters: "eex"})
	require.Equal(t, []string{"regex"}, gramTexts(t, out))
}

func TestFilterIdempotentOnAlwaysTrue(t *testing.T) {
	lz := newTestLibrarian(t)
	out := lz.Filter(func(library.Gram) bool { return true })
	require.Equal(t, gramTexts(t, lz), gramTexts(t, out))
}

func TestWhitelistKeepsOnlyContainingGrams(t *testing.T) {
	lz := newTestLibrarian(t)
	out := lz.Whitelist([]string{"gram"})
	require.Equal(t, []string{"gram"}, gramTexts(t, out))
}

func TestBlacklistRemovesContainingGrams(t *testing.T) {
	lz := newTestLibrarian(t)
	out := lz.Blacklist([]string{"e"})
	for _, text := range gramTexts(t, out) {
		require.NotContains(t, text, "e")
	}
	require.Less(t, out.Len(), lz.Len())
}

func TestEmptyDistanceSetFailsConstruction(t *testing.T) {
	lz := newTestLibrarian(t)
	_, err := lz.Distance(library.Distance{Pattern: "test", Distances: nil})
	require.ErrorIs(t, err, library.ErrAutomatonBuild)
}

func TestInvalidRegexSurfacesRegexSyntaxError(t *testing.T) {
	lz := newTestLibrarian(t)
	_, err := lz.Search(library.Match{Pattern: "(unclosed", Depth: 0})
	require.ErrorIs(t, err, library.ErrRegexSyntax)
}
