package search

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twoolhouse/grumpr-go/trie"
)

func buildWordTrie(t *testing.T, words ...string) *trie.Trie[int] {
	t.Helper()
	tr := trie.New[int]()
	for i, w := range words {
		tr.Insert([]byte(w), i)
	}
	return tr
}

func collectWords(n Node[byte], prefix []byte, out *[]string) {
	if n.IsLeaf() {
		*out = append(*out, string(prefix))
	}
	for b, child := range n.Children() {
		next := append(append([]byte{}, prefix...), b)
		collectWords(child, next, out)
	}
}

func TestNestedNodeDepthZeroMatchesPlainTrie(t *testing.T) {
	tr := buildWordTrie(t, "ab", "ba")
	root := NewNestedNode[byte](WrapTrie[int](tr), 0)

	var got []string
	collectWords(root, nil, &got)
	sort.Strings(got)
	require.Equal(t, []string{"ab", "ba"}, got)
}

func TestNestedNodeDepthOneConcatenatesOnce(t *testing.T) {
	tr := buildWordTrie(t, "ab", "ba")
	root := NewNestedNode[byte](WrapTrie[int](tr), 1)

	var got []string
	collectWords(root, nil, &got)
	sort.Strings(got)
	want := []string{"ab", "abab", "abba", "ba", "baab", "baba"}
	require.Equal(t, want, got)
}

func collectLeaves(n *NestedNode[byte], prefix []byte, out map[string]*NestedNode[byte]) {
	if n.IsLeaf() {
		out[string(prefix)] = n
	}
	for b, child := range n.Children() {
		next := append(append([]byte{}, prefix...), b)
		collectLeaves(child.(*NestedNode[byte]), next, out)
	}
}

func TestNestedNodeChainReconstructsSegments(t *testing.T) {
	tr := buildWordTrie(t, "ab", "ba")
	root := NewNestedNode[byte](WrapTrie[int](tr), 1)

	leaves := map[string]*NestedNode[byte]{}
	collectLeaves(root, nil, leaves)

	single, ok := leaves["ab"]
	require.True(t, ok)
	require.Len(t, single.Chain(), 1)

	double, ok := leaves["abba"]
	require.True(t, ok)
	chain := double.Chain()
	require.Len(t, chain, 2)
	require.True(t, chain[0].IsLeaf())
	require.True(t, chain[1].IsLeaf())
}
