// Package search implements the query execution subsystem: a Node
// abstraction unifying the trie and its virtual concatenation view, a
// MultiHeadDFA driver that walks a DFA jointly with a tree traversal, and
// the automata constructors (regex, anagram, anagram-filter,
// Levenshtein) that produce the DFAs it drives.
package search

import (
	"iter"

	"github.com/twoolhouse/grumpr-go/trie"
)

// Node unifies the trie and NestedNode under one traversal interface.
// IsLeaf reports "this node carries a value" — independent of whether
// Children is empty, exactly as in the trie itself.
type Node[T any] interface {
	Children() iter.Seq2[T, Node[T]]
	IsLeaf() bool
}

// TrieNode adapts *trie.Trie[V] to Node[byte].
type TrieNode[V any] struct {
	t *trie.Trie[V]
}

// WrapTrie returns t as a Node[byte].
func WrapTrie[V any](t *trie.Trie[V]) TrieNode[V] {
	return TrieNode[V]{t: t}
}

func (n TrieNode[V]) IsLeaf() bool { return n.t.IsLeaf() }

func (n TrieNode[V]) Value() (*V, bool) { return n.t.Value() }

func (n TrieNode[V]) Children() iter.Seq2[byte, Node[byte]] {
	return func(yield func(byte, Node[byte]) bool) {
		for b, child := range n.t.Bytes() {
			if !yield(b, TrieNode[V]{t: child}) {
				return
			}
		}
	}
}
