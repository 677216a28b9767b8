package search

import "iter"

// Byte is satisfied by any type whose underlying representation is a
// single byte — the alphabet every DFA in this package is built over.
type Byte interface{ ~byte }

type headMode int

const (
	headThisNode headMode = iota
	headChildren
)

// head is a depth-first cursor paired with a DFA state. A driving head is
// still being checked against the automaton; an accepting head already
// entered a match state, so its entire subtree yields matches unchanged.
type head[T Byte] struct {
	mode      headMode
	node      Node[T]
	pull      func() (T, Node[T], bool)
	stop      func()
	state     StateID
	accepting bool
}

// MultiHeadDFA drives a DFA jointly with a tree traversal, yielding every
// leaf node whose root-to-node byte sequence the DFA accepts. The same driver
// walking a NestedNode enumerates every depth-bounded concatenation that
// satisfies the automaton, with no precomputed n-gram table.
type MultiHeadDFA[T Byte] struct {
	dfa   DFA
	heads []head[T]
}

// NewMultiHeadDFA starts a driver at root with dfa's start state.
func NewMultiHeadDFA[T Byte](dfa DFA, root Node[T]) (*MultiHeadDFA[T], error) {
	start, err := dfa.StartState()
	if err != nil {
		return nil, err
	}
	heads := make([]head[T], 0, 32)
	heads = append(heads, head[T]{mode: headThisNode, node: root, state: start})
	return &MultiHeadDFA[T]{dfa: dfa, heads: heads}, nil
}

// Next advances the traversal and returns the next matching (node, state)
// pair. ok is false once every head is exhausted.
func (m *MultiHeadDFA[T]) Next() (Node[T], StateID, bool) {
	for len(m.heads) > 0 {
		top := len(m.heads) - 1
		h := &m.heads[top]

		switch h.mode {
		case headThisNode:
			node := h.node
			pull, stop := iter.Pull2(node.Children())
			h.mode = headChildren
			h.pull = pull
			h.stop = stop

			if node.IsLeaf() {
				if h.accepting {
					return node, h.state, true
				}
				state := m.dfa.NextEOIState(h.state)
				if m.dfa.IsMatchState(state) {
					return node, state, true
				}
			}

		case headChildren:
			b, child, ok := h.pull()
			if !ok {
				h.stop()
				m.heads = m.heads[:top]
				continue
			}
			if h.accepting {
				m.heads = append(m.heads, head[T]{mode: headThisNode, node: child, state: h.state, accepting: true})
				continue
			}
			next := m.dfa.NextState(h.state, byte(b))
			if m.dfa.IsDeadState(next) {
				continue
			}
			m.heads = append(m.heads, head[T]{
				mode:      headThisNode,
				node:      child,
				state:     next,
				accepting: m.dfa.IsMatchState(next),
			})
		}
	}
	var zero Node[T]
	return zero, deadStateID, false
}
