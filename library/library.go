package library

import "iter"

// Library is an immutable, ordered sequence of seeds assigned indices by
// insertion order. Built once from a stream of (root, count) pairs, it is
// freely read-shared afterwards — nothing in this package mutates it.
type Library struct {
	seeds []Seed
}

// New builds a Library from an ordered stream of (root, count) pairs. No
// uniqueness is enforced: duplicate roots become distinct seeds with
// distinct indices.
func New(entries iter.Seq2[string, uint64]) *Library {
	lib := &Library{}
	for root, count := range entries {
		lib.seeds = append(lib.seeds, Seed{
			Root:  root,
			Index: uint64(len(lib.seeds)),
			Count: count,
		})
	}
	return lib
}

// Len returns the number of seeds in the library.
func (l *Library) Len() int { return len(l.seeds) }

// Seed returns the seed at index. It panics if index is out of range —
// every Gram's indices are guaranteed valid by construction, so an
// out-of-range index always indicates a bug in this module, not bad
// input.
func (l *Library) Seed(index uint64) Seed { return l.seeds[index] }

// Seeds returns every seed in insertion order. The returned slice must
// not be mutated by callers.
func (l *Library) Seeds() []Seed { return l.seeds }

// NewLibrarian returns the initial view over l: every seed as a Word, in
// library order.
func (l *Library) NewLibrarian() *Librarian {
	grams := make([]Gram, l.Len())
	for i := range grams {
		grams[i] = NewWord(uint64(i))
	}
	return &Librarian{library: l, grams: grams}
}
