package library

// Seed is an immutable library entry: a word root, its position in the
// library's insertion order, and its raw corpus frequency.
type Seed struct {
	Root  string
	Index uint64
	Count uint64
}
