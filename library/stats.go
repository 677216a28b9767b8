package library

// StatsOccurrences mirrors Stats' four counters weighted by each seed's
// recorded occurrence count, rather than counted once per distinct seed
// or gram.
type StatsOccurrences struct {
	Seeds       uint64 `json:"seeds"`
	Ngrams      uint64 `json:"ngrams"`
	CharsSeeds  uint64 `json:"chars_seeds"`
	CharsNgrams uint64 `json:"chars_ngrams"`
}

// Stats summarizes a Librarian view: counts over distinct seeds and over
// grams, plus occurrence-weighted counterparts of each.
type Stats struct {
	Seeds       int              `json:"seeds"`
	Ngrams      int              `json:"ngrams"`
	NgramSeeds  int              `json:"ngram_seeds"`
	CharsSeeds  int              `json:"chars_seeds"`
	CharsNgrams int              `json:"chars_ngrams"`
	Occurrences StatsOccurrences `json:"occurrences"`
}

// NewStats folds lz's current grams into a Stats snapshot.
func NewStats(lz *Librarian) Stats {
	var s Stats
	seen := make(map[uint64]bool)

	for _, g := range lz.grams {
		s.Ngrams++
		for _, idx := range g.Indices() {
			s.NgramSeeds++
			seed := lz.library.Seed(idx)
			chars := len([]rune(seed.Root))

			s.Occurrences.Ngrams += seed.Count
			s.CharsNgrams += chars
			s.Occurrences.CharsNgrams += uint64(chars) * seed.Count

			if !seen[idx] {
				seen[idx] = true
				s.Seeds++
				s.CharsSeeds += chars
				s.Occurrences.Seeds += seed.Count
				s.Occurrences.CharsSeeds += uint64(chars) * seed.Count
			}
		}
	}

	return s
}
