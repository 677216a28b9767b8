// Package ingest reads a word corpus into (root, count) records the
// library package can build a Library from, and bundles a small sample
// corpus for trying the tool without a real dataset on hand.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"sort"
	"strconv"
	"strings"
)

// Record is one (root, count) entry read from a corpus file or produced
// by Generate.
type Record struct {
	Root  string
	Count uint64
}

// Parse reads (root, count) records from r, fields separated by
// delimiter, no header row — the shape of the original Google ngram TSV
// export this package's callers target.
func Parse(r io.Reader, delimiter rune) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = 2

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		count, err := strconv.ParseUint(row[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: parsing count %q: %w", row[1], err)
		}
		records = append(records, Record{Root: strings.ToLower(row[0]), Count: count})
	}
	return records, nil
}

// ParseTSV reads tab-delimited (root, count) records.
func ParseTSV(r io.Reader) ([]Record, error) { return Parse(r, '\t') }

// ParseCSV reads comma-delimited (root, count) records.
func ParseCSV(r io.Reader) ([]Record, error) { return Parse(r, ',') }

// Generate builds records by counting occurrences of each word in words,
// lowercasing as it counts, then keeping only words that occurred more
// than threshold times. Ties in count break by root, ascending, so the
// result is deterministic.
func Generate(words iter.Seq[string], threshold uint64) []Record {
	counts := make(map[string]uint64)
	for w := range words {
		counts[strings.ToLower(w)]++
	}

	records := make([]Record, 0, len(counts))
	for root, count := range counts {
		records = append(records, Record{Root: root, Count: count})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Count != records[j].Count {
			return records[i].Count > records[j].Count
		}
		return records[i].Root < records[j].Root
	})

	kept := records[:0]
	for _, rec := range records {
		if rec.Count > threshold {
			kept = append(kept, rec)
		}
	}
	return kept
}

// Seeds adapts records into the (root, count) stream library.New expects.
func Seeds(records []Record) iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for _, rec := range records {
			if !yield(rec.Root, rec.Count) {
				return
			}
		}
	}
}
