package ingest

import (
	"bytes"
	_ "embed"
)

// sampleTSV is an illustrative sample corpus bundled with this module so
// the CLI works without a real dataset on hand. It is intentionally
// small — shipping a full tens-of-millions-of-rows ngram corpus is out
// of scope for this repository. Sample parses with the exact same
// ParseTSV used against a real corpus file supplied at runtime, so
// nothing about the loader changes when a caller swaps one in.
//
//go:embed corpus/sample.tsv
var sampleTSV []byte

// Sample returns the records in the embedded sample corpus.
func Sample() ([]Record, error) {
	return ParseTSV(bytes.NewReader(sampleTSV))
}
