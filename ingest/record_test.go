package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTSV(t *testing.T) {
	records, err := ParseTSV(strings.NewReader("Hello\t10\nWorld\t5\n"))
	require.NoError(t, err)
	require.Equal(t, []Record{
		{Root: "hello", Count: 10},
		{Root: "world", Count: 5},
	}, records)
}

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader("Hello,10\nWorld,5\n"))
	require.NoError(t, err)
	require.Equal(t, []Record{
		{Root: "hello", Count: 10},
		{Root: "world", Count: 5},
	}, records)
}

func TestParseRejectsMalformedCount(t *testing.T) {
	_, err := ParseTSV(strings.NewReader("hello\tnotanumber\n"))
	require.Error(t, err)
}

func TestGenerateCountsAndFilters(t *testing.T) {
	words := []string{"Cat", "cat", "Dog", "cat", "bird"}
	records := Generate(func(yield func(string) bool) {
		for _, w := range words {
			if !yield(w) {
				return
			}
		}
	}, 1)

	require.Equal(t, []Record{{Root: "cat", Count: 3}}, records)
}

func TestGenerateBreaksTiesByRoot(t *testing.T) {
	words := []string{"b", "a"}
	records := Generate(func(yield func(string) bool) {
		for _, w := range words {
			if !yield(w) {
				return
			}
		}
	}, 0)

	require.Equal(t, []Record{
		{Root: "a", Count: 1},
		{Root: "b", Count: 1},
	}, records)
}

func TestSample(t *testing.T) {
	records, err := Sample()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	var found bool
	for _, r := range records {
		if r.Root == "hello" {
			found = true
			break
		}
	}
	require.True(t, found, "expected the sample corpus to contain \"hello\"")
}

func TestSeedsYieldsInOrder(t *testing.T) {
	records := []Record{{Root: "a", Count: 1}, {Root: "b", Count: 2}}
	var roots []string
	var counts []uint64
	for root, count := range Seeds(records) {
		roots = append(roots, root)
		counts = append(counts, count)
	}
	require.Equal(t, []string{"a", "b"}, roots)
	require.Equal(t, []uint64{1, 2}, counts)
}
