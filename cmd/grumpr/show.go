package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"github.com/twoolhouse/grumpr-go/library"
)

// runShowStage prints the current view as an aligned table. Column
// selection mirrors the original CLI's show flags; text/tabwriter is
// stdlib's own answer for aligned CLI columns and no pack repo ships a
// dedicated table-formatting dependency (see DESIGN.md).
func runShowStage(lz *library.Librarian, args []string) error {
	fs := pflag.NewFlagSet("show", pflag.ContinueOnError)
	title := fs.BoolP("title", "t", false, "print a header row")
	rank := fs.BoolP("rank", "r", false, "print the gram's rank within this view")
	index := fs.BoolP("index", "i", false, "print the seed indices each gram references")
	count := fs.BoolP("count", "c", false, "print each gram's occurrence count")
	frequency := fs.BoolP("frequency", "q", false, "print each gram's frequency within this view")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib := lz.Library()
	grams := lz.Grams()

	var total uint64
	for _, g := range grams {
		total += g.Count(lib)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	defer w.Flush()

	if *title {
		cols := []string{"text"}
		if *rank {
			cols = append(cols, "rank")
		}
		if *index {
			cols = append(cols, "index")
		}
		if *count {
			cols = append(cols, "count")
		}
		if *frequency {
			cols = append(cols, "frequency")
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}

	for i, g := range grams {
		row := []string{g.Text(lib)}
		if *rank {
			row = append(row, strconv.Itoa(i))
		}
		if *index {
			idxs := make([]string, len(g.Indices()))
			for j, idx := range g.Indices() {
				idxs[j] = strconv.FormatUint(idx, 10)
			}
			row = append(row, strings.Join(idxs, ","))
		}
		if *count {
			row = append(row, strconv.FormatUint(g.Count(lib), 10))
		}
		if *frequency {
			var freq float64
			if total > 0 {
				freq = float64(g.Count(lib)) / float64(total)
			}
			row = append(row, strconv.FormatFloat(freq, 'f', 6, 64))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return nil
}
