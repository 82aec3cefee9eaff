// 12 Oct 2026

// Package krona writes the text reports Krona's ktImportText reads,
// one line per lineage:
//
//	count	k__Eukaryota	p__Arthropoda	...	s__Apis mellifera
//
// Counts come either from a taxonomy table with one row per sequence,
// or from an OTU table with a column per sample.
package krona

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/coxtax/pkg/taxon"
	"github.com/andrew-torda/coxtax/pkg/tsv"
)

// TaxCount is the number of times a lineage was seen.
type TaxCount struct {
	Tax string
	N   int
}

// CountTaxa reads a table like desc2tax's output and counts the
// lineages in the second column. Rows with a "#" anywhere in the
// first column are skipped. Lineages come back in the order they
// were first seen.
func CountTaxa(rdr io.Reader) ([]TaxCount, error) {
	var counts []TaxCount
	where := make(map[string]int)
	r := tsv.NewReader(rdr, nil)
	for r.Next() {
		row := r.Row()
		if strings.Contains(row.Fields[0], "#") {
			continue
		}
		if err := row.Need(2); err != nil {
			return nil, err
		}
		tax := row.Fields[1]
		if i, ok := where[tax]; ok {
			counts[i].N++
			continue
		}
		where[tax] = len(counts)
		counts = append(counts, TaxCount{Tax: tax, N: 1})
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// writeLine writes one report line. Nothing is written for counts
// less than one.
func writeLine(w io.Writer, n int, tax string) (bool, error) {
	if n <= 0 {
		return false, nil
	}
	ladder, err := taxon.Ladder(tax)
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprintf(w, "%d\t%s\n", n, strings.Join(ladder, "\t"))
	return err == nil, err
}

// WriteCounts writes a report for counts.
func WriteCounts(w io.Writer, counts []TaxCount) error {
	for _, c := range counts {
		if _, err := writeLine(w, c.N, c.Tax); err != nil {
			return err
		}
	}
	return nil
}
