// 12 Oct 2026

package krona

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/coxtax/pkg/tsv"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

// ErrSamples is for a row with the wrong number of abundances.
var ErrSamples = errors.New("number of values does not match samples")

const lineageMark = "k__"

// ErrTooBig is for a summed abundance that will not fit in a count.
var ErrTooBig = errors.New("abundance too large")

// OTUTable has a row per lineage and a column per sample. Counts
// holds the summed abundances, truncated to whole numbers.
type OTUTable struct {
	Samples []string
	Taxa    []string
	Counts  *matrix.IMatrix2d // Counts.Mat[taxon][sample]
}

// truncate takes the integer part of a summed abundance. NaN counts
// as nothing.
func truncate(f float64) (int32, error) {
	if math.IsNaN(f) {
		return 0, nil
	}
	t := math.Trunc(f)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, fmt.Errorf("%w: %g", ErrTooBig, f)
	}
	return int32(t), nil
}

// parseVals reads the abundances of one row.
func parseVals(row tsv.Row) ([]float64, error) {
	v := make([]float64, len(row.Fields)-1)
	for i, s := range row.Fields[1:] {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d column %d: %w", row.Line, i+2, err)
		}
		v[i] = f
	}
	return v, nil
}

// ReadOTU reads an OTU table. The first line, and any starting with
// '#', names the samples. Rows whose first column has no "k__" are
// not lineages and are skipped. A lineage seen twice has its
// abundances added up.
func ReadOTU(rdr io.Reader) (*OTUTable, error) {
	var o OTUTable
	var sums [][]float64
	where := make(map[string]int)
	r := tsv.NewReader(rdr, nil)
	for first := true; r.Next(); first = false {
		row := r.Row()
		if first || strings.HasPrefix(row.Fields[0], "#") {
			if len(o.Taxa) > 0 && len(row.Fields)-1 != len(o.Samples) {
				return nil, fmt.Errorf("line %d: header changes the number of samples from %d to %d",
					row.Line, len(o.Samples), len(row.Fields)-1)
			}
			o.Samples = append(o.Samples[:0], row.Fields[1:]...)
			continue
		}
		if !strings.Contains(row.Fields[0], lineageMark) {
			continue
		}
		if n := len(row.Fields) - 1; n != len(o.Samples) {
			return nil, fmt.Errorf("line %d: %w, %d values for %d samples", row.Line, ErrSamples, n, len(o.Samples))
		}
		v, err := parseVals(row)
		if err != nil {
			return nil, err
		}
		tax := row.Fields[0]
		i, ok := where[tax]
		if !ok {
			where[tax] = len(o.Taxa)
			o.Taxa = append(o.Taxa, tax)
			sums = append(sums, v)
			continue
		}
		for j, f := range v {
			sums[i][j] += f
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	o.Counts = matrix.NewIMatrix2d(len(o.Taxa), len(o.Samples))
	for i, v := range sums {
		for j, f := range v {
			n, err := truncate(f)
			if err != nil {
				return nil, fmt.Errorf("%s sample %s: %w", o.Taxa[i], o.Samples[j], err)
			}
			o.Counts.Mat[i][j] = n
		}
	}
	return &o, nil
}

// WriteSample writes the report for sample number isample. Anything
// which summed to less than one is left out.
func (o *OTUTable) WriteSample(w io.Writer, isample int) (nLine int, err error) {
	for i, tax := range o.Taxa {
		wrote, err := writeLine(w, int(o.Counts.Mat[i][isample]), tax)
		if err != nil {
			return nLine, err
		}
		if wrote {
			nLine++
		}
	}
	return nLine, nil
}

// ReportName is the file a sample's report goes to.
func ReportName(dir, sample, suffix string) string {
	return filepath.Join(dir, sample+suffix)
}

// WriteReports writes one file per sample into dir.
func (o *OTUTable) WriteReports(dir, suffix string) error {
	for i, s := range o.Samples {
		fo, err := zwrap.Create(ReportName(dir, s, suffix))
		if err != nil {
			return err
		}
		_, err = o.WriteSample(fo, i)
		if cerr := fo.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("sample %s: %w", s, err)
		}
	}
	return nil
}
