// 5 Oct 2026

// Package join holds a table of rows keyed by an identifier and does
// left joins between two of them. Tables remember the order in which
// keys first arrived, so output follows input.
package join

import (
	"fmt"
	"io"

	"github.com/andrew-torda/coxtax/pkg/tsv"
)

// Table maps a key to the rest of its row.
type Table struct {
	keys []string
	vals map[string][]string
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{vals: make(map[string][]string)} }

// Set stores vals under key. A key seen before keeps its place, but
// gets the new values.
func (t *Table) Set(key string, vals []string) {
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = vals
}

// Has says if the key is in the table.
func (t *Table) Has(key string) bool { _, ok := t.vals[key]; return ok }

// Lookup returns the values for a key. The slice belongs to the table.
func (t *Table) Lookup(key string) ([]string, bool) { v, ok := t.vals[key]; return v, ok }

// Get returns column col of the values for key, or dflt if the
// key is not there or the row is too short.
func (t *Table) Get(key string, col int, dflt string) string {
	if v, ok := t.vals[key]; ok && col < len(v) {
		return v[col]
	}
	return dflt
}

// Keys returns keys in the order they were first seen.
func (t *Table) Keys() []string { return t.keys }

// Len is the number of keys.
func (t *Table) Len() int { return len(t.keys) }

// LoadOpts says how to turn rows into keys and values.
// By default the key is column KeyCol and the values are the
// other columns in order.
type LoadOpts struct {
	tsv.Options
	KeyCol int
	Width  int    // if > 0, values are padded or cut to this many columns
	Pad    string // used for padding
	// Key, if set, replaces KeyCol. Returning false drops the row.
	Key func(r tsv.Row) (string, bool)
	// Vals, if set, replaces the default choice of values.
	Vals func(r tsv.Row) []string
}

// fit pads or truncates v to n columns.
func fit(v []string, n int, pad string) []string {
	if len(v) > n {
		return v[:n]
	}
	for len(v) < n {
		v = append(v, pad)
	}
	return v
}

// withoutCol returns a copy of f with column i removed.
func withoutCol(f []string, i int) []string {
	r := make([]string, 0, len(f))
	r = append(r, f[:i]...)
	return append(r, f[i+1:]...)
}

// LoadTable reads a delimited table.
func LoadTable(rdr io.Reader, opts *LoadOpts) (*Table, error) {
	if opts == nil {
		opts = &LoadOpts{}
	}
	t := NewTable()
	r := tsv.NewReader(rdr, &opts.Options)
	for r.Next() {
		if err := t.addRow(r.Row(), opts); err != nil {
			return nil, err
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) addRow(row tsv.Row, opts *LoadOpts) error {
	var key string
	if opts.Key != nil {
		var ok bool
		if key, ok = opts.Key(row); !ok {
			return nil
		}
	} else {
		if err := row.Need(opts.KeyCol + 1); err != nil {
			return fmt.Errorf("key column %d: %w", opts.KeyCol+1, err)
		}
		key = row.Fields[opts.KeyCol]
	}
	var vals []string
	if opts.Vals != nil {
		vals = opts.Vals(row)
	} else if opts.Key != nil {
		vals = row.Fields
	} else {
		vals = withoutCol(row.Fields, opts.KeyCol)
	}
	if opts.Width > 0 {
		vals = fit(vals, opts.Width, opts.Pad)
	}
	t.Set(key, vals)
	return nil
}

// Joined is one row of the left table with whatever matched on the
// right.
type Joined struct {
	Key     string
	Left    []string
	Right   []string // nil if nothing matched
	Matched bool
}

// RightCol returns column col from the right hand side, or dflt
// if there was no match or the column is missing.
func (j Joined) RightCol(col int, dflt string) string {
	if j.Matched && col < len(j.Right) {
		return j.Right[col]
	}
	return dflt
}

// LeftJoin returns every key of left, in order, with the matching
// row from right, if there is one.
func LeftJoin(left, right *Table) []Joined {
	out := make([]Joined, 0, left.Len())
	for _, k := range left.keys {
		j := Joined{Key: k, Left: left.vals[k]}
		j.Right, j.Matched = right.vals[k]
		out = append(out, j)
	}
	return out
}
