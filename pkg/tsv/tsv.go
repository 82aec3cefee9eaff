// 3 Oct 2026

// Package tsv reads tab separated (or otherwise delimited) tables.
// Lines are trimmed of white space at both ends before splitting, so
// trailing empty columns disappear. Empty lines are skipped and so,
// if asked, are comment lines starting with '#'.
package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrShortRow is for rows with fewer columns than a caller needs.
var ErrShortRow = errors.New("too few columns")

const maxLine = 16 * 1024 * 1024 // some taxonomy lines are very long

// Options controls how lines are split.
type Options struct {
	Sep          string // field separator, "\t" if empty
	SkipComments bool   // drop lines starting with '#'
}

// Row is one line, split into fields, with the line number for
// error messages.
type Row struct {
	Fields []string
	Line   int
}

// Col returns field i or dflt if the row is too short.
func (r Row) Col(i int, dflt string) string {
	if i < len(r.Fields) {
		return r.Fields[i]
	}
	return dflt
}

// Need returns an error wrapping ErrShortRow if the row has fewer
// than n fields.
func (r Row) Need(n int) error {
	if len(r.Fields) < n {
		return fmt.Errorf("line %d: %w, have %d want %d", r.Line, ErrShortRow, len(r.Fields), n)
	}
	return nil
}

// Reader hands out rows one at a time.
type Reader struct {
	scnr *bufio.Scanner
	opts Options
	row  Row
	line int
	err  error
}

// NewReader sets up a reader. opts may be nil.
func NewReader(rdr io.Reader, opts *Options) *Reader {
	r := &Reader{scnr: bufio.NewScanner(rdr)}
	r.scnr.Buffer(make([]byte, 64*1024), maxLine)
	if opts != nil {
		r.opts = *opts
	}
	if r.opts.Sep == "" {
		r.opts.Sep = "\t"
	}
	return r
}

// Next moves to the next row. It returns false at the end of input
// or on an error. Check Err() afterwards.
func (r *Reader) Next() bool {
	for r.scnr.Scan() {
		r.line++
		s := strings.TrimSpace(r.scnr.Text())
		if s == "" {
			continue
		}
		if r.opts.SkipComments && s[0] == '#' {
			continue
		}
		r.row = Row{Fields: strings.Split(s, r.opts.Sep), Line: r.line}
		return true
	}
	if err := r.scnr.Err(); err != nil {
		r.err = fmt.Errorf("after line %d: %w", r.line, err)
	}
	return false
}

// Row returns the current row.
func (r *Reader) Row() Row { return r.row }

// Err returns the first error that stopped Next.
func (r *Reader) Err() error { return r.err }

// ReadAll reads every row.
func ReadAll(rdr io.Reader, opts *Options) ([]Row, error) {
	var rows []Row
	r := NewReader(rdr, opts)
	for r.Next() {
		rows = append(rows, r.Row())
	}
	return rows, r.Err()
}
