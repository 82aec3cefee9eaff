// 7 Oct 2026

package gbk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/TimothyStiles/poly/io/genbank"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

var (
	ErrBadLocation = errors.New("bad or unsupported location")
	ErrBadBase     = errors.New("cannot complement base")
)

// Span is a piece of a location. From and To count from 1 and are
// inclusive.
type Span struct {
	From, To int
	Comp     bool
}

// Location is a list of spans, in the order their sequence is joined.
type Location struct {
	Spans []Span
}

// NewLocation flattens a poly location. poly counts from zero with an
// open end. References into other entries (ACC.1:10..20) and
// locations poly could not fill in are ErrBadLocation.
func NewLocation(l genbank.Location) (Location, error) {
	spans, err := flatten(l, false)
	if err != nil {
		return Location{}, fmt.Errorf("%w: \"%s\": %v", ErrBadLocation, l.GbkLocationString, err)
	}
	if len(spans) == 0 {
		return Location{}, fmt.Errorf("%w: \"%s\" is empty", ErrBadLocation, l.GbkLocationString)
	}
	return Location{Spans: spans}, nil
}

// flatten walks the location tree. A complement reverses the order of
// everything under it.
func flatten(l genbank.Location, comp bool) ([]Span, error) {
	if strings.Contains(l.GbkLocationString, ":") {
		return nil, errors.New("points into another entry")
	}
	comp = comp != l.Complement
	if len(l.SubLocations) == 0 {
		sp := Span{From: l.Start + 1, To: l.End, Comp: comp}
		if n, err := strconv.Atoi(l.GbkLocationString); err == nil {
			sp.From, sp.To = n, n //    a single base
		}
		if sp.From < 1 || sp.To < sp.From {
			return nil, fmt.Errorf("range %d..%d", sp.From, sp.To)
		}
		return []Span{sp}, nil
	}
	var spans []Span
	for _, sub := range l.SubLocations {
		s, err := flatten(sub, comp)
		if err != nil {
			return nil, err
		}
		spans = append(spans, s...)
	}
	if l.Complement {
		for i, j := 0, len(spans)-1; i < j; i, j = i+1, j-1 {
			spans[i], spans[j] = spans[j], spans[i]
		}
	}
	return spans, nil
}

// RevComp reverse complements a nucleotide sequence. Case is kept and
// ambiguity codes are understood.
func RevComp(b []byte) ([]byte, error) {
	alpha := alphabet.DNAredundant
	letters := make([]alphabet.Letter, len(b))
	for i, c := range b {
		l := alphabet.Letter(c)
		if !alpha.IsValid(l) {
			return nil, fmt.Errorf("%w: %q", ErrBadBase, c)
		}
		letters[i] = l
	}
	s := linear.NewSeq("", letters, alpha)
	s.RevComp()
	r := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		r[i] = byte(l)
	}
	return r, nil
}

// Extract pulls the sequence for a location out of seq.
// Complemented spans are reverse complemented.
func (loc Location) Extract(seq []byte) ([]byte, error) {
	var r []byte
	for _, sp := range loc.Spans {
		if sp.To > len(seq) {
			return nil, fmt.Errorf("%w: %d past end of %d long sequence", ErrBadLocation, sp.To, len(seq))
		}
		part := seq[sp.From-1 : sp.To]
		if sp.Comp {
			var err error
			if part, err = RevComp(part); err != nil {
				return nil, err
			}
		}
		r = append(r, part...)
	}
	return r, nil
}

// Len is the number of bases the location covers.
func (loc Location) Len() int {
	n := 0
	for _, sp := range loc.Spans {
		n += sp.To - sp.From + 1
	}
	return n
}
