// 7 Oct 2026

// Package gbk gives the tools a small view of GenBank flatfiles.
// Parsing is done by poly's genbank package. We keep what the tools
// need: the identifiers, the organism and lineage, the feature table
// and the sequence.
package gbk

import (
	"io"
	"strings"

	"github.com/TimothyStiles/poly/io/genbank"
)

// Feature is one entry from the feature table.
type Feature struct {
	Key   string
	Quals map[string]string
	loc   genbank.Location
}

// tidy takes off quotes and white space that poly leaves on a
// qualifier. Translations lose all their white space, since they
// may have been wrapped.
func tidy(name, v string) string {
	v = strings.Trim(strings.TrimSpace(v), "\"")
	if name == "translation" {
		v = strings.Join(strings.Fields(v), "")
	}
	return v
}

// Qual returns the named qualifier. Qualifiers without a value, like
// /pseudo, are there with an empty string.
func (f *Feature) Qual(name string) (string, bool) {
	v, ok := f.Quals[name]
	return v, ok
}

// Location converts the feature's location to spans we can extract.
func (f *Feature) Location() (Location, error) {
	return NewLocation(f.loc)
}

// Record is one LOCUS ... // entry.
type Record struct {
	Locus      string
	Accession  string
	Version    string
	Definition string
	Organism   string
	Taxonomy   []string // kingdom first, no full stop at the end
	Features   []Feature
	Seq        []byte
}

// firstField is the first white space separated word, or "".
func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// newRecord copies what we want out of a poly record.
func newRecord(gb *genbank.Genbank) *Record {
	m := &gb.Meta
	rec := &Record{
		Locus:      m.Locus.Name,
		Accession:  firstField(m.Accession),
		Version:    firstField(m.Version),
		Definition: strings.Join(strings.Fields(m.Definition), " "),
		Organism:   strings.TrimSpace(m.Organism),
		Seq:        []byte(gb.Sequence),
	}
	for _, t := range m.Taxonomy {
		if t = strings.TrimSuffix(strings.TrimSpace(t), "."); t != "" {
			rec.Taxonomy = append(rec.Taxonomy, t)
		}
	}
	for _, pf := range gb.Features {
		if pf.Type == "" {
			continue
		}
		f := Feature{Key: pf.Type, Quals: make(map[string]string, len(pf.Attributes)), loc: pf.Location}
		for name, v := range pf.Attributes {
			f.Quals[name] = tidy(name, v)
		}
		rec.Features = append(rec.Features, f)
	}
	return rec
}

// Reader hands out records from a flatfile one at a time. The whole
// file is parsed on the first call to Read.
type Reader struct {
	rdr    io.Reader
	recs   []genbank.Genbank
	parsed bool
}

// NewReader wraps rdr.
func NewReader(rdr io.Reader) *Reader {
	return &Reader{rdr: rdr}
}

// Read returns the next record, or io.EOF when there are no more.
// Anything without a LOCUS name is not a record and is passed over.
func (r *Reader) Read() (*Record, error) {
	if !r.parsed {
		r.parsed = true
		recs, err := genbank.ParseMulti(r.rdr)
		if err != nil {
			return nil, err
		}
		r.recs = recs
	}
	for len(r.recs) > 0 {
		gb := &r.recs[0]
		r.recs = r.recs[1:]
		if gb.Meta.Locus.Name != "" {
			return newRecord(gb), nil
		}
	}
	return nil, io.EOF
}

// ReadAll reads every record.
func ReadAll(rdr io.Reader) ([]*Record, error) {
	var recs []*Record
	r := NewReader(rdr)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}
