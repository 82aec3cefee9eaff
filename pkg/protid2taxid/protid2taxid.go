// 10 Oct 2026

// Package protid2taxid fills in the tax_id column of a describe table
// using NCBI's prot.accession2taxid file. That file has the columns
//
//	accession accession.version taxid gi
//
// and is huge, so we stream it and only keep rows for proteins we
// were asked about.
package protid2taxid

import (
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/coxtax/pkg/config"
	"github.com/andrew-torda/coxtax/pkg/join"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
	"github.com/andrew-torda/coxtax/pkg/tsv"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

type CmdFlag struct {
	Config     string // config file
	Prot2Taxid string // prot.accession2taxid, required
	OutFile    string // stdout if empty
}

const header = "#protein_id\ttax_id\torganism\n"

// ReadDescribe reads protein_id, tax_id, organism. Anything past the
// third column is ignored and missing columns get the placeholder.
func ReadDescribe(rdr io.Reader, placeholder string) (*join.Table, error) {
	return join.LoadTable(rdr, &join.LoadOpts{
		Options: tsv.Options{SkipComments: true},
		Width:   2,
		Pad:     placeholder,
	})
}

// ReadTaxids reads the accession to taxid file, keeping rows for the
// proteins in desc. Versioned accessions are tried first. Values are
// one column, the taxid.
func ReadTaxids(rdr io.Reader, desc *join.Table) (*join.Table, error) {
	key := func(r tsv.Row) (string, bool) {
		if len(r.Fields) < 3 {
			return "", false
		}
		if desc.Has(r.Fields[1]) {
			return r.Fields[1], true
		}
		if desc.Has(r.Fields[0]) {
			return r.Fields[0], true
		}
		return "", false
	}
	vals := func(r tsv.Row) []string { return []string{r.Fields[2]} }
	return join.LoadTable(rdr, &join.LoadOpts{
		Options: tsv.Options{SkipComments: true},
		Key:     key,
		Vals:    vals,
	})
}

// Write puts out the describe table with taxids from taxids where
// they are known. Otherwise the old value stays.
func Write(w io.Writer, desc, taxids *join.Table) (nFound int, err error) {
	if _, err = io.WriteString(w, header); err != nil {
		return 0, err
	}
	for _, j := range join.LeftJoin(desc, taxids) {
		if j.Matched {
			nFound++
		}
		taxid := j.RightCol(0, j.Left[0])
		if _, err = fmt.Fprintf(w, "%s\t%s\t%s\n", j.Key, taxid, j.Left[1]); err != nil {
			return nFound, err
		}
	}
	return nFound, nil
}

// loadFile opens fname and hands it to load.
func loadFile(fname string, load func(io.Reader) (*join.Table, error)) (*join.Table, error) {
	fp, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	t, err := load(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return t, nil
}

// Mymain reads the describe table from infile, which may be stdin.
func Mymain(flags *CmdFlag, infile string) (err error) {
	if flags.Prot2Taxid == "" {
		return errors.New("no accession to taxid file given")
	}
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	desc, err := loadFile(infile, func(r io.Reader) (*join.Table, error) {
		return ReadDescribe(r, cfg.Placeholder)
	})
	if err != nil {
		return err
	}
	taxids, err := loadFile(flags.Prot2Taxid, func(r io.Reader) (*join.Table, error) {
		return ReadTaxids(r, desc)
	})
	if err != nil {
		return err
	}
	out, err := zwrap.Create(flags.OutFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()
	n, err := Write(out, desc, taxids)
	if err != nil {
		return err
	}
	Info("taxids found for %d of %d proteins", n, desc.Len())
	if n < desc.Len() {
		Warn("%d proteins have no taxid in %s", desc.Len()-n, flags.Prot2Taxid)
	}
	return nil
}
