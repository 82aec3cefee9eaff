// 8 Oct 2026

// Package gb2cox1 pulls the coding sequence of a target gene (COX1 by
// default) out of GenBank files. Nucleotides go to one fasta file,
// translations to another.
package gb2cox1

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/rainycape/unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/andrew-torda/coxtax/pkg/config"
	"github.com/andrew-torda/coxtax/pkg/fastaio"
	"github.com/andrew-torda/coxtax/pkg/gbk"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

type CmdFlag struct {
	Config  string // config file name
	OutFile string // nucleotide output, stdout if empty
	PepFile string // translations, overrides the config
	Genes   string // extra gene names, comma separated
	ASCII   bool   // transliterate organism names
}

// Hit is one CDS we want.
type Hit struct {
	ID       string // coded_by up to the colon, else protein_id
	Gene     string // upper case
	Organism string
	Nuc      []byte
	Pep      string // empty if there was no translation
}

// Header is what goes on the comment line after the ">".
func (h *Hit) Header() (id, desc string) {
	return h.ID + "|" + h.Gene, "[" + h.Organism + "]"
}

var upper = cases.Upper(language.Und)

// geneID is the first of gene, gene_synonym, locus_tag.
func geneID(f *gbk.Feature) string {
	for _, q := range []string{"gene", "gene_synonym", "locus_tag"} {
		if v, ok := f.Qual(q); ok {
			return v
		}
	}
	return ""
}

// seqID comes from coded_by, which looks like NC_012345.1:100..200,
// else protein_id.
func seqID(f *gbk.Feature) string {
	if v, ok := f.Qual("coded_by"); ok {
		id, _, _ := strings.Cut(v, ":")
		return id
	}
	v, _ := f.Qual("protein_id")
	return v
}

// Extractor picks hits out of records.
type Extractor struct {
	cfg   *config.Config
	ascii bool
}

// NewExtractor uses the gene names from cfg. If ascii is set,
// organism names are transliterated.
func NewExtractor(cfg *config.Config, ascii bool) *Extractor {
	return &Extractor{cfg: cfg, ascii: ascii}
}

// Hits returns the CDS features of rec for our genes. A feature whose
// location we cannot use is warned about and left out.
func (e *Extractor) Hits(rec *gbk.Record) []Hit {
	org := rec.Organism
	if e.ascii {
		org = unidecode.Unidecode(org)
	}
	var hits []Hit
	for i := range rec.Features {
		f := &rec.Features[i]
		if f.Key != "CDS" {
			continue
		}
		gene := geneID(f)
		if !e.cfg.IsGene(gene) {
			continue
		}
		h := Hit{ID: seqID(f), Gene: upper.String(gene), Organism: org}
		loc, err := f.Location()
		if err == nil {
			h.Nuc, err = loc.Extract(rec.Seq)
		}
		if err != nil {
			Warn("%s %s: %v", rec.Locus, h.ID, err)
			continue
		}
		h.Pep, _ = f.Qual("translation")
		hits = append(hits, h)
	}
	return hits
}

// writer bundles the two output streams.
type writer struct {
	nuc, pep *fasta.Writer
}

func (w *writer) write(h *Hit) error {
	id, desc := h.Header()
	if err := fastaio.Write(w.nuc, id, desc, h.Nuc, fastaio.DNA); err != nil {
		return err
	}
	if h.Pep == "" {
		return nil
	}
	return fastaio.Write(w.pep, id, desc, []byte(h.Pep), fastaio.Protein)
}

// Counts is what we found in one input.
type Counts struct {
	Records, Hits, Peps int
}

// Extract reads GenBank records from rdr and writes hits. It stops
// at the first read or write error.
func (e *Extractor) Extract(rdr io.Reader, nuc, pep io.Writer) (Counts, error) {
	var c Counts
	w := writer{nuc: fastaio.NewWriter(nuc, e.cfg.Width), pep: fastaio.NewWriter(pep, e.cfg.Width)}
	r := gbk.NewReader(rdr)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return c, err
		}
		c.Records++
		hits := e.Hits(rec)
		for i := range hits {
			if err := w.write(&hits[i]); err != nil {
				return c, err
			}
			c.Hits++
			if hits[i].Pep != "" {
				c.Peps++
			}
		}
	}
}

// extractFile does one input file.
func (e *Extractor) extractFile(fname string, nuc, pep io.Writer) (Counts, error) {
	fp, err := zwrap.Open(fname)
	if err != nil {
		return Counts{}, err
	}
	c, err := e.Extract(fp, nuc, pep)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return c, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Mymain reads each of infiles in turn. No input files means stdin.
func Mymain(flags *CmdFlag, infiles []string) (err error) {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	if flags.Genes != "" {
		cfg.AddGenes(flags.Genes)
	}
	if flags.PepFile != "" {
		cfg.PepFile = flags.PepFile
	}
	if len(infiles) == 0 {
		infiles = []string{"-"}
	}
	nuc, err := zwrap.Create(flags.OutFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, nuc.Close()) }()
	pep, err := zwrap.Create(cfg.PepFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, pep.Close()) }()

	e := NewExtractor(cfg, flags.ASCII)
	var total Counts
	for _, fname := range infiles {
		c, err := e.extractFile(fname, nuc, pep)
		if err != nil {
			return err
		}
		Info("%s: %d records, %d %s genes, %d translations", fname, c.Records, c.Hits,
			strings.Join(cfg.GeneNames, "/"), c.Peps)
		total.Records += c.Records
		total.Hits += c.Hits
		total.Peps += c.Peps
	}
	if len(infiles) > 1 {
		Info("total: %d records, %d genes, %d translations", total.Records, total.Hits, total.Peps)
	}
	return nil
}
