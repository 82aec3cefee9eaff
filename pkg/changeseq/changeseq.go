// 9 Oct 2026

// Package changeseq rewrites the comment lines of CDS fasta files from
// NCBI, the ones that look like
//
//	>lcl|MN123456.1_cds_QAB12345.1_1 [gene=COX1] [protein_id=QAB12345.1] ...
//
// into
//
//	>QAB12345.1|COX1 [organism=Apis mellifera]
//
// The organism comes from a protein summary file. A table of protein
// id and organism is written as we go.
package changeseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/seq/linear"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/andrew-torda/coxtax/pkg/config"
	"github.com/andrew-torda/coxtax/pkg/fastaio"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

type CmdFlag struct {
	Config   string // config file
	PResult  string // protein summary file, required
	DescFile string // describe table, overrides the config
	OutFile  string // rewritten fasta, stdout if empty
}

var upper = cases.Upper(language.Und)

// ReadProteinResult reads the text summary NCBI give for a protein
// search. Each entry has a line with the organism in square brackets
// and, below it, a line starting with the protein id and containing
// "GI:". We return protein id to organism.
func ReadProteinResult(rdr io.Reader) (map[string]string, error) {
	r := make(map[string]string)
	var org string
	scnr := bufio.NewScanner(rdr)
	for scnr.Scan() {
		line := strings.TrimSpace(scnr.Text())
		if line == "" {
			continue
		}
		if _, after, ok := strings.Cut(line, "["); ok {
			org = strings.Trim(after, "]")
		}
		if strings.Contains(line, "GI:") {
			r[strings.Fields(line)[0]] = org
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Attr is one [tag=value] from a comment line.
type Attr struct {
	Tag, Value string
}

// Attrs is the list of attributes, in the order they came.
type Attrs []Attr

// Get returns the value for tag.
func (a Attrs) Get(tag string) (string, bool) {
	for _, t := range a {
		if t.Tag == tag {
			return t.Value, true
		}
	}
	return "", false
}

// ParseAttrs splits "[a=b] [c=d]". A piece without an = is returned
// in bad. A tag that comes twice keeps its last value.
func ParseAttrs(s string) (attrs Attrs, bad []string) {
	s = strings.TrimRight(strings.TrimLeft(strings.TrimSpace(s), "["), "]")
	for _, part := range strings.Split(s, "] [") {
		if part == "" {
			continue
		}
		tag, val, ok := strings.Cut(part, "=")
		if !ok {
			bad = append(bad, part)
			continue
		}
		replaced := false
		for i := range attrs {
			if attrs[i].Tag == tag {
				attrs[i].Value, replaced = val, true
			}
		}
		if !replaced {
			attrs = append(attrs, Attr{Tag: tag, Value: val})
		}
	}
	return attrs, bad
}

// geneName is gene, or protein if there is no gene, in upper case.
func geneName(a Attrs) string {
	if g, ok := a.Get("gene"); ok {
		return upper.String(g)
	}
	g, _ := a.Get("protein")
	return upper.String(g)
}

// Counts says what happened to the records.
type Counts struct {
	Records, Matched, Skipped int
}

// Changer holds the protein to organism mapping.
type Changer struct {
	orgs map[string]string
	cfg  *config.Config
}

// NewChanger uses the mapping orgs from ReadProteinResult.
func NewChanger(cfg *config.Config, orgs map[string]string) *Changer {
	return &Changer{cfg: cfg, orgs: orgs}
}

// Rewrite reads fasta from rdr and writes it with new comment lines
// to out. A line per record goes to describe, but no header.
func (c *Changer) Rewrite(rdr io.Reader, out, describe io.Writer) (Counts, error) {
	var n Counts
	w := fastaio.NewWriter(out, c.cfg.Width)
	sc := fastaio.NewScanner(rdr, fastaio.DNA)
	ph := c.cfg.Placeholder
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		n.Records++
		attrs, bad := ParseAttrs(s.Desc)
		for _, b := range bad {
			Warn("%s: attribute \"%s\" has no tag", s.ID, b)
		}
		pid, ok := attrs.Get("protein_id")
		if !ok {
			Warn("%s: no protein_id, skipping", s.ID)
			n.Skipped++
			continue
		}
		id := pid + "|" + geneName(attrs)
		desc, org := "", ph
		if o, ok := c.orgs[pid]; ok {
			desc, org = "[organism="+o+"]", o
			n.Matched++
		}
		if err := fastaio.Write(w, id, desc, fastaio.Bytes(s), fastaio.DNA); err != nil {
			return n, err
		}
		if _, err := fmt.Fprintf(describe, "%s\t%s\t%s\n", pid, ph, org); err != nil {
			return n, err
		}
	}
	return n, sc.Error()
}

// DescribeHeader is the first line of the describe table.
const DescribeHeader = "#protein_id\ttax_id\torganism\n"

func readPResult(fname string) (map[string]string, error) {
	fp, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	orgs, err := ReadProteinResult(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return orgs, nil
}

// Mymain rewrites infile, which may be stdin.
func Mymain(flags *CmdFlag, infile string) (err error) {
	if flags.PResult == "" {
		return errors.New("no protein summary file given")
	}
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	if flags.DescFile != "" {
		cfg.DescFile = flags.DescFile
	}
	orgs, err := readPResult(flags.PResult)
	if err != nil {
		return err
	}
	Info("%d proteins with organisms in %s", len(orgs), flags.PResult)

	fin, err := zwrap.Open(infile)
	if err != nil {
		return err
	}
	defer fin.Close()
	out, err := zwrap.Create(flags.OutFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()
	desc, err := zwrap.Create(cfg.DescFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, desc.Close()) }()
	if _, err := io.WriteString(desc, DescribeHeader); err != nil {
		return err
	}

	n, err := NewChanger(cfg, orgs).Rewrite(fin, out, desc)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	Info("%d records, %d with organism, %d skipped", n.Records, n.Matched, n.Skipped)
	return nil
}
