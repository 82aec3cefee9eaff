// 11 Oct 2026

// Package desc2tax puts a lineage on each protein in a describe
// table. Lineages come from a taxonomy table of
//
//	taxid	k__Eukaryota|p__Arthropoda|...|s__Apis mellifera
//
// If a protein's taxid is not in the table, we look for a lineage
// which mentions its species (or genus, if the row has a fourth or
// later column) and borrow that. Failing that, it gets the default kingdom.
package desc2tax

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/coxtax/pkg/config"
	"github.com/andrew-torda/coxtax/pkg/join"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
	"github.com/andrew-torda/coxtax/pkg/tsv"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

type CmdFlag struct {
	Config   string // config file
	Taxonomy string // taxid to lineage, required
	OutFile  string // stdout if empty
}

const header = "#protein_id\ttax\ttax_id\torganism\n"

// Column positions in the describe values. A genus is only there
// in four column rows.
const (
	colTaxid = iota
	colOrganism
	colGenus
)

// ReadDescribe reads protein_id, tax_id, organism and maybe genus.
// The genus is the last column of a row with four or more. Short rows
// are padded with the placeholder, but never given a genus.
func ReadDescribe(rdr io.Reader, placeholder string) (*join.Table, error) {
	vals := func(r tsv.Row) []string {
		v := append([]string(nil), r.Fields[1:]...)
		if len(v) > 3 {
			v = append(v[:2], v[len(v)-1])
		}
		for len(v) < 2 {
			v = append(v, placeholder)
		}
		return v
	}
	return join.LoadTable(rdr, &join.LoadOpts{
		Options: tsv.Options{SkipComments: true},
		Vals:    vals,
	})
}

// ReadLineages reads the taxonomy table, keeping only taxids in want.
// Anything from the first full stop on is dropped from a lineage.
func ReadLineages(rdr io.Reader, want map[string]bool) (*join.Table, error) {
	key := func(r tsv.Row) (string, bool) {
		if len(r.Fields) < 2 || !want[r.Fields[0]] {
			return "", false
		}
		return r.Fields[0], true
	}
	vals := func(r tsv.Row) []string {
		lin, _, _ := strings.Cut(r.Fields[1], ".")
		return []string{lin}
	}
	return join.LoadTable(rdr, &join.LoadOpts{
		Options: tsv.Options{SkipComments: true},
		Key:     key,
		Vals:    vals,
	})
}

// Taxids returns the set of taxids in a describe table.
func Taxids(desc *join.Table) map[string]bool {
	m := make(map[string]bool)
	for _, k := range desc.Keys() {
		m[desc.Get(k, colTaxid, "")] = true
	}
	return m
}

// Resolver decides the lineage for each protein.
type Resolver struct {
	desc     *join.Table
	lineages *join.Table
	fallback map[string]string // s__species or g__genus to lineage
	cfg      *config.Config
}

// searchKey is what we look for in lineages for one describe row.
// It is the genus if there is one, otherwise the species.
func (r *Resolver) searchKey(vals []string) string {
	if len(vals) > colGenus {
		return "g__" + vals[colGenus]
	}
	if org := vals[colOrganism]; org != r.cfg.Placeholder {
		return "s__" + org
	}
	return ""
}

// NewResolver builds the fallback index. For each lineage, the first
// species key it contains gets the whole lineage and the first genus
// key gets the lineage cut before the species. Keys are tried in the
// order proteins came in. Later lineages overwrite earlier ones.
func NewResolver(cfg *config.Config, desc, lineages *join.Table) *Resolver {
	r := &Resolver{desc: desc, lineages: lineages, cfg: cfg, fallback: make(map[string]string)}
	var species, genera []string
	seen := make(map[string]bool)
	for _, k := range desc.Keys() {
		v, _ := desc.Lookup(k)
		key := r.searchKey(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if strings.HasPrefix(key, "g__") {
			genera = append(genera, key)
		} else {
			species = append(species, key)
		}
	}
	for _, t := range lineages.Keys() {
		lin := lineages.Get(t, 0, "")
		for _, s := range species {
			if strings.Contains(lin, s) {
				r.fallback[s] = lin
				break
			}
		}
		for _, g := range genera {
			if strings.Contains(lin, g) {
				upToSpecies, _, _ := strings.Cut(lin, "|s__")
				r.fallback[g] = upToSpecies
				break
			}
		}
	}
	return r
}

// Tax returns the lineage for one protein.
func (r *Resolver) Tax(id string) string {
	vals, ok := r.desc.Lookup(id)
	if !ok {
		return r.cfg.Kingdom
	}
	taxid, org := vals[colTaxid], vals[colOrganism]
	tax := r.cfg.Kingdom
	if lin, ok := r.lineages.Lookup(taxid); ok {
		tax = lin[0]
	} else if lin, ok := r.fallback[r.searchKey(vals)]; ok {
		tax = lin
	}
	if len(vals) > colGenus && !strings.Contains(tax, "g__") && vals[colGenus] != r.cfg.Placeholder {
		tax += "|g__" + vals[colGenus]
	}
	if !strings.Contains(tax, "s__") && org != r.cfg.Placeholder {
		tax += "|s__" + org
	}
	return tax
}

// Write puts out one row per protein, in input order.
func (r *Resolver) Write(w io.Writer) (nKingdom int, err error) {
	if _, err = io.WriteString(w, header); err != nil {
		return 0, err
	}
	for _, id := range r.desc.Keys() {
		tax := r.Tax(id)
		if strings.HasPrefix(tax, r.cfg.Kingdom) && !strings.Contains(tax, "|") {
			nKingdom++
		}
		taxid := r.desc.Get(id, colTaxid, r.cfg.Placeholder)
		org := r.desc.Get(id, colOrganism, r.cfg.Placeholder)
		if _, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, tax, taxid, org); err != nil {
			return nKingdom, err
		}
	}
	return nKingdom, nil
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
	if flags.Taxonomy == "" {
		return errors.New("no taxonomy file given")
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
	lineages, err := loadFile(flags.Taxonomy, func(r io.Reader) (*join.Table, error) {
		return ReadLineages(r, Taxids(desc))
	})
	if err != nil {
		return err
	}
	Info("%d proteins, %d lineages found by taxid", desc.Len(), lineages.Len())
	out, err := zwrap.Create(flags.OutFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()
	n, err := NewResolver(cfg, desc, lineages).Write(out)
	if err != nil {
		return err
	}
	if n > 0 {
		Warn("%d proteins have nothing better than %s", n, cfg.Kingdom)
	}
	return nil
}
