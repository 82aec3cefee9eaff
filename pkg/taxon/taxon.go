// 4 Oct 2026

// Package taxon deals with lineage strings like
//
//	k__Eukaryota|p__Arthropoda|c__Insecta|g__Apis|s__Apis mellifera
//
// and puts them on the fixed ladder of seven ranks, kingdom to species,
// which is what Krona wants.
package taxon

import (
	"errors"
	"fmt"
	"strings"
)

// Ranks is the ladder, from the top.
var Ranks = [...]string{"k", "p", "c", "o", "f", "g", "s"}

const (
	rankSep  = "|"
	valSep   = "__"
	unclass  = "unclassified"
	kingdom  = "k"
	species  = "s"
	versnSep = "."
)

// ErrBadRank is returned for a part of a lineage with no "__".
var ErrBadRank = errors.New("not a rank__value pair")

// Lineage is the set of ranks found in a lineage string, in the
// order they first appeared.
type Lineage struct {
	order []string
	vals  map[string]string
}

// Split breaks a lineage into ranks.
// A second kingdom is ignored. Anything after a "." in a species name
// is dropped (it is usually a version or strain suffix). If some other
// rank turns up twice, the later value wins, but the rank keeps its
// first position.
func Split(tax string) (*Lineage, error) {
	l := &Lineage{vals: make(map[string]string)}
	for _, part := range strings.Split(tax, rankSep) {
		rank, val, ok := strings.Cut(part, valSep)
		if !ok {
			return nil, fmt.Errorf("%w: \"%s\" in \"%s\"", ErrBadRank, part, tax)
		}
		_, seen := l.vals[rank]
		if rank == kingdom && seen {
			continue
		}
		if rank == species {
			val, _, _ = strings.Cut(val, versnSep)
		}
		if !seen {
			l.order = append(l.order, rank)
		}
		l.vals[rank] = val
	}
	return l, nil
}

// Has says if a rank is present.
func (l *Lineage) Has(rank string) bool { _, ok := l.vals[rank]; return ok }

// Get returns the value for a rank.
func (l *Lineage) Get(rank string) (string, bool) { v, ok := l.vals[rank]; return v, ok }

// Last returns the rank that was added last. It is where the ladder
// stops.
func (l *Lineage) Last() string {
	if len(l.order) == 0 {
		return ""
	}
	return l.order[len(l.order)-1]
}

// Ladder returns one "rank__value" per rank, from kingdom downwards.
// Missing ranks become "rank__unclassified". The ladder stops at the
// last rank present in the lineage, so a lineage that ends at the
// genus gives six entries. If the lineage ends with something that is
// not on the ladder (a strain, say), all seven are returned.
func (l *Lineage) Ladder() []string {
	last := l.Last()
	r := make([]string, 0, len(Ranks))
	for _, rank := range Ranks {
		if val, ok := l.vals[rank]; ok {
			r = append(r, rank+valSep+val)
			if rank == last {
				break
			}
		} else {
			r = append(r, rank+valSep+unclass)
		}
	}
	return r
}

// Ladder is Split followed by Lineage.Ladder.
func Ladder(tax string) ([]string, error) {
	l, err := Split(tax)
	if err != nil {
		return nil, err
	}
	return l.Ladder(), nil
}
