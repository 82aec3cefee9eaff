// 31 July 2020
// 9 Oct 2026 changed to write fake NCBI CDS files

// Package randseq writes random coding sequences with comment lines
// like the ones in NCBI's CDS fasta downloads, and optionally the
// protein summary that goes with them. It is for testing and timing.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

var (
	bases   = []byte{'a', 'c', 'g', 't'}
	genus   = []string{"Apis", "Bombus", "Daphnia", "Drosophila", "Homo", "Xenopus"}
	species = []string{"mellifera", "terrestris", "magna", "melanogaster", "sapiens", "laevis"}
)

// CDSArgs is the set of arguments for WriteCDS.
type CDSArgs struct {
	Iseed     int64   // random number seed
	Nseq      int     // number of sequences
	Len       int     // length of sequences
	FracKnown float64 // fraction of proteins put in the protein summary
}

// entry is one sequence and the names that go with it.
type entry struct {
	n        int
	pid      string
	organism string
	seq      []byte
}

func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = bases[rnd.Intn(len(bases))]
	}
	return ret
}

// ProteinID is the made up protein id for sequence n, counting from 1.
func ProteinID(n int) string { return fmt.Sprintf("QRS%05d.1", n) }

// writeseq writes entries as they arrive. Any error is kept and the
// rest of the channel drained.
func writeseq(eChan <-chan entry, fa io.Writer, errp *error, wg *sync.WaitGroup) {
	defer wg.Done()
	for e := range eChan {
		if *errp != nil {
			continue
		}
		_, *errp = fmt.Fprintf(fa, ">lcl|MT%06d.1_cds_%s_1 [gene=COX1] [protein=cytochrome c oxidase subunit I] [protein_id=%s] [location=1..%d] [gbkey=CDS]\n%s\n",
			e.n, e.pid, e.pid, len(e.seq), e.seq)
	}
}

// WriteCDS writes args.Nseq random sequences to fa. For about
// FracKnown of them, an entry goes to presult, which may be nil.
func WriteCDS(args *CDSArgs, fa, presult io.Writer) error {
	var wg sync.WaitGroup
	var wrtErr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	eChan := make(chan entry)
	wg.Add(1)
	go writeseq(eChan, fa, &wrtErr, &wg)
	var err error
	for i := 1; i <= args.Nseq; i++ {
		k := rnd.Intn(len(genus))
		e := entry{n: i, pid: ProteinID(i), organism: genus[k] + " " + species[k]}
		e.seq = getseq(args.Len, rnd)
		known := rnd.Float64() < args.FracKnown
		eChan <- e
		if presult == nil || !known || err != nil {
			continue
		}
		_, err = fmt.Fprintf(presult, "%d. cytochrome c oxidase subunit I (mitochondrion) [%s]\n%d aa protein\n%s GI:%d\n\n",
			i, e.organism, args.Len/3, e.pid, 1000000+i)
	}
	close(eChan)
	wg.Wait()
	if wrtErr != nil {
		return wrtErr
	}
	return err
}
