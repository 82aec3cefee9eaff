// 8 Oct 2026

// Package fastaio is a thin layer over biogo's fasta reader and writer,
// so the tools agree on line widths and alphabets.
package fastaio

import (
	"io"
	"math"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Alphabets we read with. Redundant and gapped, since NCBI sequences
// have all sorts of things in them.
var (
	DNA     = alphabet.DNAredundant
	Protein = alphabet.Protein
)

// NewWriter returns a fasta writer. A width of zero or less puts
// each sequence on one line.
func NewWriter(w io.Writer, width int) *fasta.Writer {
	if width <= 0 {
		width = math.MaxInt32
	}
	return fasta.NewWriter(w, width)
}

// NewSeq builds a sequence from bytes. desc goes after the first
// space on the comment line and can be empty.
func NewSeq(id, desc string, b []byte, alpha alphabet.Alphabet) *linear.Seq {
	s := linear.NewSeq(id, alphabet.BytesToLetters(b), alpha)
	s.Desc = desc
	return s
}

// Write is a shortcut for writing one record.
func Write(w *fasta.Writer, id, desc string, b []byte, alpha alphabet.Alphabet) error {
	_, err := w.Write(NewSeq(id, desc, b, alpha))
	return err
}

// NewScanner reads fasta. Each sequence has the name up to the first
// white space and the rest of the comment line as its description.
func NewScanner(rdr io.Reader, alpha alphabet.Alphabet) *seqio.Scanner {
	return seqio.NewScanner(fasta.NewReader(rdr, linear.NewSeq("", nil, alpha)))
}

// Bytes gives the residues of a sequence back as bytes.
func Bytes(s *linear.Seq) []byte {
	b := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		b[i] = byte(l)
	}
	return b
}
