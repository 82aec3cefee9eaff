package randseq_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/coxtax/pkg/randseq"
)

func TestWriteCDS(t *testing.T) {
	var fa, pr strings.Builder
	args := randseq.CDSArgs{Iseed: 1, Nseq: 50, Len: 30, FracKnown: 1}
	if err := randseq.WriteCDS(&args, &fa, &pr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(fa.String(), "\n"), "\n")
	if len(lines) != 2*args.Nseq {
		t.Fatalf("got %d lines, wanted %d", len(lines), 2*args.Nseq)
	}
	if !strings.Contains(lines[0], "[protein_id="+randseq.ProteinID(1)+"]") {
		t.Error("first comment line", lines[0])
	}
	if s := lines[1]; len(s) != args.Len || strings.Trim(s, "acgt") != "" {
		t.Error("bad sequence", s)
	}
	if n := strings.Count(pr.String(), "GI:"); n != args.Nseq {
		t.Errorf("protein summary has %d entries, wanted %d", n, args.Nseq)
	}
}

func TestSeed(t *testing.T) {
	var a, b strings.Builder
	args := randseq.CDSArgs{Iseed: 7, Nseq: 5, Len: 20, FracKnown: 0.5}
	if err := randseq.WriteCDS(&args, &a, nil); err != nil {
		t.Fatal(err)
	}
	if err := randseq.WriteCDS(&args, &b, nil); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed, different sequences")
	}
}
