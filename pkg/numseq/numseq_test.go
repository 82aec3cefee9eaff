package numseq_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/andrew-torda/coxtax/pkg/brokenio"
	"github.com/andrew-torda/coxtax/pkg/numseq"
	"github.com/andrew-torda/coxtax/pkg/randseq"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

var smalltestArg = randseq.CDSArgs{
	Iseed: 2,
	Nseq:  1000,
	Len:   300,
}

// makeTestData writes random sequences to fname, compressed if the
// name ends in .gz.
func makeTestData(fname string) error {
	fo, err := zwrap.Create(fname)
	if err != nil {
		return err
	}
	if err := randseq.WriteCDS(&smalltestArg, fo, nil); err != nil {
		fo.Close()
		return err
	}
	return fo.Close()
}

func TestCount(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.fa", "squashed.fa.gz"} {
		fname := filepath.Join(dir, name)
		if err := makeTestData(fname); err != nil {
			t.Fatal(err)
		}
		if i, err := numseq.Count(fname); err != nil {
			t.Fatal(err)
		} else if i != smalltestArg.Nseq {
			t.Fatal(name, "expected", smalltestArg.Nseq, "got", i)
		}
	}
}

func TestByReading(t *testing.T) {
	s := ">a\nacgt>\n>b\n\n>c\n"
	if i, err := numseq.ByReading(iotest.OneByteReader(strings.NewReader(s))); err != nil || i != 3 {
		t.Error("one byte reads gave", i, err)
	}
	if i, _ := numseq.ByReading(strings.NewReader(s)); i != 3 {
		t.Error("got", i)
	}
	if i, _ := numseq.ByReading(strings.NewReader("")); i != 0 {
		t.Error("empty input gave", i)
	}
}

func TestBroken(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(">a\nacgt\n>b\nacgt\n")))
	rdr.SetFailAfter(5)
	if _, err := numseq.ByReading(rdr); !errors.Is(err, brokenio.ErrBroken) {
		t.Error("wanted ErrBroken, got", err)
	}
}

func setupbmark(b *testing.B) string {
	b.StopTimer()
	fname := filepath.Join(b.TempDir(), "bmark.fa")
	if err := makeTestData(fname); err != nil {
		b.Fatal(err)
	}
	b.StartTimer()
	return fname
}

func BenchmarkCount(b *testing.B) {
	fname := setupbmark(b)
	for i := 0; i < b.N; i++ {
		if n, _ := numseq.Count(fname); n != smalltestArg.Nseq {
			b.Fatal("Expected", smalltestArg.Nseq, "got", n)
		}
	}
}

func BenchmarkByReading(b *testing.B) {
	fname := setupbmark(b)
	for i := 0; i < b.N; i++ {
		fp, err := os.Open(fname)
		if err != nil {
			b.Fatal(err)
		}
		n, _ := numseq.ByReading(fp)
		fp.Close()
		if n != smalltestArg.Nseq {
			b.Fatal("Expected", smalltestArg.Nseq, "got", n)
		}
	}
}
