// Test Zwrap
package zwrap_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/coxtax/pkg/brokenio"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

// both of these are "andrewsays", but the first is compressed. Write them to a file
// and check that the file opener does the right thing.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

// writeToTmp writes a byte slice to a temporary file and returns
// the name.
func writeToTmp(t *testing.T, data []byte) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "del_me_testing")
	if err := os.WriteFile(fname, data, 0644); err != nil {
		t.Fatal("fail writing to tempfile", err)
	}
	return fname
}

func TestWrap(t *testing.T) {
	for _, x := range gztests {
		fname := writeToTmp(t, x.data)
		fp, err := os.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		tmpr, err := zwrap.Wrap(fp)
		if err != nil {
			fp.Close()
			if x.gzipped {
				t.Error("Fail on correctly gzipped file")
			}
			continue // It is not gzipped, so move on to next
		}
		if !x.gzipped {
			t.Error("Fail on not compressed file")
		}
		b, err := io.ReadAll(tmpr)
		if err != nil {
			t.Error(err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		if err := tmpr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// Calling Open should not fail since it looks to see if the file
// is compressed or not.
func TestOpen(t *testing.T) {
	for _, x := range gztests {
		fname := writeToTmp(t, x.data)
		tmpr, err := zwrap.Open(fname)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v: %v", x.gzipped, err)
		}
		if tmpr.Compressed() != x.gzipped {
			t.Errorf("Compressed() said %v, wanted %v", tmpr.Compressed(), x.gzipped)
		}
		b, err := io.ReadAll(tmpr)
		if err != nil {
			t.Error(err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		if err := tmpr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

func TestOpenEmpty(t *testing.T) {
	fname := writeToTmp(t, nil)
	fc, err := zwrap.Open(fname)
	if err != nil {
		t.Fatal("empty file should open", err)
	}
	defer fc.Close()
	if fc.Mapped() {
		t.Error("empty file should not be mapped")
	}
	if b, err := io.ReadAll(fc); err != nil || len(b) != 0 {
		t.Errorf("empty file gave %d bytes, err %v", len(b), err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := zwrap.Open(filepath.Join(t.TempDir(), "not_there")); err == nil {
		t.Fatal("opening a missing file should fail")
	}
}

// TestRoundTrip writes a compressed file with Create and reads it
// back with Open.
func TestRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.tsv.gz")
	want := strings.Repeat("k__Eukaryota|p__Arthropoda\t42\n", 1000)
	fo, err := zwrap.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(fo, want); err != nil {
		t.Fatal(err)
	}
	if err := fo.Close(); err != nil {
		t.Fatal(err)
	}
	fc, err := zwrap.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fc.Close()
	if !fc.Compressed() {
		t.Error("output ending in .gz was not compressed")
	}
	got, err := io.ReadAll(fc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Fatalf("round trip lost data: got %d bytes wanted %d", len(got), len(want))
	}
}

// TestBrokenSource checks a read error comes back to the caller
// and is not mistaken for the end of the file.
func TestBrokenSource(t *testing.T) {
	src := brokenio.NewReader(io.NopCloser(strings.NewReader(strings.Repeat("acgt\n", 1000))))
	src.SetFailAfter(100)
	fc, err := zwrap.WrapMaybe(src)
	if err != nil {
		t.Fatal("peeking at the first bytes should work", err)
	}
	if _, err := io.ReadAll(fc); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("wanted ErrBroken, got", err)
	}
}

func TestToWriter(t *testing.T) {
	var sb strings.Builder
	fo := zwrap.ToWriter(&sb)
	io.WriteString(fo, "buffered")
	if sb.Len() != 0 {
		t.Error("nothing should arrive before Close")
	}
	if err := fo.Close(); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "buffered" {
		t.Fatal("got", sb.String())
	}
}
