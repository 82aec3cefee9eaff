package gbk_test

import (
	"errors"
	"testing"

	"github.com/TimothyStiles/poly/io/genbank"

	"github.com/andrew-torda/coxtax/pkg/gbk"
)

const seq60 = "atgtttattaatgcccaaatttggccagccacgttattttaaagggtttcccccaaaatt"

// rng is a..b, counting from one, the way poly stores it.
func rng(a, b int) genbank.Location {
	return genbank.Location{Start: a - 1, End: b}
}

func comp(l genbank.Location) genbank.Location {
	l.Complement = true
	return genbank.Location{SubLocations: []genbank.Location{l}}
}

func join(ls ...genbank.Location) genbank.Location {
	return genbank.Location{Join: true, SubLocations: ls}
}

var extractTests = []struct {
	name string
	loc  genbank.Location
	want string
}{
	{"1..12", rng(1, 12), "atgtttattaat"},
	{"5", genbank.Location{Start: 5, End: 6, GbkLocationString: "5"}, "t"},
	{"complement(13..24)", comp(rng(13, 24)), "ccaaatttgggc"},
	{"join(25..27,31..36)", join(rng(25, 27), rng(31, 36)), "ccaacgtta"},
	{"complement(join(1..3,10..12))", comp(join(rng(1, 3), rng(10, 12))), "attcat"},
	{"join(complement(1..3),complement(10..12))", join(comp(rng(1, 3)), comp(rng(10, 12))), "catatt"},
	{"join(complement(10..12),complement(1..3))", join(comp(rng(10, 12)), comp(rng(1, 3))), "attcat"},
	{"join(58..60,1..3)", join(rng(58, 60), rng(1, 3)), "attatg"},
}

func TestExtract(t *testing.T) {
	for _, tt := range extractTests {
		loc, err := gbk.NewLocation(tt.loc)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		got, err := loc.Extract([]byte(seq60))
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%s got %s wanted %s", tt.name, got, tt.want)
		}
		if loc.Len() != len(tt.want) {
			t.Errorf("%s Len() %d wanted %d", tt.name, loc.Len(), len(tt.want))
		}
	}
}

func TestBadLocations(t *testing.T) {
	remote := rng(1, 10)
	remote.GbkLocationString = "NC_000001.1:1..10"
	inner := rng(5, 9)
	inner.GbkLocationString = "AB123.1:5..9"
	for _, l := range []genbank.Location{
		{}, remote, join(rng(1, 3), inner), rng(12, 3), {Join: true},
	} {
		if _, err := gbk.NewLocation(l); !errors.Is(err, gbk.ErrBadLocation) {
			t.Errorf("NewLocation(%+v) gave %v", l, err)
		}
	}
}

func TestOffEnd(t *testing.T) {
	loc, err := gbk.NewLocation(rng(50, 70))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loc.Extract([]byte(seq60)); !errors.Is(err, gbk.ErrBadLocation) {
		t.Fatal("wanted ErrBadLocation, got", err)
	}
}

func TestRevComp(t *testing.T) {
	got, err := gbk.RevComp([]byte("aacgtNRy"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "rYNacgtt" {
		t.Errorf("got %s", got)
	}
	if _, err := gbk.RevComp([]byte("acgj")); !errors.Is(err, gbk.ErrBadBase) {
		t.Error("wanted ErrBadBase, got", err)
	}
}
