package join_test

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/andrew-torda/coxtax/pkg/join"
	"github.com/andrew-torda/coxtax/pkg/tsv"
)

const desc = `#protein_id	tax_id	organism
YP_001.1	-	Apis mellifera
YP_002.1	-	Daphnia magna	Daphnia
YP_003.1
YP_001.1	7460	Apis mellifera
`

func TestLoadTable(t *testing.T) {
	opts := &join.LoadOpts{Width: 2, Pad: "-"}
	opts.SkipComments = true
	tbl, err := join.LoadTable(strings.NewReader(desc), opts)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("got %d keys, wanted 3", tbl.Len())
	}
	if k := tbl.Keys(); k[0] != "YP_001.1" || k[2] != "YP_003.1" {
		t.Errorf("key order wrong %v", k)
	}
	if got := tbl.Get("YP_001.1", 0, "?"); got != "7460" {
		t.Errorf("later row should win, got %s", got)
	}
	if v, _ := tbl.Lookup("YP_002.1"); len(v) != 2 {
		t.Errorf("values not cut to width: %v", v)
	}
	if got := tbl.Get("YP_003.1", 1, "?"); got != "-" {
		t.Errorf("values not padded, got %s", got)
	}
	if got := tbl.Get("nothere", 0, "?"); got != "?" {
		t.Errorf("missing key gave %s", got)
	}
}

func TestShortKey(t *testing.T) {
	_, err := join.LoadTable(strings.NewReader("a\tb\nc\n"), &join.LoadOpts{KeyCol: 1})
	if !errors.Is(err, tsv.ErrShortRow) {
		t.Fatal("wanted ErrShortRow, got", err)
	}
}

func TestKeyFunc(t *testing.T) {
	src := "accession\taccession.version\ttaxid\tgi\nYP_1\tYP_1.1\t7460\t1\nXP_9\tXP_9.2\t9606\t2\n"
	keep := func(r tsv.Row) (string, bool) {
		if len(r.Fields) < 3 || r.Fields[0] != "YP_1" {
			return "", false
		}
		return r.Fields[1], true
	}
	tbl, err := join.LoadTable(strings.NewReader(src), &join.LoadOpts{Key: keep})
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 1 || tbl.Get("YP_1.1", 2, "") != "7460" {
		t.Fatalf("key function not applied: %v", tbl.Keys())
	}
}

func ExampleLeftJoin() {
	left := join.NewTable()
	left.Set("YP_001", []string{"-", "Apis mellifera"})
	left.Set("YP_002", []string{"-", "Daphnia magna"})
	right := join.NewTable()
	right.Set("YP_002", []string{"35525"})
	right.Set("YP_777", []string{"1"})
	for _, j := range join.LeftJoin(left, right) {
		fmt.Println(j.Key, j.RightCol(0, j.Left[0]), j.Matched)
	}
	if len(join.LeftJoin(join.NewTable(), right)) != 0 {
		log.Fatal("empty left should give nothing")
	}
	// Output:
	// YP_001 - false
	// YP_002 35525 true
}
