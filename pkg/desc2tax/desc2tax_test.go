package desc2tax_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/coxtax/pkg/config"
	"github.com/andrew-torda/coxtax/pkg/desc2tax"
	"github.com/andrew-torda/coxtax/pkg/seq/common"
)

const describe = `#protein_id	tax_id	organism
P1	7460	Apis mellifera
P2	-	Bombus terrestris
P3	30195	Bombus terrestris
P4	999	Daphnia pulex	Daphnia
P5	35525	Daphnia magna
P6	-	Unknown thing
P7	-	-
P8	-	Xus yus	Xus
P9	50557	Insecta sp.
P10	-	Daphnia sp.	extra	Daphnia
`

const taxonomy = `7460	k__Eukaryota|p__Arthropoda|c__Insecta|o__Hymenoptera|f__Apidae|g__Apis|s__Apis mellifera
9606	k__Eukaryota|p__Chordata|c__Mammalia|o__Primates|f__Hominidae|g__Homo|s__Homo sapiens
30195	k__Eukaryota|p__Arthropoda|c__Insecta|o__Hymenoptera|f__Apidae|g__Bombus|s__Bombus terrestris
35525	k__Eukaryota|p__Arthropoda|c__Branchiopoda|o__Diplostraca|f__Daphniidae|g__Daphnia|s__Daphnia magna.1
50557	k__Eukaryota|p__Arthropoda|c__Insecta
`

const (
	apis    = "k__Eukaryota|p__Arthropoda|c__Insecta|o__Hymenoptera|f__Apidae|g__Apis|s__Apis mellifera"
	bombus  = "k__Eukaryota|p__Arthropoda|c__Insecta|o__Hymenoptera|f__Apidae|g__Bombus|s__Bombus terrestris"
	daphnia = "k__Eukaryota|p__Arthropoda|c__Branchiopoda|o__Diplostraca|f__Daphniidae|g__Daphnia"
)

var want = "#protein_id\ttax\ttax_id\torganism\n" +
	"P1\t" + apis + "\t7460\tApis mellifera\n" +
	"P2\t" + bombus + "\t-\tBombus terrestris\n" +
	"P3\t" + bombus + "\t30195\tBombus terrestris\n" +
	"P4\t" + daphnia + "|s__Daphnia pulex\t999\tDaphnia pulex\n" +
	"P5\t" + daphnia + "|s__Daphnia magna\t35525\tDaphnia magna\n" +
	"P6\tk__Eukaryota|s__Unknown thing\t-\tUnknown thing\n" +
	"P7\tk__Eukaryota\t-\t-\n" +
	"P8\tk__Eukaryota|g__Xus|s__Xus yus\t-\tXus yus\n" +
	"P9\tk__Eukaryota|p__Arthropoda|c__Insecta|s__Insecta sp.\t50557\tInsecta sp.\n" +
	"P10\t" + daphnia + "|s__Daphnia sp.\t-\tDaphnia sp.\n"

func init() {
	common.SetLogOutput(io.Discard)
}

func resolver(t *testing.T) *desc2tax.Resolver {
	t.Helper()
	desc, err := desc2tax.ReadDescribe(strings.NewReader(describe), "-")
	if err != nil {
		t.Fatal(err)
	}
	lineages, err := desc2tax.ReadLineages(strings.NewReader(taxonomy), desc2tax.Taxids(desc))
	if err != nil {
		t.Fatal(err)
	}
	if lineages.Len() != 4 {
		t.Errorf("kept %d lineages, wanted 4", lineages.Len())
	}
	return desc2tax.NewResolver(config.Default(), desc, lineages)
}

func TestTax(t *testing.T) {
	r := resolver(t)
	for id, w := range map[string]string{
		"P1":  apis,
		"P2":  bombus,
		"P4":  daphnia + "|s__Daphnia pulex",
		"P7":  "k__Eukaryota",
		"P10": daphnia + "|s__Daphnia sp.",
		"P99": "k__Eukaryota",
	} {
		if got := r.Tax(id); got != w {
			t.Errorf("%s got %s wanted %s", id, got, w)
		}
	}
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	n, err := resolver(t).Write(&b)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("%d rows with only a kingdom, wanted 1", n)
	}
	if b.String() != want {
		t.Errorf("got\n%s", b.String())
	}
}

func TestKingdom(t *testing.T) {
	cfg := config.Default()
	cfg.Kingdom = "k__Metazoa"
	desc, err := desc2tax.ReadDescribe(strings.NewReader("P1\t-\tFoo bar\n"), "-")
	if err != nil {
		t.Fatal(err)
	}
	lineages, err := desc2tax.ReadLineages(strings.NewReader(taxonomy), desc2tax.Taxids(desc))
	if err != nil {
		t.Fatal(err)
	}
	if got := desc2tax.NewResolver(cfg, desc, lineages).Tax("P1"); got != "k__Metazoa|s__Foo bar" {
		t.Errorf("got %s", got)
	}
}

func TestMymain(t *testing.T) {
	common.SetQuiet(true)
	defer common.SetQuiet(false)
	dir := t.TempDir()
	flags := desc2tax.CmdFlag{
		Taxonomy: filepath.Join(dir, "kraken.taxonomy"),
		OutFile:  filepath.Join(dir, "cox1.taxonomy.tsv"),
	}
	in := filepath.Join(dir, "describe.tsv")
	if err := os.WriteFile(in, []byte(describe), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(flags.Taxonomy, []byte(taxonomy), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := desc2tax.Mymain(&flags, in); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(flags.OutFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != want {
		t.Errorf("got\n%s", b)
	}
}
