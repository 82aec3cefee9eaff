// 8 Oct 2026
// Pull COX1 out of GenBank files.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/coxtax/pkg/gb2cox1"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] genbank_file [genbank_file ...]")
	long := `Given no file names, read from stdin.
Nucleotide sequences go to stdout, unless -o is given.
Translations go to cox1.pep.fasta, unless -p is given.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags gb2cox1.CmdFlag
	var quiet, nocolor bool
	flag.BoolVar(&flags.ASCII, "a", false, "transliterate organism names to plain ascii")
	flag.StringVar(&flags.Config, "c", "", "config file, .yaml or .toml")
	flag.StringVar(&flags.Genes, "g", "", "extra gene names, comma separated, added to COX1,cox1,COI")
	flag.StringVar(&flags.OutFile, "o", "", "nucleotide output file, .gz for compressed")
	flag.StringVar(&flags.PepFile, "p", "", "translation output file (default from config, cox1.pep.fasta)")
	flag.BoolVar(&quiet, "q", false, "quiet, no information messages")
	flag.BoolVar(&nocolor, "nocolor", false, "no colours in messages")
	flag.Usage = usage
	flag.Parse()
	SetQuiet(quiet)
	if nocolor {
		NoColor()
	}

	if err := gb2cox1.Mymain(&flags, flag.Args()); err != nil {
		Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
