// 10 Oct 2026
// Put NCBI taxids into a describe table.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/coxtax/pkg/protid2taxid"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-t prot.accession2taxid.gz [flags] [describe.tsv]")
	fmt.Fprintln(os.Stderr, "Given no describe table, read from stdin.")
	flag.PrintDefaults()
}

func main() {
	var flags protid2taxid.CmdFlag
	var quiet, nocolor bool
	var infile string
	flag.StringVar(&flags.Config, "c", "", "config file, .yaml or .toml")
	flag.StringVar(&flags.OutFile, "o", "", "output file instead of stdout")
	flag.StringVar(&flags.Prot2Taxid, "t", "", "accession to taxid file (prot.accession2taxid.gz)")
	flag.BoolVar(&quiet, "q", false, "quiet, no information messages")
	flag.BoolVar(&nocolor, "nocolor", false, "no colours in messages")
	flag.Usage = usage
	flag.Parse()
	SetQuiet(quiet)
	if nocolor {
		NoColor()
	}
	if flags.Prot2Taxid == "" {
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
	}
	if err := protid2taxid.Mymain(&flags, infile); err != nil {
		Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
