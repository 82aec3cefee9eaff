// 11 Oct 2026
// Attach lineages to a describe table.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/coxtax/pkg/desc2tax"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-t taxonomy [flags] [describe.tsv]")
	fmt.Fprintln(os.Stderr, "Given no describe table, read from stdin.")
	flag.PrintDefaults()
}

func main() {
	var flags desc2tax.CmdFlag
	var quiet, nocolor bool
	var infile string
	flag.StringVar(&flags.Config, "c", "", "config file, .yaml or .toml")
	flag.StringVar(&flags.OutFile, "o", "", "output file instead of stdout")
	flag.StringVar(&flags.Taxonomy, "t", "", "taxonomy file, taxid and lineage (kraken.taxonomy.gz)")
	flag.BoolVar(&quiet, "q", false, "quiet, no information messages")
	flag.BoolVar(&nocolor, "nocolor", false, "no colours in messages")
	flag.Usage = usage
	flag.Parse()
	SetQuiet(quiet)
	if nocolor {
		NoColor()
	}
	if flags.Taxonomy == "" {
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
	}
	if err := desc2tax.Mymain(&flags, infile); err != nil {
		Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
