// 12 Oct 2026
// Count lineages in a taxonomy table and write a Krona report.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/coxtax/pkg/krona"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [cox1.taxonomy.tsv]")
	fmt.Fprintln(os.Stderr, "Given no input file, read from stdin. Write to stdout unless -o is given.")
	flag.PrintDefaults()
}

func main() {
	var flags krona.CmdFlag
	var quiet, nocolor bool
	var infile string
	flag.StringVar(&flags.Config, "c", "", "config file, .yaml or .toml")
	flag.StringVar(&flags.OutFile, "o", "", "output file instead of stdout")
	flag.BoolVar(&quiet, "q", false, "quiet, no information messages")
	flag.BoolVar(&nocolor, "nocolor", false, "no colours in messages")
	flag.Usage = usage
	flag.Parse()
	SetQuiet(quiet)
	if nocolor {
		NoColor()
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
	}
	if err := krona.CountMain(&flags, infile); err != nil {
		Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
