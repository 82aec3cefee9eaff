// 9 Oct 2026
// Rewrite the comment lines of NCBI CDS fasta files.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/coxtax/pkg/changeseq"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-r protein_result.txt [flags] [infile]")
	long := `Given no input file, read from stdin.
The new fasta goes to stdout, unless -o is given.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags changeseq.CmdFlag
	var quiet, nocolor bool
	var infile string
	flag.StringVar(&flags.Config, "c", "", "config file, .yaml or .toml")
	flag.StringVar(&flags.DescFile, "d", "", "describe table to write (default from config, gene.describe.tsv)")
	flag.StringVar(&flags.OutFile, "o", "", "fasta output file, .gz for compressed")
	flag.StringVar(&flags.PResult, "r", "", "protein summary file from NCBI (protein_result.txt)")
	flag.BoolVar(&quiet, "q", false, "quiet, no information messages")
	flag.BoolVar(&nocolor, "nocolor", false, "no colours in messages")
	flag.Usage = usage
	flag.Parse()
	SetQuiet(quiet)
	if nocolor {
		NoColor()
	}
	if flags.PResult == "" {
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
	}

	if err := changeseq.Mymain(&flags, infile); err != nil {
		Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
