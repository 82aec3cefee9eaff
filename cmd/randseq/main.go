// 31 July 2020

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/coxtax/pkg/randseq"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

// mymain writes the sequences and, if pfile is set, the protein summary.
func mymain(args *randseq.CDSArgs, fname, pfile string) (err error) {
	fo, err := zwrap.Create(fname)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, fo.Close()) }()
	if pfile == "" {
		return randseq.WriteCDS(args, fo, nil)
	}
	po, err := zwrap.Create(pfile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, po.Close()) }()
	return randseq.WriteCDS(args, fo, po)
}

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.CDSArgs
	var pfile string

	f.Float64Var(&args.FracKnown, "f", 0.9, "fraction of proteins in the protein summary")
	f.StringVar(&pfile, "p", "", "protein summary file")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer"
	for i, p := range []*int{&args.Nseq, &args.Len} {
		s := f.Arg(i + 1)
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			Error(fmt.Errorf(emsg, s))
			os.Exit(ExitUsageError)
		}
		*p = int(n)
	}

	if err := mymain(&args, f.Arg(0), pfile); err != nil {
		Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
