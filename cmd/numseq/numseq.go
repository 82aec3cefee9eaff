// 3 Aug 2020

// Open a file and count the number of lines starting with ">". This
// is the number of sequences.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/coxtax/pkg/numseq"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "file [file ...]")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(ExitUsageError)
	}
	for _, fname := range flag.Args() {
		n, err := numseq.Count(fname)
		if err != nil {
			Error(err)
			os.Exit(ExitFailure)
		}
		if flag.NArg() > 1 {
			fmt.Printf("%s\t%d\n", fname, n)
		} else {
			fmt.Println(n)
		}
	}
	os.Exit(ExitSuccess)
}
