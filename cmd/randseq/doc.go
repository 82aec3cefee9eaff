// 31 July 2020

/*
Randseq makes random coding sequences for testing the code. The
comment lines look like NCBI's CDS downloads, so the output can go
straight into changeseq.

Usage:

	randseq [options] fname nseq length

will generate nseq sequences of length length and write them to fname.
A name ending in .gz gives compressed output, "-" gives stdout.

Flags:

	-f fraction
		fraction of proteins to put in the protein summary
	-p pfile
		write a protein summary, like NCBI's protein_result.txt, to pfile
	-r
		random number seed

We are most interested in benchmarking and parsing, so the content is
not so important.
*/
package main
