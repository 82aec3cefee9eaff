// 13 Oct 2026

/*
Numseq counts the sequences in fasta files, that is, lines starting
with ">". Files may be gzip compressed. Plain files are memory mapped
if they fit comfortably. Given one file, it prints the number. Given
more, it prints the name and number for each.

Usage:

	numseq file [file ...]

It is handy for checking what gb2cox1 or changeseq wrote, for example

	numseq COX1.fa cox1.pep.fasta
*/
package main
