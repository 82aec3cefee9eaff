// 10 Oct 2026

/*
Protid2taxid fills in the tax_id column of a describe table, as
written by changeseq, using NCBI's prot.accession2taxid file.

For each row of the accession file, the versioned accession
(second column) is looked for in the describe table, then the plain
accession (first column). If either is there, its tax_id becomes the
third column of the accession file. Proteins which are not found keep
whatever tax_id they had.

The output has the same rows, in the same order, as the input,
after a header line

	#protein_id tax_id organism

Usage:

	protid2taxid -t prot.accession2taxid.gz [flags] [gene.describe.tsv]

The flags are:

	-c config
		Config file (.yaml, .yml or .toml)
	-o outfile
		Output, instead of standard output
	-t accession2taxid
		The accession to taxid file. Must be given. May be compressed.
	-q
		Quiet
	-nocolor
		Do not colour the message tags
*/
package main
