// 8 Oct 2026

/*
Gb2cox1 reads GenBank flatfiles, such as the NCBI mitochondrion
release (mitochondrion.1.genomic.gbff.gz), and writes the coding
sequence of every COX1 gene it finds.

A CDS feature is taken if its gene qualifier (or gene_synonym, or
locus_tag if neither is there) is one of COX1, cox1 or COI. More
names can be added with -g or in a config file. The name of the
sequence is taken from the coded_by qualifier, up to the colon, or
from protein_id. The comment line looks like

	>YP_009174329.1|COX1 [Apis mellifera]

Nucleotides go to standard output. If the feature has a translation,
it goes to the peptide file with the same comment line.

Input files may be gzip compressed. This is decided by looking at the
file, not its name.

Usage:

	gb2cox1 [flags] [file.gbff ...]

The flags are:

	-a
		Transliterate organism names to plain ascii
	-c config
		Config file (.yaml, .yml or .toml)
	-g names
		Extra gene names, separated by commas
	-o outfile
		Nucleotide output, instead of standard output
	-p pepfile
		Translation output, instead of cox1.pep.fasta
	-q
		Quiet. Only warnings and errors
	-nocolor
		Do not colour the message tags

Example:

	gb2cox1 mitochondrion.1.genomic.gbff.gz > COX1.fa
*/
package main
