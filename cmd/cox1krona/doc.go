// 12 Oct 2026

/*
Cox1krona reads a taxonomy table, as written by desc2tax, counts how
often each lineage (second column) appears and writes a report for
Krona's ktImportText. Each line is the count, then the lineage spread
over the ranks kingdom to species, with missing ranks called
unclassified. The lineage stops at the lowest rank it has.

Rows with a "#" in the first column are skipped.

Usage:

	cox1krona [flags] [cox1.taxonomy.tsv]

The flags are:

	-c config
		Config file, .yaml or .toml. It is checked, but nothing in it
		changes the report
	-o outfile
		Output, instead of standard output
	-q
		Quiet
	-nocolor
		Do not colour the message tags
*/
package main
