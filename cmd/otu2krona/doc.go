// 12 Oct 2026

/*
Otu2krona reads an OTU abundance table and writes one Krona report
per sample, called <sample>.krona_report.

The first line of the table, and any line starting with "#", gives
the sample names in the second and later columns. Other lines have a
lineage in the first column, then one abundance per sample. Lines
whose first column has no "k__" are skipped. If a lineage appears
more than once, its abundances are added. Abundances are truncated to
whole numbers and anything less than one is left out of a report.

Usage:

	otu2krona [flags] [meta.otu_tax.tsv]

The flags are:

	-c config
		Config file (.yaml, .yml or .toml). The report suffix is
		krona_suffix.
	-o directory
		Where the reports go, default the current directory
	-q
		Quiet
	-nocolor
		Do not colour the message tags
*/
package main
