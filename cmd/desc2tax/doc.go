// 11 Oct 2026

/*
Desc2tax gives each protein in a describe table a lineage like

	k__Eukaryota|p__Arthropoda|c__Insecta|o__Hymenoptera|f__Apidae|g__Apis|s__Apis mellifera

The describe table has columns protein_id, tax_id, organism and
optionally a fourth, genus. The taxonomy file has a taxid and a
lineage on each line. Anything after the first full stop in a lineage
is dropped.

If the taxid of a protein is in the taxonomy file, its lineage is
used. If not, we look for a lineage which mentions the genus (four
column rows) or the species (three column rows) and borrow it. A
borrowed genus lineage stops before the species. If nothing is found,
the lineage is just the kingdom, k__Eukaryota unless the config file
says otherwise. Finally, a genus and species are added on the end if
the lineage has none and we know them.

The output has the columns

	#protein_id tax tax_id organism

Usage:

	desc2tax -t kraken.taxonomy.gz [flags] [cox1.describe.tsv]

The flags are:

	-c config
		Config file (.yaml, .yml or .toml)
	-o outfile
		Output, instead of standard output
	-t taxonomy
		Taxonomy file. Must be given. May be compressed.
	-q
		Quiet
	-nocolor
		Do not colour the message tags
*/
package main
