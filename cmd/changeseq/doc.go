// 9 Oct 2026

/*
Changeseq rewrites the comment lines of a CDS fasta file downloaded
from NCBI. A line like

	>lcl|MK000001.1_cds_QAB00002.1_1 [gene=cox1] [protein_id=QAB00002.1] [gbkey=CDS]

becomes

	>QAB00002.1|COX1 [organism=Bombus terrestris]

The gene name is taken from the gene attribute, or protein if there is
no gene, and put in upper case. The organism is looked up in the
protein summary file (-r), which is the text summary NCBI give for a
protein search. If the protein is not there, the comment line has
no organism.

It also writes a table (gene.describe.tsv) with columns

	#protein_id tax_id organism

The tax_id and missing organisms are "-". protid2taxid fills in the
tax_id.

Records with no protein_id are skipped with a warning.

Usage:

	changeseq -r protein_result.txt [flags] [cds.fasta]

The flags are:

	-c config
		Config file (.yaml, .yml or .toml)
	-d describe_file
		Name of the table to write, instead of gene.describe.tsv
	-o outfile
		Fasta output, instead of standard output
	-r protein_result
		Protein summary file. This must be given.
	-q
		Quiet
	-nocolor
		Do not colour the message tags

Example:

	changeseq -r protein_result.txt all.cox1.fa > all.new_cox1.fa
*/
package main
