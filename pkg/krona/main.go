// 12 Oct 2026

package krona

import (
	"errors"
	"fmt"
	"os"

	"github.com/andrew-torda/coxtax/pkg/config"
	. "github.com/andrew-torda/coxtax/pkg/seq/common"
	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

// CmdFlag is shared by cox1krona and otu2krona. Each uses only
// the output it needs.
type CmdFlag struct {
	Config  string // config file
	OutFile string // cox1krona report, stdout if empty
	OutDir  string // otu2krona reports go here
}

// CountMain is cox1krona. It reads a taxonomy table and writes one
// report. Nothing in the config changes the report, but the file is
// still read so a pipeline can give every tool the same -c.
func CountMain(flags *CmdFlag, infile string) (err error) {
	if _, err := config.Load(flags.Config); err != nil {
		return err
	}
	fp, err := zwrap.Open(infile)
	if err != nil {
		return err
	}
	defer fp.Close()
	counts, err := CountTaxa(fp)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	out, err := zwrap.Create(flags.OutFile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()
	if err := WriteCounts(out, counts); err != nil {
		return err
	}
	Info("%d lineages", len(counts))
	return nil
}

// OTUMain is otu2krona. It reads an OTU table and writes a report
// per sample.
func OTUMain(flags *CmdFlag, infile string) error {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	dir := flags.OutDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fp, err := zwrap.Open(infile)
	if err != nil {
		return err
	}
	defer fp.Close()
	otu, err := ReadOTU(fp)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	if len(otu.Samples) == 0 {
		return fmt.Errorf("%s: no samples", infile)
	}
	if err := otu.WriteReports(dir, cfg.KronaSuffix); err != nil {
		return err
	}
	Info("%d lineages, %d reports written to %s", len(otu.Taxa), len(otu.Samples), dir)
	return nil
}
