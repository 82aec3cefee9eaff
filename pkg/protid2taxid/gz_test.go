package protid2taxid_test

import (
	"io"

	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

// writeGz writes s to fname, compressed since the name ends in .gz.
func writeGz(fname, s string) error {
	fo, err := zwrap.Create(fname)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(fo, s); err != nil {
		fo.Close()
		return err
	}
	return fo.Close()
}
