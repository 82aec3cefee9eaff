// 3 Aug 2020
// 13 Oct 2026 count comment lines, compressed or not

// Package numseq counts the sequences in a fasta file by counting
// lines which start with '>'.
package numseq

import (
	"bytes"
	"io"

	"github.com/andrew-torda/coxtax/pkg/zwrap"
)

const bufSize = 64 * 1024

// inBytes counts in a slice which is the whole file.
func inBytes(b []byte) int {
	n := 0
	if len(b) > 0 && b[0] == '>' {
		n++
	}
	return n + bytes.Count(b, []byte("\n>"))
}

// ByReading counts while reading through rdr. We remember whether
// the last buffer ended in a newline, since "\n>" may be split
// between reads.
func ByReading(rdr io.Reader) (int, error) {
	buf := make([]byte, bufSize)
	count := 0
	atLineStart := true
	for {
		n, err := rdr.Read(buf)
		b := buf[:n]
		if n > 0 {
			if atLineStart && b[0] == '>' {
				count++
			}
			count += bytes.Count(b, []byte("\n>"))
			atLineStart = b[n-1] == '\n'
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}

// Count opens fname, which may be compressed or "-" for stdin.
// Mapped files are counted in place.
func Count(fname string) (int, error) {
	fp, err := zwrap.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	if b := fp.Bytes(); b != nil {
		return inBytes(b), nil
	}
	return ByReading(fp)
}
