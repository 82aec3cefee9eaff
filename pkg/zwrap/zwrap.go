// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// We do not trust file names. Compression is decided by looking at the
// first two bytes. Plain files that fit comfortably in memory are
// mapped rather than read.

package zwrap

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/cpuid"
	"github.com/klauspost/pgzip"
	"github.com/pbnjay/memory"
)

const (
	gzBlockSize = 1 << 20
	rdBufSize   = 64 * 1024
)

var gzMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.Closer
	rdr  io.Reader // where Read really comes from
	zrdr *pgzip.Reader
	mm   mmap.MMap
}

// nBlocks is the number of blocks pgzip may decompress at once.
// One per physical core. cpuid sometimes cannot tell, then we fall
// back to the runtime's idea.
func nBlocks() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Close closes the decompressor, removes any mapping, then closes
// the underlying file.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		errs = append(errs, fc.zrdr.Close())
	}
	if fc.mm != nil {
		errs = append(errs, fc.mm.Unmap())
	}
	if fc.fp != nil {
		errs = append(errs, fc.fp.Close())
	}
	return errors.Join(errs...)
}

// Read makes sure we read from the decompressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Compressed says whether we are reading through a decompressor.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Mapped says whether the file was memory mapped.
func (fc *FpGzip) Mapped() bool { return fc.mm != nil }

// Bytes gives the whole of a mapped, uncompressed file without
// copying. Otherwise it is nil. The slice is gone after Close.
func (fc *FpGzip) Bytes() []byte {
	if fc.zrdr != nil {
		return nil
	}
	return fc.mm
}

// Wrap takes a source like a file pointer and wraps it in a
// decompressor. It is an error if the source is not gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := pgzip.NewReaderN(fp, gzBlockSize, nBlocks())
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary. It peeks, rather than
// seeks, so it is happy with pipes and stdin.
func WrapMaybe(fpIn io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReaderSize(fpIn, rdBufSize)
	fc := &FpGzip{fp: fpIn, rdr: br}
	magic, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(magic, gzMagic) {
		return fc, nil
	}
	if fc.zrdr, err = pgzip.NewReaderN(br, gzBlockSize, nBlocks()); err != nil {
		return nil, err
	}
	fc.rdr = fc.zrdr
	return fc, nil
}

// worthMapping says if a file of this size should be mapped. Empty
// files cannot be, and we do not want to map something bigger than
// half the machine. If memory cannot tell us the size of the machine,
// we play safe and read normally.
func worthMapping(fi os.FileInfo) bool {
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return false
	}
	return uint64(fi.Size()) < memory.TotalMemory()/2
}

// mapFile maps an open file and sets up a reader on it. If the
// contents are compressed, the decompressor reads from the mapping.
func mapFile(fp *os.File) (*FpGzip, error) {
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	fc := &FpGzip{fp: fp, mm: mm, rdr: bytes.NewReader(mm)}
	if bytes.HasPrefix(mm, gzMagic) {
		if fc.zrdr, err = pgzip.NewReaderN(fc.rdr, gzBlockSize, nBlocks()); err != nil {
			mm.Unmap()
			return nil, err
		}
		fc.rdr = fc.zrdr
	}
	return fc, nil
}

// isStdio says if a name means stdin or stdout.
func isStdio(fname string) bool { return fname == "" || fname == "-" }

// Open opens fname for reading, decompressing if necessary.
// An empty name or "-" means stdin.
func Open(fname string) (*FpGzip, error) {
	if isStdio(fname) {
		return WrapMaybe(io.NopCloser(os.Stdin))
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	var fc *FpGzip
	if fi, err := fp.Stat(); err == nil && worthMapping(fi) {
		fc, err = mapFile(fp)
		if err == nil {
			return fc, nil
		} //                  Mapping failed. Fall through and read normally.
	}
	if fc, err = WrapMaybe(fp); err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fc, nil
}

// FpOut is a buffered output file, maybe compressed.
type FpOut struct {
	fp   io.WriteCloser
	bw   *bufio.Writer
	zwrt *pgzip.Writer
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Write sends data through the buffer and compressor.
func (fo *FpOut) Write(p []byte) (int, error) { return fo.bw.Write(p) }

// Close flushes the buffer, then the compressor, then closes the
// file. Stdout is flushed, but not closed.
func (fo *FpOut) Close() error {
	errs := []error{fo.bw.Flush()}
	if fo.zwrt != nil {
		errs = append(errs, fo.zwrt.Close())
	}
	errs = append(errs, fo.fp.Close())
	return errors.Join(errs...)
}

// Create opens fname for writing. Empty or "-" means stdout.
// A name ending in .gz gets compressed output.
func Create(fname string) (*FpOut, error) {
	if isStdio(fname) {
		fo := &FpOut{fp: nopWriteCloser{os.Stdout}}
		fo.bw = bufio.NewWriterSize(os.Stdout, rdBufSize)
		return fo, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	fo := &FpOut{fp: fp}
	if strings.HasSuffix(fname, ".gz") {
		fo.zwrt = pgzip.NewWriter(fp)
		fo.bw = bufio.NewWriterSize(fo.zwrt, rdBufSize)
	} else {
		fo.bw = bufio.NewWriterSize(fp, rdBufSize)
	}
	return fo, nil
}

// ToWriter wraps an existing writer, say a strings.Builder in a test,
// so it looks like something from Create. Close flushes, but does not
// close w.
func ToWriter(w io.Writer) *FpOut {
	return &FpOut{fp: nopWriteCloser{w}, bw: bufio.NewWriterSize(w, rdBufSize)}
}
