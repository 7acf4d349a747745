package journal

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdReadCloser adapts a *zstd.Decoder, which exposes Close but not a
// matching error return convention consumers expect from io.ReadCloser, to
// one that releases the decoder's internal resources exactly once.
//
//   other_examples/a8860a42_appgate-journaldreader: zstd.NewReader(nil, ...)
type zstdReadCloser struct {
	*zstd.Decoder
	under io.Closer
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	if z.under != nil {
		return z.under.Close()
	}
	return nil
}

// newDecompressedReader wraps under with a streaming zstd decompressor if
// compressed is true, otherwise returns under unchanged. The returned
// io.ReadCloser presents a uniform byte stream to the rest of the package;
// callers are oblivious to whether compression occurred.
//
//   SPEC_FULL.md §6.2 / spec.md §4.3
func newDecompressedReader(under io.ReadCloser, compressed bool) (io.ReadCloser, error) {
	if !compressed {
		return under, nil
	}
	dec, err := zstd.NewReader(under, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &zstdReadCloser{Decoder: dec, under: under}, nil
}
