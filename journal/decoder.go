// Package journal implements a streaming decoder for the on-disk binary
// journal format used to archive frozen index buckets: a single-pass state
// machine over a byte stream that emits a lazy sequence of reconstructed
// log events, each carrying its message text and the currently-active
// host/source/sourcetype strings.
//
// Overview
//
// Unlike a format that can be parsed record-by-record independently, this
// one interleaves event records with dictionary and state-change records:
// decoding event N correctly requires having replayed every dictionary and
// state-change record that preceded it. Decoder does this replay as part
// of normal iteration, the way encoding.Decoder in the teacher package
// replays EvString/EvStack records into its internal state before a later
// event can reference them.
//
// Most callers want Open, which resolves a bucket directory's
// rawdata/journal[.zst] file and returns a ready Decoder. OpenReader
// accepts an io.ReadCloser for callers (such as the objstore package) that
// already have a byte stream, compressed or not; NewDecoder accepts an
// arbitrary io.Reader of already-decompressed bytes.
package journal

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/frostlake/frzjournal/event"
)

// Decoder reads events encoded in the frozen journal format from an input
// stream. A Decoder owns its stream exclusively; concurrent calls on a
// single Decoder are undefined, and it must not be used from more than one
// goroutine at a time.
type Decoder struct {
	s      *stream
	st     *state
	closer io.Closer
	err    error
}

// Open resolves and opens the journal beneath bucketDir, preferring the
// compressed rawdata/journal.zst over rawdata/journal if both exist. It
// returns ErrJournalNotFound if neither is present.
//
//   rawdata/journal.py: JournalDecoder._open_journal
func Open(bucketDir string) (*Decoder, error) {
	rawdata := filepath.Join(bucketDir, `rawdata`)

	compressedPath := filepath.Join(rawdata, `journal.zst`)
	if f, err := os.Open(compressedPath); err == nil {
		return newDecoderFromFile(f, true)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	plainPath := filepath.Join(rawdata, `journal`)
	if f, err := os.Open(plainPath); err == nil {
		return newDecoderFromFile(f, false)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	return nil, ErrJournalNotFound
}

func newDecoderFromFile(f *os.File, compressed bool) (*Decoder, error) {
	d, err := OpenReader(f, compressed)
	if err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

// OpenReader builds a Decoder from an already-open byte stream, applying
// zstd decompression if compressed is true. It is the entry point for
// callers (such as the objstore package) that obtain a journal's bytes
// from something other than a local file, e.g. a cloud storage object's
// own streaming reader. Decoder.Close will close under.
func OpenReader(under io.ReadCloser, compressed bool) (*Decoder, error) {
	r, err := newDecompressedReader(under, compressed)
	if err != nil {
		return nil, err
	}
	return &Decoder{s: newStream(r), st: newState(), closer: r}, nil
}

// NewDecoder returns a Decoder reading already-decompressed bytes from r.
// If r also implements io.Closer, Decoder.Close will close it.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{s: newStream(r), st: newState()}
	if c, ok := r.(io.Closer); ok {
		d.closer = c
	}
	return d
}

// SetStrictMetadata enables fatal treatment of reserved metadata type tags
// (1, 5, 13), matching spec.md §4.7's originally proposed fail-fast
// behavior instead of the default SPEC_FULL.md §4 resolution (silently
// consuming zero extra varints, as the reference implementation does).
func (d *Decoder) SetStrictMetadata(strict bool) {
	d.st.strict = strict
}

// Close releases the underlying file handle and, for compressed journals,
// the zstd decompression context.
func (d *Decoder) Close() error {
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	return c.Close()
}

// Host returns the currently active host string, or "" if unset or stale.
func (d *Decoder) Host() string { return d.st.host() }

// Source returns the currently active source string, or "" if unset.
func (d *Decoder) Source() string { return d.st.source() }

// SourceType returns the currently active sourcetype string, or "" if unset.
func (d *Decoder) SourceType() string { return d.st.sourceType() }

// Err returns the first framing error encountered, or nil if decoding is
// still healthy or completed cleanly (io.EOF is not reported here; test
// for end of stream with Next's own io.EOF return).
func (d *Decoder) Err() error {
	if d.err == io.EOF {
		return nil
	}
	return d.err
}

// Next decodes the next event from the input stream into evt, replaying
// any dictionary or state-change records encountered along the way. It
// returns io.EOF when the stream is exhausted cleanly, or a framing error
// if the stream ends or is malformed mid-structure. Once Next returns any
// error, all future calls return the same error.
//
// evt must be non-nil; callers that reuse the same *event.Event across
// iterations reuse its Message backing array, which grows only when a
// larger event demands it.
//
//   rawdata/journal.py: JournalDecoder.__next__
func (d *Decoder) Next(evt *event.Event) error {
	if d.err != nil {
		return d.err
	}
	if evt == nil {
		d.err = ErrNilEvent
		return d.err
	}

	for {
		b, err := d.s.ReadByte()
		if err != nil {
			if err == io.EOF {
				d.err = io.EOF
				return io.EOF
			}
			return d.halt(err)
		}
		op := opcode(b)

		if op.isEvent() {
			evt.Reset()
			evt.Off = d.s.pos - 1
		}

		if err := dispatch(d.s, d.st, evt, op); err != nil {
			return d.halt(err)
		}

		if op.isEvent() {
			return nil
		}
	}
}

// More reports whether another call to Next might succeed. It performs a
// 1-byte peek when the internal buffer is empty, which may itself produce
// the terminal error surfaced by a subsequent Err().
func (d *Decoder) More() bool {
	if d.err != nil {
		return false
	}
	if d.s.Buffered() == 0 {
		if _, err := d.s.Reader.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				d.err = io.EOF
			} else {
				d.err = err
			}
			return false
		}
	}
	return true
}

func (d *Decoder) halt(err error) error {
	d.err = &FramingError{Pos: d.s.pos, Err: err}
	return d.err
}
