package journal

import (
	"bufio"
	"io"
)

// hashSize is the length in bytes of an event's optional content hash,
// duplicated from event.HashSize so this package's wire-layout constants
// stay self-contained (the teacher package similarly keeps frameHeaderSize
// local to encoding rather than importing it from event).
const hashSize = 20

// peekSize is the size of the internal peek buffer. It must be large enough
// to hold the worst case event header: eight varints at up to 10 bytes each,
// an 8 byte stream id and a 20 byte hash.
//
//   rawdata/decoder.py: reader.peek(8 * 10 + 8 + HASH_SIZE)
const peekSize = 8*maxVarintBytes + 8 + hashSize

// metaPeekSize bounds a single metadata record: a type-tagged key varint
// plus up to three signed value varints.
const metaPeekSize = 4 * maxVarintBytes

// stream wraps a buffered byte source and tracks the absolute number of
// bytes consumed since construction. The decoder uses pos to resolve the
// position-relative message length field (see effectiveEnd in event_decode.go).
type stream struct {
	*bufio.Reader
	pos int64
}

// newStream returns a stream reading from r. If r is already a
// *bufio.Reader with sufficient capacity it is reused, mirroring
// encoding.NewDecoder's treatment of an existing bufio.Reader in the
// teacher package.
func newStream(r io.Reader) *stream {
	if br, ok := r.(*bufio.Reader); ok && br.Size() >= peekSize {
		return &stream{Reader: br}
	}
	return &stream{Reader: bufio.NewReaderSize(r, peekSize*2)}
}

// Read implements io.Reader, tracking pos.
func (s *stream) Read(p []byte) (n int, err error) {
	n, err = s.Reader.Read(p)
	s.pos += int64(n)
	return
}

// ReadByte implements io.ByteReader, tracking pos.
func (s *stream) ReadByte() (byte, error) {
	b, err := s.Reader.ReadByte()
	if err == nil {
		s.pos++
	}
	return b, err
}

// readExact reads exactly n bytes into a freshly sliced buffer, returning
// io.ErrUnexpectedEOF if the stream ends early.
func (s *stream) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s, buf); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// discard advances the stream by up to n bytes, returning the number
// actually skipped and tracking pos the same as Read.
func (s *stream) discard(n int) (int, error) {
	d, err := s.Reader.Discard(n)
	s.pos += int64(d)
	return d, err
}

// peekUpTo returns up to n bytes without advancing the stream, tolerating a
// short read near EOF the way the reference CountedReader.peek does
// (`self._reader.peek(n)[:n]`).
func (s *stream) peekUpTo(n int) []byte {
	b, err := s.Reader.Peek(n)
	if err == nil || len(b) > 0 {
		return b
	}
	return nil
}
