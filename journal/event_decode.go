package journal

import (
	"encoding/binary"
	"io"

	"github.com/frostlake/frzjournal/event"
)

// maxMessageLength bounds a single event's message size, guarding against
// allocating an enormous buffer off a corrupt or adversarial length field
// the way the teacher's decodeEventArgs guards frameSize*frameArgs.
const maxMessageLength = 64 << 20 // 64 MiB

// varintFromPeek decodes an unsigned varint from the front of a peeked
// (not-yet-consumed) buffer, distinguishing a genuinely malformed varint
// (ten bytes, still unterminated) from one that simply ran off the end of
// the buffer because the stream is near EOF.
func varintFromPeek(peek []byte) (v uint64, n int, err error) {
	v, n = decodeUvarint(peek)
	if n >= 0 {
		return v, n, nil
	}
	if len(peek) < maxVarintBytes {
		return 0, 0, io.ErrUnexpectedEOF
	}
	return 0, 0, ErrBadVarint
}

// svarintFromPeek is the signed equivalent of varintFromPeek.
func svarintFromPeek(peek []byte) (v int64, n int, err error) {
	v, n = decodeVarint(peek)
	if n >= 0 {
		return v, n, nil
	}
	if len(peek) < maxVarintBytes {
		return 0, 0, io.ErrUnexpectedEOF
	}
	return 0, 0, ErrBadVarint
}

// decodeEvent implements opcodes 1, 2 (legacy) and 32-43 (bit-coded): the
// event header plus its trailing metadata records and message bytes.
//
// The header fields are parsed from a single peek rather than many small
// reads, mirroring EventDecoder.decode's use of a single reader.peek() and
// a running offset before issuing one discard. The message_length field is
// not a length at all but the event's absolute end offset minus the
// position just past this length varint (see effectiveEnd below); metadata and
// extended storage both sit between the header and that end offset, and
// the message itself is whatever bytes remain up to it.
//
//   rawdata/decoder.py: EventDecoder.decode
func decodeEvent(s *stream, st *state, evt *event.Event, op opcode) error {
	posAfterOpcode := s.pos
	peek := s.peekUpTo(peekSize)
	off := 0

	rawLen, n, err := varintFromPeek(peek[off:])
	if err != nil {
		return err
	}
	off += n
	effectiveEnd := int64(rawLen) + posAfterOpcode + int64(off)

	// These bit tests are uniform across the legacy and bit-coded ranges:
	// opcodes 1 and 2 have bits 0x04 and 0x20 clear, so
	// has_extended_storage and include_punctuation fall out false for them
	// without a special case, and has_hash reduces to exactly op == 2.
	evt.HasExtendedStorage = op&0x04 != 0
	evt.HasHash = op&0x01 == 0
	evt.IncludePunctuation = op&0x22 == 0x22

	if evt.HasExtendedStorage {
		esLen, n, err := varintFromPeek(peek[off:])
		if err != nil {
			return err
		}
		off += n
		evt.ExtendedStorageLen = int(esLen)
	}

	if evt.HasHash {
		if off+event.HashSize > len(peek) {
			return io.ErrUnexpectedEOF
		}
		copy(evt.Hash[:], peek[off:off+event.HashSize])
		off += event.HashSize
	}

	if off+8 > len(peek) {
		return io.ErrUnexpectedEOF
	}
	evt.StreamID = binary.LittleEndian.Uint64(peek[off : off+8])
	off += 8

	streamOffset, n, err := varintFromPeek(peek[off:])
	if err != nil {
		return err
	}
	off += n
	evt.StreamOffset = streamOffset

	streamSubOffset, n, err := varintFromPeek(peek[off:])
	if err != nil {
		return err
	}
	off += n
	evt.StreamSubOffset = streamSubOffset

	indexTimeDelta, n, err := svarintFromPeek(peek[off:])
	if err != nil {
		return err
	}
	off += n
	evt.IndexTime = int64(st.baseTime) + indexTimeDelta

	subSeconds, n, err := varintFromPeek(peek[off:])
	if err != nil {
		return err
	}
	off += n
	evt.SubSeconds = subSeconds

	metaCount, n, err := varintFromPeek(peek[off:])
	if err != nil {
		return err
	}
	off += n
	evt.MetadataCount = metaCount

	if _, err := s.discard(off); err != nil {
		return err
	}

	for i := uint64(0); i < metaCount; i++ {
		if err := readMetadataRecord(s, op, st.strict); err != nil {
			return err
		}
	}

	if evt.HasExtendedStorage {
		buf, err := s.readExact(evt.ExtendedStorageLen)
		if err != nil {
			return err
		}
		evt.ExtendedStorage = append(evt.ExtendedStorage[:0], buf...)
	}

	messageLength := effectiveEnd - s.pos
	if messageLength < 0 {
		return ErrNegativeMessageLength
	}
	if messageLength > maxMessageLength {
		return ErrMessageTooLarge
	}
	evt.MessageLength = int(messageLength)
	if cap(evt.Message) < evt.MessageLength {
		evt.Message = make([]byte, evt.MessageLength)
	} else {
		evt.Message = evt.Message[:evt.MessageLength]
	}
	if _, err := io.ReadFull(s, evt.Message); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	return nil
}
