package journal

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Open and Decoder.Next. Once any of these
// (other than io.EOF) is returned from Next, the Decoder is permanently
// halted; callers must construct a new Decoder to continue.
var (
	// ErrJournalNotFound is returned by Open when neither rawdata/journal.zst
	// nor rawdata/journal exists beneath the given bucket directory.
	ErrJournalNotFound = errors.New(`journal: rawdata/journal[.zst] not found`)

	// ErrBadVarint is returned when a varint exceeds the 10 byte limit, and
	// also when a varint outside the event header is cut short by the end
	// of the stream.
	ErrBadVarint = errors.New(`journal: varint exceeded maximum length`)

	// ErrUnknownOpcode is returned when an opcode byte matches no known
	// enumerated value, numeric range, or NOP.
	ErrUnknownOpcode = errors.New(`journal: unknown opcode`)

	// ErrNegativeMessageLength is returned when the position-relative
	// message length arithmetic in decodeEvent yields a negative
	// length, indicating corrupt or misframed input.
	ErrNegativeMessageLength = errors.New(`journal: negative message length`)

	// ErrReservedMetadataTag is returned, once Decoder.SetStrictMetadata(true)
	// has been called, when a metadata
	// record carries one of the three reserved type tags (1, 5, 13). The
	// default (non-strict) decoder instead treats these as zero-length
	// placeholders, matching observed reference behavior; see SPEC_FULL.md §4.
	ErrReservedMetadataTag = errors.New(`journal: reserved metadata type tag`)

	// ErrNilEvent is returned by Decoder.Next when given a nil *event.Event.
	ErrNilEvent = errors.New(`journal: nil event.Event given to Next`)

	// ErrMessageTooLarge is returned when an event's computed message length
	// exceeds maxMessageLength, guarding against a corrupt length field
	// driving an enormous allocation.
	ErrMessageTooLarge = errors.New(`journal: message length exceeds limit`)
)

// FramingError wraps a sentinel decoding error with the stream position at
// which it was observed. Decoder.Next and Decoder.Err return these rather
// than bare sentinels so callers printing a failure get enough context to
// locate it in the journal without the decoder needing a logging
// dependency of its own.
type FramingError struct {
	Pos int64
	Err error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf(`journal: at offset %d: %v`, e.Pos, e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }
