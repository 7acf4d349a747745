// Package event defines the reconstructed record a journal.Decoder yields,
// mirroring the role github.com/cstockton/go-trace/event plays for the Go
// trace format: a single reusable struct the decoder mutates in place and
// the caller either copies or consumes before advancing.
package event

import (
	"fmt"
	"strings"
)

// HashSize is the length in bytes of an event's optional content hash.
const HashSize = 20

// Event is a single reconstructed log record from a frozen journal. A
// Decoder owns one Event and mutates it on every call to Next; callers that
// need to retain data across iterations must call Copy or extract the
// fields they need before calling Next again.
type Event struct {
	// Message holds the raw event payload. Its backing array is reused
	// across events and grown as needed; MessageLength is the valid
	// prefix length, matching the teacher's Args/Data-reuse contract.
	Message       []byte
	MessageLength int

	HasHash bool
	Hash    [HashSize]byte

	HasExtendedStorage bool
	ExtendedStorageLen int
	ExtendedStorage    []byte

	StreamID        uint64
	StreamOffset    uint64
	StreamSubOffset uint64

	IndexTime  int64
	SubSeconds uint64

	MetadataCount uint64

	IncludePunctuation bool

	// Off is the byte offset of this event's opcode relative to the start
	// of the input stream.
	Off int64
}

// Text returns the message decoded as UTF-8, substituting the Unicode
// replacement character for invalid sequences.
func (e *Event) Text() string {
	return strings.ToValidUTF8(string(e.Message[:e.MessageLength]), "�")
}

// Bytes returns the valid prefix of Message. The returned slice aliases the
// Event's internal buffer and is only valid until the next call to Next.
func (e *Event) Bytes() []byte {
	return e.Message[:e.MessageLength]
}

// Reset clears all fields for reuse by the next call to Decoder.Next,
// retaining the Message and ExtendedStorage backing arrays.
func (e *Event) Reset() {
	msg, ext := e.Message[:0], e.ExtendedStorage[:0]
	*e = Event{Message: msg, ExtendedStorage: ext}
}

// Copy returns a deep copy of e, safe to retain past the next call to
// Decoder.Next.
func (e *Event) Copy() *Event {
	cp := *e
	cp.Message = append([]byte(nil), e.Message[:e.MessageLength]...)
	cp.MessageLength = len(cp.Message)
	cp.ExtendedStorage = append([]byte(nil), e.ExtendedStorage...)
	return &cp
}

// String implements fmt.Stringer with a summary useful for debugging.
func (e *Event) String() string {
	return fmt.Sprintf(
		`event.Event(stream=%d off=%d+%d indexTime=%d len=%d)`,
		e.StreamID, e.StreamOffset, e.StreamSubOffset, e.IndexTime, e.MessageLength)
}
