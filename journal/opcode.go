package journal

import "github.com/frostlake/frzjournal/event"

// Opcode is the leading byte of every journal record.
//
//   rawdata/opcode.py: class Opcode(IntEnum)
type opcode byte

const (
	opNOP               opcode = 0x00
	opOldstyleEvent     opcode = 0x01
	opOldstyleEventHash opcode = 0x02
	opNewHost           opcode = 0x03
	opNewSource         opcode = 0x04
	opNewSourceType     opcode = 0x05
	opNewString         opcode = 0x06
	opDelete            opcode = 0x08
	opSplunkPrivate     opcode = 0x09
	opHeader            opcode = 0x0A
	opHashSlice         opcode = 0x0B
	opStateChangeLo     opcode = 0x11 // 17
	opStateChangeHi     opcode = 0x1F // 31
	opEventLo           opcode = 0x20 // 32
	opEventHi           opcode = 0x2B // 43
)

// isStateChange reports whether b is one of the 17-31 state-change opcodes.
func (b opcode) isStateChange() bool {
	return opStateChangeLo <= b && b <= opStateChangeHi
}

// isEvent reports whether b is a legacy (1, 2) or bit-coded (32-43) event
// opcode.
func (b opcode) isEvent() bool {
	switch b {
	case opOldstyleEvent, opOldstyleEventHash:
		return true
	}
	return opEventLo <= b && b <= opEventHi
}

// stringField returns the dictionary kind for the opcode, if b is one of
// the four string-append opcodes (3-6).
func (b opcode) stringField() (kind opcode, ok bool) {
	switch b {
	case opNewHost, opNewSource, opNewSourceType, opNewString:
		return b, true
	}
	return 0, false
}

// dispatch decodes exactly one record from s given its already-consumed
// leading opcode byte, mutating st and evt as appropriate. evt is only
// touched when b.isEvent(). It returns ErrUnknownOpcode for any opcode not
// handled by one of NOP, the string-field opcodes, Header, SplunkPrivate,
// a state-change range, or an event range.
//
//   rawdata/journal.py: JournalDecoder._decode_next
func dispatch(s *stream, st *state, evt *event.Event, b opcode) error {
	switch {
	case b == opNOP:
		return nil
	case b.isStateChange():
		return decodeStateChange(s, st, byte(b))
	case b.isEvent():
		return decodeEvent(s, st, evt, b)
	}

	switch b {
	case opHeader:
		return decodeHeader(s, st)
	case opSplunkPrivate:
		return decodeSplunkPrivate(s)
	default:
		if kind, ok := b.stringField(); ok {
			return decodeStringField(s, st, kind)
		}
	}
	return ErrUnknownOpcode
}
