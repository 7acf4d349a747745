package journal

import "encoding/binary"

// state is the decoder state persisted across the whole journal: the
// per-field string dictionaries plus the currently active indices into
// them and the current base time. It mirrors encoding.state from the
// teacher package (there: strings/stacks maps keyed by wire id; here:
// append-only slices keyed by 1-based ordinal per field kind).
type state struct {
	fields map[opcode][]string

	activeHost       uint64
	activeSource     uint64
	activeSourceType uint64
	baseTime         int32

	// Diagnostics captured from the last Header opcode seen. They are not
	// exposed by Decoder and are unused by decoding.
	headerVersion       byte
	headerAlignBits     byte
	headerBaseIndexTime uint32

	// strict enables Decoder.SetStrictMetadata's fail-fast behavior for
	// reserved metadata type tags.
	strict bool
}

func newState() *state {
	return &state{fields: make(map[opcode][]string, 4)}
}

// addString appends str to the dictionary for kind, returning its new
// 1-based ordinal.
func (st *state) addString(kind opcode, str string) int {
	st.fields[kind] = append(st.fields[kind], str)
	return len(st.fields[kind])
}

// lookup returns the dictionary entry at the given 1-based ordinal for
// kind, or "" if idx is 0 or out of range. Dictionaries are append-only for
// the life of the decode, so a valid idx never becomes invalid later.
func (st *state) lookup(kind opcode, idx uint64) string {
	if idx == 0 {
		return ``
	}
	entries := st.fields[kind]
	if idx > uint64(len(entries)) {
		return ``
	}
	return entries[idx-1]
}

// host, source, sourceType return the Decoder's currently active values for
// each dictionary, per SPEC_FULL.md §4.5's "derived views".
func (st *state) host() string       { return st.lookup(opNewHost, st.activeHost) }
func (st *state) source() string     { return st.lookup(opNewSource, st.activeSource) }
func (st *state) sourceType() string { return st.lookup(opNewSourceType, st.activeSourceType) }

// decodeStringField implements opcodes 3-6: length-prefixed UTF-8 string,
// appended to the dictionary for kind.
//
//   rawdata/decoder.py: StringFieldDecoder.decode
func decodeStringField(s *stream, st *state, kind opcode) error {
	str, err := readLengthPrefixedString(s)
	if err != nil {
		return err
	}
	st.addString(kind, str)
	return nil
}

// decodeStateChange implements opcodes 17-31: the low 4 bits select which
// of active_host, active_source, active_source_type, base_time follow, in
// that fixed order.
//
//   rawdata/journal.py: JournalDecoder._decode_new_state
func decodeStateChange(s *stream, st *state, b byte) error {
	if b&0x08 != 0 {
		v, err := readUvarint(s)
		if err != nil {
			return err
		}
		st.activeHost = v
	}
	if b&0x04 != 0 {
		v, err := readUvarint(s)
		if err != nil {
			return err
		}
		st.activeSource = v
	}
	if b&0x02 != 0 {
		v, err := readUvarint(s)
		if err != nil {
			return err
		}
		st.activeSourceType = v
	}
	if b&0x01 != 0 {
		buf, err := s.readExact(4)
		if err != nil {
			return err
		}
		st.baseTime = int32(binary.LittleEndian.Uint32(buf))
	}
	return nil
}

// readUvarint reads one unsigned varint from s by peeking up to
// maxVarintBytes and discarding the bytes the varint actually occupied.
func readUvarint(s *stream) (uint64, error) {
	v, n := decodeUvarint(s.peekUpTo(maxVarintBytes))
	if n < 0 {
		return 0, ErrBadVarint
	}
	if _, err := s.discard(n); err != nil {
		return 0, err
	}
	return v, nil
}

// readVarint is the signed, zigzag equivalent of readUvarint.
func readVarint(s *stream) (int64, error) {
	v, n := decodeVarint(s.peekUpTo(maxVarintBytes))
	if n < 0 {
		return 0, ErrBadVarint
	}
	if _, err := s.discard(n); err != nil {
		return 0, err
	}
	return v, nil
}

// readLengthPrefixedString reads a uvarint length followed by that many
// bytes of UTF-8, replacing invalid sequences with the Unicode replacement
// character.
func readLengthPrefixedString(s *stream) (string, error) {
	n, err := readUvarint(s)
	if err != nil {
		return ``, err
	}
	buf, err := s.readExact(int(n))
	if err != nil {
		return ``, err
	}
	return sanitizeUTF8(buf), nil
}
