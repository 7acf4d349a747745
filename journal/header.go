package journal

import "encoding/binary"

// decodeHeader reads the fixed 6-byte Header record: version (u8),
// align_bits (u8), base_index_time (u32 little-endian), storing it on st
// for diagnostics only. align_bits governs writer-side alignment padding
// this decoder does not need to reproduce, and base_index_time does not
// seed the event base_time — that field is only ever set by a base-time
// state-change opcode (bit 0x01 of 17-31), matching the reference
// HeaderDecoder which logs these values but never writes DecoderState.
//
// Like every other opcode it is dispatched from the main loop rather than
// forced to occur first; journals observed so far always lead with it.
//
//   rawdata/decoder.py: HeaderDecoder.decode
func decodeHeader(s *stream, st *state) error {
	buf, err := s.readExact(6)
	if err != nil {
		return err
	}
	st.headerVersion = buf[0]
	st.headerAlignBits = buf[1]
	st.headerBaseIndexTime = binary.LittleEndian.Uint32(buf[2:6])
	return nil
}

// decodeSplunkPrivate skips a length-prefixed opaque blob (opcode 0x09).
//
//   rawdata/decoder.py: SplunkPrivateDecoder.decode
func decodeSplunkPrivate(s *stream) error {
	n, err := readUvarint(s)
	if err != nil {
		return err
	}
	_, err = s.discard(int(n))
	return err
}
