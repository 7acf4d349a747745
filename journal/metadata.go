package journal

// metaExtraByTag is the 16-entry type table indexed by the low 4 bits of a
// metadata record's shifted key, giving the number of trailing signed
// varints that accompany it. Tags 1, 5, 13 are reserved placeholders with
// extra=0, per SPEC_FULL.md §4's resolution of spec.md's open question.
//
//   rawdata/metadata.py: VALUES_IN_ORDER
var metaExtraByTag = [16]int{
	0:  1, // String
	1:  0, // reserved
	2:  1, // Float32
	3:  2, // Float32+sigfigs
	4:  2, // Offset+Len
	5:  0, // reserved
	6:  2, // Float32+precision
	7:  3, // Float32+sigfigs+precision
	8:  1, // Unsigned
	9:  1, // Signed
	10: 1, // Float64
	11: 2, // Float64+sigfigs
	12: 3, // Offset+Len+Encoding
	13: 0, // reserved
	14: 2, // Float64+precision
	15: 0, // Float64+sigfigs+precision
}

// readMetadataRecord consumes one typed metadata record from the front of
// s and discards it; the journal format requires parsing these for correct
// framing, but individual values are not surfaced on event.Event (see
// spec.md §9). eventOpcode is the opcode byte of the event the record
// belongs to, which determines both the key shift and whether a type tag
// is even present.
//
//   rawdata/metadata.py: read_metadata
//
// The branch below resolves spec.md's open question about whether
// opcodes 3-35 consult the type table: the reference implementation
// always does, for every opcode above 2. Only legacy events (<=2) skip
// the table and hardcode one trailing varint.
func readMetadataRecord(s *stream, eventOpcode opcode, strict bool) error {
	metaKey, err := readUvarint(s)
	if err != nil {
		return err
	}

	var extra int
	switch {
	case eventOpcode <= opOldstyleEventHash:
		extra = 1
	default:
		if eventOpcode < 36 {
			metaKey <<= 2
		}
		tag := metaKey & 0xF
		if strict && isReservedMetaTag(tag) {
			return ErrReservedMetadataTag
		}
		extra = metaExtraByTag[tag]
	}

	for i := 0; i < extra; i++ {
		if _, err := readVarint(s); err != nil {
			return err
		}
	}
	return nil
}

func isReservedMetaTag(tag uint64) bool {
	switch tag {
	case 1, 5, 13:
		return true
	}
	return false
}
