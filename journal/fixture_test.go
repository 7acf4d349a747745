package journal

import "encoding/binary"

// Fixture builders used across this package's tests to assemble journal
// byte sequences by hand, the way encoding/decoder_test.go in the teacher
// package hand-assembles trace event byte sequences rather than depending
// on the Encoder under test.

func fixtureHeader(version, alignBits byte, baseIndexTime uint32) []byte {
	buf := make([]byte, 0, 7)
	buf = append(buf, byte(opHeader), version, alignBits)
	buf = binary.LittleEndian.AppendUint32(buf, baseIndexTime)
	return buf
}

func fixtureStringField(kind opcode, s string) []byte {
	buf := []byte{byte(kind)}
	buf = encodeUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// fixtureStateChange builds a state-change record from the individual
// optional fields; pass nil for host/source/sourceType to leave that bit
// unset, and baseTime nil to leave bit 0x01 unset.
func fixtureStateChange(host, source, sourceType *uint64, baseTime *int32) []byte {
	var nibble byte
	var body []byte
	if host != nil {
		nibble |= 0x08
		body = encodeUvarint(body, *host)
	}
	if source != nil {
		nibble |= 0x04
		body = encodeUvarint(body, *source)
	}
	if sourceType != nil {
		nibble |= 0x02
		body = encodeUvarint(body, *sourceType)
	}
	if baseTime != nil {
		nibble |= 0x01
		body = binary.LittleEndian.AppendUint32(body, uint32(*baseTime))
	}
	return append([]byte{0x10 | nibble}, body...)
}

func u64p(v uint64) *uint64 { return &v }
func i32p(v int32) *int32   { return &v }

// fixtureSplunkPrivate builds opcode 0x09: a length-prefixed opaque blob.
func fixtureSplunkPrivate(blob []byte) []byte {
	buf := []byte{byte(opSplunkPrivate)}
	buf = encodeUvarint(buf, uint64(len(blob)))
	return append(buf, blob...)
}

// legacyEventFixture parameterizes a legacy (opcode 1 or 2) event record,
// with no metadata records and no extended storage.
type legacyEventFixture struct {
	hashed          bool
	hash            [20]byte
	streamID        uint64
	streamOffset    uint64
	streamSubOffset uint64
	indexTimeDelta  int64
	subSeconds      uint64
	message         []byte
}

func (f legacyEventFixture) bytes() []byte {
	op := opOldstyleEvent
	if f.hashed {
		op = opOldstyleEventHash
	}

	var remaining []byte
	if f.hashed {
		remaining = append(remaining, f.hash[:]...)
	}
	remaining = binary.LittleEndian.AppendUint64(remaining, f.streamID)
	remaining = encodeUvarint(remaining, f.streamOffset)
	remaining = encodeUvarint(remaining, f.streamSubOffset)
	remaining = encodeVarint(remaining, f.indexTimeDelta)
	remaining = encodeUvarint(remaining, f.subSeconds)
	remaining = encodeUvarint(remaining, 0) // metadata_count
	remaining = append(remaining, f.message...)

	buf := []byte{byte(op)}
	buf = encodeUvarint(buf, uint64(len(remaining)))
	return append(buf, remaining...)
}
