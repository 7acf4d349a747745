package journal

import "testing"

func TestDecodeUvarint(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		v    uint64
		n    int
	}{
		{`zero`, []byte{0x00}, 0, 1},
		{`one byte max`, []byte{0x7f}, 127, 1},
		{`two bytes`, []byte{0x80, 0x01}, 128, 2},
		{`trailing garbage ignored`, []byte{0x01, 0xff, 0xff}, 1, 1},
		{`ten byte max uint64`, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, ^uint64(0), 10},
		{`truncated`, []byte{0x80, 0x80}, 0, -3},
		{`empty`, nil, 0, -1},
		{`malformed eleven continuations`, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}, 0, -11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, n := decodeUvarint(tc.in)
			if v != tc.v || n != tc.n {
				t.Fatalf(`decodeUvarint(%v) = %d, %d; want %d, %d`, tc.in, v, n, tc.v, tc.n)
			}
		})
	}
}

func TestDecodeVarintZigzag(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		v    int64
	}{
		{`zero`, []byte{0x00}, 0},
		{`minus one`, []byte{0x01}, -1},
		{`one`, []byte{0x02}, 1},
		{`minus two`, []byte{0x03}, -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, n := decodeVarint(tc.in)
			if v != tc.v || n != 1 {
				t.Fatalf(`decodeVarint(%v) = %d, %d; want %d, 1`, tc.in, v, n)
			}
		})
	}
}

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 2, 127, 128, 129, 255, 256,
		1 << 14, 1<<14 - 1, 1 << 21, 1 << 28, 1 << 35,
		1 << 42, 1 << 49, 1 << 56, 1 << 63,
		^uint64(0), ^uint64(0) - 1,
	}
	for _, v := range values {
		enc := encodeUvarint(nil, v)
		if len(enc) > maxVarintBytes {
			t.Fatalf(`encodeUvarint(%d) produced %d bytes, exceeding maxVarintBytes`, v, len(enc))
		}
		got, n := decodeUvarint(enc)
		if got != v || n != len(enc) {
			t.Fatalf(`round trip of %d: decode(encode(v)) = %d, %d; want %d, %d`, v, got, n, v, len(enc))
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, -2, 1 << 20, -(1 << 20),
		1<<62 - 1, -(1 << 62), 1<<63 - 1, -1 << 63,
	}
	for _, v := range values {
		enc := encodeVarint(nil, v)
		got, n := decodeVarint(enc)
		if got != v || n != len(enc) {
			t.Fatalf(`round trip of %d: decode(encode(v)) = %d, %d; want %d, %d`, v, got, n, v, len(enc))
		}
	}
}

func TestVarintFromPeekDistinguishesEOFFromMalformed(t *testing.T) {
	_, _, err := varintFromPeek([]byte{0x80, 0x80})
	if err == nil {
		t.Fatal(`want error for truncated peek`)
	}

	tenContinuations := make([]byte, maxVarintBytes)
	for i := range tenContinuations {
		tenContinuations[i] = 0x80
	}
	_, _, err = varintFromPeek(tenContinuations)
	if err != ErrBadVarint {
		t.Fatalf(`varintFromPeek(10 continuation bytes) = %v; want ErrBadVarint`, err)
	}
}
