package journal

import (
	"bytes"
	"testing"
)

func TestStateDictionaryAppendAndLookup(t *testing.T) {
	st := newState()

	if got := st.addString(opNewHost, `first`); got != 1 {
		t.Fatalf(`addString #1 returned ordinal %d; want 1`, got)
	}
	if got := st.addString(opNewHost, `second`); got != 2 {
		t.Fatalf(`addString #2 returned ordinal %d; want 2`, got)
	}

	if got := st.lookup(opNewHost, 1); got != `first` {
		t.Fatalf(`lookup(1) = %q; want "first"`, got)
	}
	if got := st.lookup(opNewHost, 2); got != `second` {
		t.Fatalf(`lookup(2) = %q; want "second"`, got)
	}
}

func TestStateLookupZeroAndOutOfRange(t *testing.T) {
	st := newState()
	st.addString(opNewSource, `s1`)

	if got := st.lookup(opNewSource, 0); got != `` {
		t.Fatalf(`lookup(0) = %q; want ""`, got)
	}
	if got := st.lookup(opNewSource, 99); got != `` {
		t.Fatalf(`lookup(out of range) = %q; want ""`, got)
	}
	if got := st.lookup(opNewHost, 1); got != `` {
		t.Fatalf(`lookup(unknown kind) = %q; want ""`, got)
	}
}

func TestStateDerivedViewsTrackActiveIndex(t *testing.T) {
	st := newState()
	st.addString(opNewSource, `s1`)
	st.addString(opNewSource, `s2`)

	if got := st.source(); got != `` {
		t.Fatalf(`source() before activation = %q; want ""`, got)
	}

	st.activeSource = 2
	if got := st.source(); got != `s2` {
		t.Fatalf(`source() = %q; want "s2"`, got)
	}
}

func TestDecodeStateChangeOrderAndBits(t *testing.T) {
	bt := int32(1234)
	buf := fixtureStateChange(u64p(3), u64p(5), u64p(1), i32p(bt))
	s := newStream(bytes.NewReader(buf[1:]))
	st := newState()

	if err := decodeStateChange(s, st, buf[0]); err != nil {
		t.Fatalf(`decodeStateChange: %v`, err)
	}
	if st.activeHost != 3 {
		t.Fatalf(`activeHost = %d; want 3`, st.activeHost)
	}
	if st.activeSource != 5 {
		t.Fatalf(`activeSource = %d; want 5`, st.activeSource)
	}
	if st.activeSourceType != 1 {
		t.Fatalf(`activeSourceType = %d; want 1`, st.activeSourceType)
	}
	if st.baseTime != bt {
		t.Fatalf(`baseTime = %d; want %d`, st.baseTime, bt)
	}
}

func TestDecodeStateChangePartialBits(t *testing.T) {
	buf := fixtureStateChange(nil, u64p(9), nil, nil)
	s := newStream(bytes.NewReader(buf[1:]))
	st := newState()
	st.baseTime = 77 // must be left untouched

	if err := decodeStateChange(s, st, buf[0]); err != nil {
		t.Fatalf(`decodeStateChange: %v`, err)
	}
	if st.activeHost != 0 {
		t.Fatalf(`activeHost = %d; want 0 (bit unset)`, st.activeHost)
	}
	if st.activeSource != 9 {
		t.Fatalf(`activeSource = %d; want 9`, st.activeSource)
	}
	if st.baseTime != 77 {
		t.Fatalf(`baseTime = %d; want 77 (bit unset, untouched)`, st.baseTime)
	}
}

func TestDecodeHeaderDoesNotSetBaseTime(t *testing.T) {
	buf := fixtureHeader(3, 7, 0xdeadbeef)
	s := newStream(bytes.NewReader(buf[1:]))
	st := newState()

	if err := decodeHeader(s, st); err != nil {
		t.Fatalf(`decodeHeader: %v`, err)
	}
	if st.baseTime != 0 {
		t.Fatalf(`baseTime = %d; want 0 (Header never sets it)`, st.baseTime)
	}
	if st.headerVersion != 3 || st.headerAlignBits != 7 || st.headerBaseIndexTime != 0xdeadbeef {
		t.Fatalf(`header diagnostics = %d, %d, %#x; want 3, 7, 0xdeadbeef`,
			st.headerVersion, st.headerAlignBits, st.headerBaseIndexTime)
	}
}
