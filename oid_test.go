package ber

import "testing"

func TestSplitFirstOIDArc(t *testing.T) {
	for idx, tc := range []struct {
		s0               uint64
		wantA0, wantA1 uint64
	}{
		{0, 0, 0},
		{39, 0, 39},
		{40, 1, 0},
		{79, 1, 39},
		{80, 2, 0},
		{113, 2, 33},
	} {
		a0, a1 := splitFirstOIDArc(tc.s0)
		if a0 != tc.wantA0 || a1 != tc.wantA1 {
			t.Errorf("%s[%d] failed: want (%d,%d), got (%d,%d)", t.Name(), idx, tc.wantA0, tc.wantA1, a0, a1)
		}
	}
}

func TestDecodeOID_seedVector(t *testing.T) {
	tags := newTagSet(Tag{Class: ClassUniversal, ID: TagOID})
	v, err := decodeOID(nil, NewSubstrate([]byte{0x2A, 0x03, 0x04}), tags, 3, nil, nil, false)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	want := []uint64{1, 2, 3, 4}
	if len(v.OIDArcs) != len(want) {
		t.Fatalf("%s failed [arc count]: want %v, got %v", t.Name(), want, v.OIDArcs)
	}
	for i := range want {
		if v.OIDArcs[i] != want[i] {
			t.Errorf("%s failed [arc %d]: want %d, got %d", t.Name(), i, want[i], v.OIDArcs[i])
		}
	}
}

func TestDecodeOID_rejectsLeadingZeroSubIdentifier(t *testing.T) {
	tags := newTagSet(Tag{Class: ClassUniversal, ID: TagOID})
	if _, err := decodeOID(nil, NewSubstrate([]byte{0x80, 0x01}), tags, 2, nil, nil, false); err == nil {
		t.Errorf("%s failed: expected 0x80 leading sub-identifier octet to error", t.Name())
	}
}

func TestDecodeRelativeOID_noArcCombination(t *testing.T) {
	tags := newTagSet(Tag{Class: ClassUniversal, ID: TagRelativeOID})
	v, err := decodeRelativeOID(nil, NewSubstrate([]byte{0x03, 0x04}), tags, 2, nil, nil, false)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	want := []uint64{3, 4}
	if len(v.OIDArcs) != len(want) || v.OIDArcs[0] != want[0] || v.OIDArcs[1] != want[1] {
		t.Errorf("%s failed: want %v, got %v", t.Name(), want, v.OIDArcs)
	}
}

func TestReadSubIdentifiers_rejectsTruncated(t *testing.T) {
	if _, err := readSubIdentifiers(NewSubstrate([]byte{0x81}), 1); err == nil {
		t.Errorf("%s failed: expected truncated continuation octet to error", t.Name())
	}
}
