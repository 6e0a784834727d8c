package ber

import (
	"math/big"
	"testing"
)

func TestDecode_sequenceOfThreeIntegers(t *testing.T) {
	data := []byte{0x30, 0x09, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02, 0x02, 0x01, 0x03}

	v, rest, err := Decode(data, nil, nil)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if len(rest) != 0 {
		t.Errorf("%s failed [leftover bytes]: %d", t.Name(), len(rest))
	}
	if v.Kind != KindSequenceOf {
		t.Fatalf("%s failed [schemaless shape]: want %s, got %s", t.Name(), KindSequenceOf, v.Kind)
	}
	if len(v.Children) != 3 {
		t.Fatalf("%s failed [child count]: want 3, got %d", t.Name(), len(v.Children))
	}
	for idx, want := range []int64{1, 2, 3} {
		c := v.Children[idx]
		if c.Kind != KindInteger || c.Int.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("%s[%d] failed [child value]: want %d, got %v", t.Name(), idx, want, c.Int)
		}
	}
}

func TestDecode_heterogeneousRecordStaysSequence(t *testing.T) {
	// INTEGER 1, BOOLEAN true -> distinct child tag sets, so the
	// schemaless heuristic must keep this a record, not infer "Of".
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}

	v, _, err := Decode(data, nil, nil)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if v.Kind != KindSequence {
		t.Errorf("%s failed [schemaless shape]: want %s, got %s", t.Name(), KindSequence, v.Kind)
	}
}

func TestDecode_booleanSeedScenarios(t *testing.T) {
	for idx, tc := range []struct {
		data []byte
		want bool
	}{
		{[]byte{0x01, 0x01, 0xFF}, true},
		{[]byte{0x01, 0x01, 0x00}, false},
		{[]byte{0x01, 0x01, 0x7F}, true}, // BER-tolerant: any non-zero octet is true
	} {
		v, _, err := Decode(tc.data, nil, nil)
		if err != nil {
			t.Errorf("%s[%d] failed [decode]: %v", t.Name(), idx, err)
			continue
		}
		if v.Kind != KindBoolean || v.Bool != tc.want {
			t.Errorf("%s[%d] failed [value]: want %t, got %t", t.Name(), idx, tc.want, v.Bool)
		}
	}
}

func TestDecode_booleanDERRejectsNonCanonical(t *testing.T) {
	_, _, err := Decode([]byte{0x01, 0x01, 0x7F}, nil, &Options{Rule: DER})
	if err == nil {
		t.Errorf("%s failed: expected DER to reject a non-canonical BOOLEAN octet", t.Name())
	}
}

func TestDecode_nullSeedScenarios(t *testing.T) {
	v, _, err := Decode([]byte{0x05, 0x00}, nil, nil)
	if err != nil || v.Kind != KindNull {
		t.Errorf("%s failed [well-formed NULL]: %v", t.Name(), err)
	}

	if _, _, err := Decode([]byte{0x05, 0x01, 0x00}, nil, nil); err == nil {
		t.Errorf("%s failed: expected malformed NULL with nonzero length to error", t.Name())
	}
}

func TestDecode_oidSeedScenarios(t *testing.T) {
	v, _, err := Decode([]byte{0x06, 0x03, 0x2A, 0x03, 0x04}, nil, nil)
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

	if _, _, err := Decode([]byte{0x06, 0x02, 0x80, 0x01}, nil, nil); err == nil {
		t.Errorf("%s failed: expected 0x80 leading sub-identifier octet to be rejected", t.Name())
	}
}

func TestDecode_constructedIndefiniteOctetString(t *testing.T) {
	data := []byte{0x24, 0x80, 0x04, 0x02, 0xAA, 0xBB, 0x04, 0x02, 0xCC, 0xDD, 0x00, 0x00}
	v, rest, err := Decode(data, nil, &Options{Rule: BER})
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if len(rest) != 0 {
		t.Errorf("%s failed [leftover]: %d", t.Name(), len(rest))
	}
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	if string(v.Bytes) != string(want) {
		t.Errorf("%s failed [concatenation]: want % X, got % X", t.Name(), want, v.Bytes)
	}
}

func TestDecode_sequenceWithOpenType(t *testing.T) {
	nullOID := []byte{0x2A, 0x03, 0x04} // content of OID 1.2.3.4, reused as the governing key

	paramsHook := &OpenTypeHook{
		GoverningField: "algorithm",
		TypeMap: map[string]*Spec{
			"1.2.3.4": {Kind: KindNull},
		},
	}
	cat := &Catalogue{Types: []NamedType{
		{Name: "algorithm", Template: &Spec{Kind: KindOID}},
		{Name: "params", Template: &Spec{Kind: KindAny}, OpenType: paramsHook},
	}}
	spec := &Spec{Kind: KindSequence, Catalogue: cat}

	var body []byte
	body = append(body, 0x06, byte(len(nullOID)))
	body = append(body, nullOID...)
	body = append(body, 0x05, 0x00) // NULL, captured as ANY then resolved

	data := append([]byte{0x30, byte(len(body))}, body...)

	v, _, err := Decode(data, spec, &Options{DecodeOpenTypes: true})
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if v.Children[1].Kind != KindNull {
		t.Errorf("%s failed [open-type resolution]: want %s, got %s", t.Name(), KindNull, v.Children[1].Kind)
	}
}

func TestDecode_truncatedContentIsRejected(t *testing.T) {
	// declared length 2 but only one content octet follows before the
	// stream ends -- a malformed encoding, not a valid short read.
	if _, _, err := Decode([]byte{0x02, 0x02, 0x01}, nil, nil); err == nil {
		t.Errorf("%s failed: expected truncated INTEGER content to error", t.Name())
	}
}
