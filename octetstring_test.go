package ber

import "testing"

func TestDecodeOctetString_primitive(t *testing.T) {
	tags := newTagSet(Tag{Class: ClassUniversal, Constructed: false, ID: TagOctetString})
	v, err := decodeOctetString(nil, NewSubstrate([]byte{0x01, 0x02, 0x03}), tags, 3, nil, nil, false)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if v.Kind != KindOctetString || string(v.Bytes) != "\x01\x02\x03" {
		t.Errorf("%s failed: got kind=%s bytes=% X", t.Name(), v.Kind, v.Bytes)
	}
}

func TestDecodeOctetString_constructedIndefiniteConcatenation(t *testing.T) {
	inner := []byte{0x04, 0x02, 0xAA, 0xBB, 0x04, 0x02, 0xCC, 0xDD, 0x00, 0x00}
	tags := newTagSet(Tag{Class: ClassUniversal, Constructed: true, ID: TagOctetString})
	d := newItemDecoder(&Options{})

	v, err := decodeOctetString(d, NewSubstrate(inner), tags, -1, nil, &Options{}, false)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if string(v.Bytes) != "\xAA\xBB\xCC\xDD" {
		t.Errorf("%s failed: want AABBCCDD, got % X", t.Name(), v.Bytes)
	}
}

func TestDecodeOctetString_viaCharacterStringAndUsefulTimeTags(t *testing.T) {
	ia5Tags := newTagSet(Tag{Class: ClassUniversal, ID: TagIA5String})
	v, err := decodeOctetString(nil, NewSubstrate([]byte("hi")), ia5Tags, 2, nil, nil, false)
	if err != nil {
		t.Fatalf("%s failed [IA5String decode]: %v", t.Name(), err)
	}
	if v.Kind != KindCharacterString || v.StringID != "ia5" {
		t.Errorf("%s failed [IA5String]: kind=%s stringID=%q", t.Name(), v.Kind, v.StringID)
	}

	utcTags := newTagSet(Tag{Class: ClassUniversal, ID: TagUTCTime})
	v, err = decodeOctetString(nil, NewSubstrate([]byte("250101000000Z")), utcTags, 13, nil, nil, false)
	if err != nil {
		t.Fatalf("%s failed [UTCTime decode]: %v", t.Name(), err)
	}
	if v.Kind != KindUsefulTime || v.StringID != "utc" {
		t.Errorf("%s failed [UTCTime]: kind=%s stringID=%q", t.Name(), v.Kind, v.StringID)
	}

	odTags := newTagSet(Tag{Class: ClassUniversal, ID: TagObjectDescriptor})
	v, err = decodeOctetString(nil, NewSubstrate([]byte("desc")), odTags, 4, nil, nil, false)
	if err != nil {
		t.Fatalf("%s failed [ObjectDescriptor decode]: %v", t.Name(), err)
	}
	if v.Kind != KindObjectDescriptor {
		t.Errorf("%s failed [ObjectDescriptor]: kind=%s", t.Name(), v.Kind)
	}
}

func TestFragmentBytes_flattensNestedConstructed(t *testing.T) {
	leaf1 := Value{Bytes: []byte{0x01}}
	leaf2 := Value{Bytes: []byte{0x02}}
	nested := Value{Children: []Value{leaf1, leaf2}}
	if string(fragmentBytes(nested)) != "\x01\x02" {
		t.Errorf("%s failed: got % X", t.Name(), fragmentBytes(nested))
	}
}
