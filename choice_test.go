package ber

import "testing"

func choiceCatalogue() *Catalogue {
	return &Catalogue{Types: []NamedType{
		{Name: "num", Template: &Spec{Kind: KindInteger}},
		{Name: "flag", Template: &Spec{Kind: KindBoolean}},
	}}
}

func TestDecodeChoice_untaggedDispatchesByWireTag(t *testing.T) {
	cat := choiceCatalogue()
	spec := &Spec{Kind: KindChoice, Catalogue: cat}

	v, _, err := Decode([]byte{0x01, 0x01, 0xFF}, spec, nil)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if v.Kind != KindChoice || v.Names[0] != "flag" {
		t.Errorf("%s failed: want alternative \"flag\", got kind=%s names=%v", t.Name(), v.Kind, v.Names)
	}
	if !v.Children[0].Bool {
		t.Errorf("%s failed: want true, got %v", t.Name(), v.Children[0])
	}
}

func TestDecodeChoice_noAlternativeMatches(t *testing.T) {
	cat := choiceCatalogue()
	spec := &Spec{Kind: KindChoice, Catalogue: cat}
	if _, _, err := Decode([]byte{0x05, 0x00}, spec, nil); err == nil {
		t.Errorf("%s failed: expected NULL to match no CHOICE alternative", t.Name())
	}
}

func TestDecodeChoice_explicitWrapper(t *testing.T) {
	cat := choiceCatalogue()
	wrapperTag := &Tag{Class: ClassContextSpecific, Constructed: true, ID: 0}
	spec := &Spec{Kind: KindChoice, Catalogue: cat, Tag: wrapperTag}

	// [0] { INTEGER 7 }
	data := []byte{0xA0, 0x03, 0x02, 0x01, 0x07}
	v, _, err := Decode(data, spec, nil)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if v.Names[0] != "num" {
		t.Errorf("%s failed: want alternative \"num\", got %v", t.Name(), v.Names)
	}
	if !v.Tags.Outer().Eq(*wrapperTag) {
		t.Errorf("%s failed: outer tag not the explicit wrapper", t.Name())
	}
}

func TestDecodeChoice_wrongWrapperTagRejected(t *testing.T) {
	cat := choiceCatalogue()
	wrapperTag := &Tag{Class: ClassContextSpecific, Constructed: true, ID: 0}
	spec := &Spec{Kind: KindChoice, Catalogue: cat, Tag: wrapperTag}

	// tagged [1] instead of the expected [0]
	data := []byte{0xA1, 0x03, 0x02, 0x01, 0x07}
	if _, _, err := Decode(data, spec, nil); err == nil {
		t.Errorf("%s failed: expected a mismatched wrapper tag to error", t.Name())
	}
}

func TestDecodeChoice_requiresCatalogue(t *testing.T) {
	spec := &Spec{Kind: KindChoice}
	if _, _, err := Decode([]byte{0x01, 0x01, 0xFF}, spec, nil); err == nil {
		t.Errorf("%s failed: expected a missing catalogue to error", t.Name())
	}
}
