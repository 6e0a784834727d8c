package ber

import "testing"

func TestKind_string(t *testing.T) {
	for idx, tc := range []struct {
		k    Kind
		want string
	}{
		{KindBoolean, "BOOLEAN"},
		{KindSequence, "SEQUENCE"},
		{KindSequenceOf, "SEQUENCE OF"},
		{KindChoice, "CHOICE"},
		{KindAny, "ANY"},
		{KindInvalid, "INVALID"},
	} {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
}

func TestValue_isConstructed(t *testing.T) {
	constructed := Value{Tags: newTagSet(Tag{Constructed: true})}
	primitive := Value{Tags: newTagSet(Tag{Constructed: false})}

	if !constructed.IsConstructed() {
		t.Errorf("%s failed: want true for a constructed tag", t.Name())
	}
	if primitive.IsConstructed() {
		t.Errorf("%s failed: want false for a primitive tag", t.Name())
	}
}
