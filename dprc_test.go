//go:build !ber_no_dprc

package ber

import "testing"

func TestDeprecatedCharStrings_registeredByDefault(t *testing.T) {
	for _, tag := range []int{TagVideotexString, TagGraphicString, TagGeneralString} {
		if _, ok := charStringTagIDs[tag]; !ok {
			t.Errorf("%s failed: tag %d not registered in the default build", t.Name(), tag)
		}
		key := tagSetKey(newTagSet(Tag{Class: ClassUniversal, ID: tag}))
		if _, ok := builtinTagMap[key]; !ok {
			t.Errorf("%s failed: tag %d missing from builtinTagMap", t.Name(), tag)
		}
	}
}
