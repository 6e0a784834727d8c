package ber

import (
	"errors"
	"testing"
)

func TestUnderrunErr_unwrapsToSentinel(t *testing.T) {
	err := errUnderrun(3)
	if !errors.Is(err, ErrSubstrateUnderrun) {
		t.Errorf("%s failed: underrunErr does not unwrap to ErrSubstrateUnderrun", t.Name())
	}
	if err.Error() == "" {
		t.Errorf("%s failed: underrunErr produced an empty message", t.Name())
	}
}

func TestErrorNameHelpers_fallBackForUnknownValues(t *testing.T) {
	if got := errorTagName(9999); got != "TAG(9999)" {
		t.Errorf("%s failed [unknown tag name]: got %q", t.Name(), got)
	}
	if got := errorClassName(9999); got != "CLASS(9999)" {
		t.Errorf("%s failed [unknown class name]: got %q", t.Name(), got)
	}
	if got := errorTagName(TagInteger); got != "INTEGER" {
		t.Errorf("%s failed [known tag name]: got %q", t.Name(), got)
	}
}

func TestErrorASN1Expect_wrapsMalformedValue(t *testing.T) {
	err := errorASN1Expect("consumed octets", 4, 2)
	if !errors.Is(err, ErrMalformedValue) {
		t.Errorf("%s failed: errorASN1Expect does not wrap ErrMalformedValue", t.Name())
	}
}
