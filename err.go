package ber

/*
err.go contains error constructors and sentinel values used frequently
throughout this package. The sentinels correspond to the error kinds
enumerated in the decoder's design: SubstrateUnderrun, UnknownTag,
MalformedValue, MissingRequiredComponent, ExcessComponents, EndOfStream.
*/

import "fmt"

var (
	// ErrSubstrateUnderrun is yielded (never raised) when a read would
	// exceed currently buffered data. Recoverable in streaming mode,
	// fatal in one-shot mode.
	ErrSubstrateUnderrun error = mkerr("substrate underrun: not enough bytes buffered")

	// ErrUnknownTag means no decoder or spec branch matched the decoded
	// tag set.
	ErrUnknownTag error = mkerr("unknown tag: no decoder or spec branch matched")

	// ErrMalformedValue means the encoding is structurally invalid for
	// its declared type.
	ErrMalformedValue error = mkerr("malformed value")

	// ErrMissingRequiredComponent means a record's required-component
	// set was not fully assigned by the time its TLV was exhausted.
	ErrMissingRequiredComponent error = mkerr("missing required component")

	// ErrExcessComponents means a constructed value carried more
	// children than its catalogue accommodates.
	ErrExcessComponents error = mkerr("excess components")

	// ErrEndOfStream means the substrate was exhausted between
	// top-level values and no resume is possible.
	ErrEndOfStream error = mkerr("end of stream")

	errorNilSubstrate        error = mkerr("nil substrate")
	errorNilSpec             error = mkerr("nil spec")
	errorLengthMismatch      error = mkerr("declared length does not match consumed octets")
	errorIndefiniteForbidden error = mkerr("indefinite length not permitted under this encoding rule")
	errorTruncatedTag        error = mkerr("truncated long-form tag")
	errorTruncatedLength     error = mkerr("truncated length octets")
	errorReservedLength      error = mkerr("0xFF length octet is reserved")
	errorAmbiguousChoice       error = mkerr("ambiguous CHOICE: multiple alternatives match")
	errorNoChoiceMatch         error = mkerr("no CHOICE alternative matched the child's tag set")
	errorNoChoiceWrapperMatch  error = mkerr("CHOICE: outer tag does not match the explicit wrapper tag")
)

/*
underrunErr wraps [ErrSubstrateUnderrun] with how many more octets are
needed, when known. A caller inspecting it with errors.Is still matches
the sentinel.
*/
type underrunErr struct {
	need int
}

func (e *underrunErr) Error() string {
	if e.need > 0 {
		return fmt.Sprintf("%s (need %d more)", ErrSubstrateUnderrun.Error(), e.need)
	}
	return ErrSubstrateUnderrun.Error()
}

func (e *underrunErr) Unwrap() error { return ErrSubstrateUnderrun }

func errUnderrun(need int) error { return &underrunErr{need: need} }

func errorASN1Expect(field string, want, got any) error {
	return fmt.Errorf("%w: expected %s %v, got %v", ErrMalformedValue, field, want, got)
}

func errorTagName(tag int) string {
	if name, ok := TagNames[tag]; ok {
		return name
	}
	return "TAG(" + itoa(tag) + ")"
}

func errorClassName(class int) string {
	if name, ok := ClassNames[class]; ok {
		return name
	}
	return "CLASS(" + itoa(class) + ")"
}
