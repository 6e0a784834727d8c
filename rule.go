package ber

/*
rule.go contains the EncodingRule abstraction. CER and DER are decoded as
proper subsets of BER: the rule only tightens a handful of acceptance
checks (minimal length form, strict BOOLEAN octets, indefinite-length
prohibition under DER).
*/

/*
EncodingRule identifies which member of the BER family governs
acceptance checks during decode. The TLV state machine itself is
identical across all three; EncodingRule only gates the strict-mode
checks called out in spec.md (DER-strict length, DER-strict BOOLEAN).
*/
type EncodingRule int

const (
	invalidEncodingRule EncodingRule = iota - 1
	// BER is the permissive default: indefinite lengths and
	// BER-tolerant BOOLEAN octets (any non-zero byte is true) are
	// accepted.
	BER
	// CER additionally prefers indefinite-length constructed
	// encodings, but for decoding purposes behaves like BER.
	CER
	// DER rejects indefinite lengths, non-minimal length encodings,
	// and BOOLEAN octets other than 0x00/0xFF.
	DER
)

func (r EncodingRule) String() string {
	switch r {
	case BER:
		return "BER"
	case CER:
		return "CER"
	case DER:
		return "DER"
	default:
		return "INVALID RULE"
	}
}

/*
allowsIndefinite reports whether r permits indefinite-length
constructed encodings during decode.
*/
func (r EncodingRule) allowsIndefinite() bool { return r != DER }

/*
requiresMinimalLength reports whether r rejects non-minimal long-form
length encodings (e.g. 0x81 0x05 instead of the short form 0x05).
*/
func (r EncodingRule) requiresMinimalLength() bool { return r == DER }

/*
requiresStrictBoolean reports whether r requires BOOLEAN content
octets to be exactly 0x00 or 0xFF.
*/
func (r EncodingRule) requiresStrictBoolean() bool { return r == DER }
