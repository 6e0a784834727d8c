package ber

/*
value.go defines the decoded-value representation. spec.md §1 treats
the ASN.1 type model (tag sets, named-type catalogues, constraint
objects, value containers) as an external collaborator; this file is
the minimal concrete container the decoder core needs in order to
return something to its caller. It intentionally carries no write/
encode side -- the encoder is explicitly out of scope.
*/

import "math/big"

/*
Kind discriminates the payload carried by a [Value]. Kind is distinct
from the wire tag: e.g. both Sequence and SequenceOf wear tag 16 and
are disambiguated only by type-id (spec.md §4.2).
*/
type Kind int

const (
	KindInvalid Kind = iota
	KindBoolean
	KindInteger
	KindEnumerated
	KindBitString
	KindOctetString
	KindNull
	KindOID
	KindRelativeOID
	KindObjectDescriptor
	KindReal
	KindCharacterString // UTF8String, IA5String, PrintableString, etc: surface differs, mechanics shared
	KindUsefulTime      // UTCTime, GeneralizedTime: surface differs, mechanics shared
	KindSequence        // record container: heterogeneous children, named-type catalogue
	KindSequenceOf      // homogeneous container
	KindSet
	KindSetOf
	KindChoice
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "BOOLEAN"
	case KindInteger:
		return "INTEGER"
	case KindEnumerated:
		return "ENUMERATED"
	case KindBitString:
		return "BIT STRING"
	case KindOctetString:
		return "OCTET STRING"
	case KindNull:
		return "NULL"
	case KindOID:
		return "OBJECT IDENTIFIER"
	case KindRelativeOID:
		return "RELATIVE-OID"
	case KindObjectDescriptor:
		return "ObjectDescriptor"
	case KindReal:
		return "REAL"
	case KindCharacterString:
		return "CharacterString"
	case KindUsefulTime:
		return "Time"
	case KindSequence:
		return "SEQUENCE"
	case KindSequenceOf:
		return "SEQUENCE OF"
	case KindSet:
		return "SET"
	case KindSetOf:
		return "SET OF"
	case KindChoice:
		return "CHOICE"
	case KindAny:
		return "ANY"
	default:
		return "INVALID"
	}
}

/*
RealValue is the decoded form of a REAL value (spec.md §4.3): either a
finite mantissa*2^exponent (binary encoding), a finite
mantissa*10^exponent (character encoding, see real.go's
decodeCharacterReal), or one of the IEEE-ish specials.
*/
type RealValue struct {
	Mantissa    *big.Int
	Exponent    int
	PlusInfinity, MinusInfinity bool
	NotANumber  bool
}

/*
Value is a tagged sum over the built-in ASN.1 universal types plus the
constructed overlays. Constructed variants own Children in wire order;
record variants (Sequence/Set) additionally carry Names, parallel to
Children, identifying each slot by the named-type catalogue that
produced it (empty for schemaless/homogeneous decodes).

Values are produced by a payload decoder, mutated only by the
immediate constructed assembler above them, and are to be treated as
immutable once returned to the caller (spec.md §3, Lifecycle).
*/
type Value struct {
	Kind Kind
	Tags TagSet

	// leaf payloads; only the field(s) matching Kind are meaningful.
	Bool       bool
	Int        *big.Int
	UnusedBits int // BitString: trailing unused bits in the final octet, 0-7
	Bytes      []byte
	StringID   string // which character-string/useful-time identifier (e.g. "ia5", "utf8", "utc")
	Real       RealValue
	OIDArcs    []uint64

	// constructed payloads.
	Children []Value
	Names    []string // parallel to Children for record containers

	// ChoiceTag identifies, for KindChoice, which alternative (by tag
	// set) was selected; the selected value is Children[0].
	ChoiceTag TagSet
}

/*
IsConstructed reports whether the value's outer tag was encoded in
constructed form.
*/
func (v Value) IsConstructed() bool { return v.Tags.Outer().Constructed }
