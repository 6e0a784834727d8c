package ber

/*
dispatch.go builds the tag-set -> decoder and type-id -> decoder
dispatch tables described in spec.md §2 ("Dispatch tables") and §4.2.
They are built once and are read-only; a per-call override (the
Options.TagMap / Options.TypeMap fields) is merged onto a *copy* so the
shared base tables are never mutated (spec.md §5: "Dispatch tables are
read-only after construction and safe to share across decoders").
*/

import "golang.org/x/exp/maps"

/*
payloadDecoder is the shape every L3/L4 decoder implements: given the
substrate positioned at the start of a value's content, the value's
tag set, its declared length (-1 for indefinite), the governing spec
(nil if schemaless), the call options, and the single-item decoder to
recurse through for constructed children, produce a [Value].
*/
type payloadDecoder func(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error)

/*
universalTagFor returns the natural (base) universal [Tag] for a
[Kind], used when a [Spec] does not override the tag and when building
the built-in tag map.
*/
func universalTagFor(k Kind) Tag {
	id, constructed := -1, false
	switch k {
	case KindBoolean:
		id = TagBoolean
	case KindInteger:
		id = TagInteger
	case KindEnumerated:
		id = TagEnum
	case KindBitString:
		id = TagBitString
	case KindOctetString:
		id = TagOctetString
	case KindNull:
		id = TagNull
	case KindOID:
		id = TagOID
	case KindRelativeOID:
		id = TagRelativeOID
	case KindObjectDescriptor:
		id = TagObjectDescriptor
	case KindReal:
		id = TagReal
	case KindSequence, KindSequenceOf:
		id, constructed = TagSequence, true
	case KindSet, KindSetOf:
		id, constructed = TagSet, true
	}
	return Tag{Class: ClassUniversal, Constructed: constructed, ID: id}
}

/*
builtinTagMap maps a single-element universal TagSet key to the Kind
decoded without a spec present (spec.md §4.2, "Without spec" lookup).
Sequence/Set win over their "Of" counterparts here; schemaless decode
disambiguates homogeneous-vs-record containers structurally after the
fact (see sequence.go's inferContainerKind), not through this table.
*/
var builtinTagMap = map[string]Kind{
	tagSetKey(newTagSet(universalTagFor(KindBoolean))):          KindBoolean,
	tagSetKey(newTagSet(universalTagFor(KindInteger))):          KindInteger,
	tagSetKey(newTagSet(Tag{ClassUniversal, false, TagEnum})):    KindEnumerated,
	tagSetKey(newTagSet(universalTagFor(KindBitString))):        KindBitString,
	tagSetKey(newTagSet(universalTagFor(KindOctetString))):      KindOctetString,
	tagSetKey(newTagSet(universalTagFor(KindNull))):             KindNull,
	tagSetKey(newTagSet(universalTagFor(KindOID))):              KindOID,
	tagSetKey(newTagSet(universalTagFor(KindRelativeOID))):      KindRelativeOID,
	tagSetKey(newTagSet(universalTagFor(KindObjectDescriptor))): KindObjectDescriptor,
	tagSetKey(newTagSet(universalTagFor(KindReal))):             KindReal,
	tagSetKey(newTagSet(Tag{ClassUniversal, true, TagSequence})): KindSequence,
	tagSetKey(newTagSet(Tag{ClassUniversal, true, TagSet})):      KindSet,
}

func init() {
	for id, name := range charStringTagIDs {
		builtinTagMap[tagSetKey(newTagSet(Tag{ClassUniversal, false, id}))] = KindCharacterString
		charStringKindByTag[id] = name
	}
	for id, name := range usefulTimeTagIDs {
		builtinTagMap[tagSetKey(newTagSet(Tag{ClassUniversal, false, id}))] = KindUsefulTime
		usefulTimeKindByTag[id] = name
	}
}

/*
builtinTypeMap maps a [Kind] to its payload decoder function. This is
the "type-id -> decoder" table of spec.md §2/§4.2, consulted after a
[Spec] has selected a Kind (resolving the Sequence-vs-SequenceOf,
Set-vs-SetOf, Choice-vs-Any ambiguity).
*/
var builtinTypeMap = map[Kind]payloadDecoder{
	KindBoolean:          decodeBoolean,
	KindInteger:          decodeInteger,
	KindEnumerated:       decodeInteger,
	KindBitString:        decodeBitString,
	KindOctetString:      decodeOctetString,
	KindNull:             decodeNull,
	KindOID:              decodeOID,
	KindRelativeOID:      decodeRelativeOID,
	KindObjectDescriptor: decodeOctetString,
	KindReal:             decodeReal,
	KindCharacterString:  decodeOctetString,
	KindUsefulTime:       decodeOctetString,
	KindSequence:         decodeSequence,
	KindSequenceOf:       decodeSequenceOf,
	KindSet:              decodeSet,
	KindSetOf:            decodeSetOf,
	KindChoice:           decodeChoice,
	KindAny:              decodeAny,
}

/*
resolveTagMap returns the effective tag map for a call: the built-in
table, or a clone with the caller's override merged on top.
*/
func resolveTagMap(o *Options) map[string]Kind {
	if o == nil || len(o.TagMap) == 0 {
		return builtinTagMap
	}
	merged := maps.Clone(builtinTagMap)
	maps.Copy(merged, o.TagMap)
	return merged
}

/*
resolveTypeMap returns the effective type map for a call: the built-in
table, or a clone with the caller's override merged on top.
*/
func resolveTypeMap(o *Options) map[Kind]payloadDecoder {
	if o == nil || len(o.TypeMap) == 0 {
		return builtinTypeMap
	}
	merged := maps.Clone(builtinTypeMap)
	maps.Copy(merged, o.TypeMap)
	return merged
}
