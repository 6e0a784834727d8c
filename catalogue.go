package ber

/*
catalogue.go implements the named-type catalogue and open-type hook of
spec.md §3: the caller-supplied schema that disambiguates types and
resolves implicit tagging. These are modeled as plain data (per the
"dispatch tables as data" design note) rather than through
polymorphism on a base class, so a caller can build one without
subclassing anything.
*/

/*
Spec is a type template: the unit a caller hands to the decoder to
steer dispatch, tagging and (for constructed types) catalogue lookup.
It plays the role the spec.md data model calls a "type-template".
*/
type Spec struct {
	// Kind selects the concrete payload decoder. Required whenever a
	// Spec is present, since the wire tag alone cannot disambiguate
	// Sequence/SequenceOf, Set/SetOf, or Choice/Any (spec.md §4.2).
	Kind Kind

	// Tag, when non-nil, overrides the base universal tag, implying
	// either implicit (Explicit==false) or explicit (Explicit==true)
	// tagging.
	Tag      *Tag
	Explicit bool

	// Catalogue drives Sequence/Set/Choice decode.
	Catalogue *Catalogue

	// Element is the single-element template for SequenceOf/SetOf.
	Element *Spec

	// StringID names the concrete character-string/useful-time
	// identifier ("ia5", "utf8", "utc", "generalized", ...).
	StringID string
}

/*
effectiveTag returns the Tag this spec expects on the wire for
its outermost layer: either the caller's override (implicit or
explicit) or, absent one, the natural universal tag for Kind.
*/
func (s *Spec) effectiveTag() Tag {
	if s != nil && s.Tag != nil {
		return *s.Tag
	}
	return universalTagFor(s.kindOrInvalid())
}

func (s *Spec) kindOrInvalid() Kind {
	if s == nil {
		return KindInvalid
	}
	return s.Kind
}

/*
NamedType is one slot ("row") in a [Catalogue]: a name, a type
template, and the optional/default/open-type metadata spec.md's data
model requires.
*/
type NamedType struct {
	Name     string
	Template *Spec
	Optional bool
	Default  bool
	OpenType *OpenTypeHook
}

/*
OpenTypeHook names another field in the same record whose decoded
value selects the concrete schema to decode the current field's inner
octets with (spec.md §3, §4.4).
*/
type OpenTypeHook struct {
	GoverningField string
	// TypeMap is keyed by the stringified governing value (e.g. an
	// OID's dotted-decimal form).
	TypeMap map[string]*Spec
	// Default is used when decode_open_types is enabled but neither
	// the caller's open_types map nor TypeMap has an entry.
	Default *Spec
}

/*
Catalogue is the named-type catalogue of spec.md §3: an ordered list
of (name, type-template, optional-flag, default-flag, open-type-hook)
tuples, plus the derived indexes the constructed assembler needs.
*/
type Catalogue struct {
	Types []NamedType
}

/*
RequiredComponents returns the indices of slots that are neither
optional nor defaulted -- the set that must be filled before a record
value is yielded (spec.md invariant I4).
*/
func (c *Catalogue) RequiredComponents() []int {
	var req []int
	for i, nt := range c.Types {
		if !nt.Optional && !nt.Default {
			req = append(req, i)
		}
	}
	return req
}

/*
TagMapFrom returns a tag-set-key -> slot-index map restricted to slots
from idx onward, used by Sequence decode to resolve an optional or
defaulted slot's actual position (spec.md §4.4).
*/
func (c *Catalogue) TagMapFrom(idx int) map[string]int {
	m := make(map[string]int)
	for i := idx; i < len(c.Types); i++ {
		tag := c.Types[i].Template.effectiveTag()
		m[tagSetKey(newTagSet(tag))] = i
	}
	return m
}

/*
GlobalTagMap returns an order-independent tag-set-key -> slot-index
map over every slot, used by Set decode (spec.md §4.4: "the lookup
uses the catalogue's globally unique tag map").
*/
func (c *Catalogue) GlobalTagMap() map[string]int {
	return c.TagMapFrom(0)
}

/*
IndexByName returns the slot index for name, or -1.
*/
func (c *Catalogue) IndexByName(name string) int {
	for i, nt := range c.Types {
		if nt.Name == name {
			return i
		}
	}
	return -1
}
