package ber

/*
tagset.go implements TagSet: the ordered chain of tags recording the
explicit tag history applied to a value, per spec.md §3. Concatenation
is well-defined: prepending a tag extends the chain outermost-first.
*/

import "golang.org/x/exp/slices"

/*
TagSet is an ordered, outermost-first chain of [Tag] values. The last
element is the base tag seen on the wire for the underlying value: its
universal tag, or the implicit tag that replaced it; any preceding
elements are explicit tags wrapping it.
*/
type TagSet []Tag

/*
newTagSet starts a fresh single-element tag set, used when no tag set
was threaded in from a recursive caller (spec.md §4.2, tag decoding).
*/
func newTagSet(t Tag) TagSet { return TagSet{t} }

/*
prepend returns a new TagSet with t placed outermost, leaving the
receiver untouched. This implements the "freshly-decoded tag is
prepended to [the caller-supplied tag set]" rule from spec.md §4.2.
*/
func (r TagSet) prepend(t Tag) TagSet {
	out := make(TagSet, 0, len(r)+1)
	out = append(out, t)
	out = append(out, r...)
	return out
}

/*
Base returns the innermost (base) tag of the chain, or the zero Tag if
the set is empty.
*/
func (r TagSet) Base() Tag {
	if len(r) == 0 {
		return Tag{}
	}
	return r[len(r)-1]
}

/*
Outer returns the outermost tag of the chain -- the first tag observed
on the wire -- or the zero Tag if the set is empty.
*/
func (r TagSet) Outer() Tag {
	if len(r) == 0 {
		return Tag{}
	}
	return r[0]
}

/*
Eq reports whether two tag sets are identical, element for element.
*/
func (r TagSet) Eq(o TagSet) bool {
	return slices.EqualFunc(r, o, Tag.Eq)
}

func (r TagSet) String() string {
	var parts []string
	for _, t := range r {
		parts = append(parts, t.String())
	}
	return join(parts, " < ")
}

/*
tagSetKey renders a TagSet into a comparable map key for dispatch
tables (spec.md §4.2's tagMap[tagSet] lookup).
*/
func tagSetKey(ts TagSet) string {
	var b []byte
	for _, t := range ts {
		b = append(b, byte(t.Class), boolByte(t.Constructed))
		b = appendVarint(b, t.ID)
	}
	return string(b)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
