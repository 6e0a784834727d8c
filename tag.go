package ber

/*
tag.go implements the Tag triple described in spec.md §3: a (class,
format, id) tuple. Two tags are equal iff all three fields match.
*/

/*
Tag is a single ASN.1 tag: class, primitive/constructed format, and
the tag number. Long-form tag numbers (id >= 31) are represented the
same as short-form ones; only the wire encoding differs.
*/
type Tag struct {
	Class       int
	Constructed bool
	ID          int
}

/*
Eq returns true if the receiver and t agree on class, format and id.
*/
func (r Tag) Eq(t Tag) bool {
	return r.Class == t.Class && r.Constructed == t.Constructed && r.ID == t.ID
}

func (r Tag) String() string {
	form := "PRIMITIVE"
	if r.Constructed {
		form = "CONSTRUCTED"
	}
	return errorClassName(r.Class) + " " + form + " " + errorTagName(r.ID)
}

/*
isUniversal reports whether the tag belongs to the universal class,
i.e. it names a built-in ASN.1 type rather than an application,
context-specific, or private overlay.
*/
func (r Tag) isUniversal() bool { return r.Class == ClassUniversal }
