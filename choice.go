package ber

/*
choice.go implements the CHOICE payload decoder (spec.md §4.4). CHOICE
is the one built-in type tlv.go's selectDecoder never matches by a
single expected tag (a Spec of Kind KindChoice is always forwarded
here regardless of what wire tag triggered it, see tlv.go): the
catalogue itself does the matching, either directly against the wire
tag already decoded (untagged CHOICE, the common case) or, when the
Spec carries an explicit wrapper tag, one layer further in.
*/

func decodeChoice(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugEvent(EventConstructed, "CHOICE", length)

	if spec == nil || spec.Catalogue == nil {
		return Value{}, mkerrf("CHOICE: decode requires a catalogue")
	}
	cat := spec.Catalogue

	if spec.Tag != nil {
		if !spec.Tag.Eq(tags.Outer()) {
			return Value{}, errorNoChoiceWrapperMatch
		}
		return decodeWrappedChoice(d, sub, tags, length, cat)
	}

	idx, ok := cat.GlobalTagMap()[tagSetKey(tags)]
	if !ok {
		return Value{}, errorNoChoiceMatch
	}

	alt := cat.Types[idx]
	decodeFn := d.typeMap[alt.Template.Kind]
	if decodeFn == nil {
		return Value{}, ErrUnknownTag
	}

	child, err := decodeFn(d, sub, tags, length, alt.Template, opts, allowEOO)
	if err != nil {
		return Value{}, err
	}

	return Value{
		Kind:      KindChoice,
		Tags:      tags,
		ChoiceTag: tags,
		Children:  []Value{child},
		Names:     []string{alt.Name},
	}, nil
}

/*
decodeWrappedChoice handles an explicitly-tagged CHOICE: the outer tag
already matched spec.Tag, so one nested TLV is decoded from the
content and matched against the catalogue as if it were untagged.
*/
func decodeWrappedChoice(d *itemDecoder, sub *Substrate, outer TagSet, length int, cat *Catalogue) (Value, error) {
	indefinite := length < 0
	inner, _, err := d.decodeOne(sub, &Spec{Kind: KindChoice, Catalogue: cat}, false)
	if err != nil {
		return Value{}, err
	}
	if indefinite {
		if _, err := consumeEOC(sub); err != nil {
			return Value{}, err
		}
	}

	inner.Tags = inner.Tags.prepend(outer.Outer())
	return inner, nil
}
