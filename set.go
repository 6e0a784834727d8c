package ber

/*
set.go implements the SET/SET OF payload decoders (spec.md §4.4). SET
differs from SEQUENCE only in matching rule: children may arrive in any
order, so every slot's tag is looked up in the catalogue's globally
unique tag map rather than a from-here-forward window, and a slot
filled twice is a malformed value rather than an excess component
(spec.md invariant: "a catalogue's tag map is injective").
*/

func decodeSet(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugEvent(EventConstructed, "SET", length)

	if spec == nil || spec.Catalogue == nil {
		return decodeSchemalessRecord(d, sub, tags, length, opts, KindSet)
	}

	cat := spec.Catalogue
	global := cat.GlobalTagMap()
	filled := make([]bool, len(cat.Types))

	v := Value{Kind: KindSet, Tags: tags}

	err := walkSetChildren(d, sub, length, func(wireTag Tag) *Spec {
		idx, ok := global[tagSetKey(newTagSet(wireTag))]
		if !ok {
			return nil
		}
		return cat.Types[idx].Template
	}, func(child Value) error {
		idx, ok := global[tagSetKey(child.Tags)]
		if !ok {
			return ErrExcessComponents
		}
		if filled[idx] {
			return ErrMalformedValue
		}
		filled[idx] = true
		v.Children = append(v.Children, child)
		v.Names = append(v.Names, cat.Types[idx].Name)
		return nil
	})
	if err != nil {
		return Value{}, err
	}

	if missing := missingRequired(cat, v.Names); len(missing) > 0 {
		return Value{}, ErrMissingRequiredComponent
	}

	if opts.decodeOpenTypes() || (opts != nil && len(opts.OpenTypes) > 0) {
		if err := resolveOpenTypes(d, cat, &v, opts); err != nil {
			return Value{}, err
		}
	}

	return v, nil
}

func decodeSetOf(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugEvent(EventConstructed, "SET OF", length)

	var elem *Spec
	if spec != nil {
		elem = spec.Element
	}

	v := Value{Kind: KindSetOf, Tags: tags}
	err := walkChildren(d, sub, length, constSpec(elem), func(child Value) error {
		v.Children = append(v.Children, child)
		return nil
	})
	if err != nil {
		return Value{}, err
	}
	return v, nil
}
