package ber

/*
sequence.go implements the SEQUENCE/SEQUENCE OF payload decoders
(spec.md §4.4): a record walked against a named-type catalogue in
declared order, or a homogeneous run of one element template.
Both share the child-iteration loop (constructed.go); this file only
supplies the per-child catalogue bookkeeping.
*/

func decodeSequence(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugEvent(EventConstructed, "SEQUENCE", length)

	if spec == nil || spec.Catalogue == nil {
		return decodeSchemalessRecord(d, sub, tags, length, opts, KindSequence)
	}

	v := Value{Kind: KindSequence, Tags: tags}
	cat := spec.Catalogue
	slot := 0 // next catalogue index a found child could land on

	err := walkChildren(d, sub, length, sequenceChildSpec(cat, &slot), func(child Value) error {
		idx, ok := matchSequenceSlot(cat, slot, child.Tags)
		if !ok {
			return ErrExcessComponents
		}
		v.Children = append(v.Children, child)
		v.Names = append(v.Names, cat.Types[idx].Name)
		slot = idx + 1
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

func decodeSequenceOf(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugEvent(EventConstructed, "SEQUENCE OF", length)

	var elem *Spec
	if spec != nil {
		elem = spec.Element
	}

	v := Value{Kind: KindSequenceOf, Tags: tags}
	err := walkChildren(d, sub, length, constSpec(elem), func(child Value) error {
		v.Children = append(v.Children, child)
		return nil
	})
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

/*
matchSequenceSlot resolves which catalogue slot a decoded child's tag
set occupies, starting the search at slot (the next in-order position)
and scanning forward over optional/defaulted slots the child's tag set
might belong to instead (spec.md §4.4, "near-position resolution").
*/
func matchSequenceSlot(cat *Catalogue, from int, tags TagSet) (int, bool) {
	m := cat.TagMapFrom(from)
	if idx, ok := m[tagSetKey(tags)]; ok {
		return idx, true
	}
	// an untagged Any or Choice slot has no fixed wire tag to register
	// in the map at all (its governing field picks the real type later,
	// per spec.md §4.4); whatever value occupies the current position
	// belongs to it.
	if from < len(cat.Types) {
		tpl := cat.Types[from].Template
		if tpl.Tag == nil && (tpl.Kind == KindAny || tpl.Kind == KindChoice) {
			return from, true
		}
	}
	return -1, false
}

/*
sequenceChildSpec returns a function producing the catalogue template
to guide the decode of the next child, advancing past optional slots
that were skipped. Since walkChildren cannot know the match outcome
before decoding, the spec handed to each child is the *union* hint: the
template at the current slot if present, else nil (schemaless) so the
TLV layer can still fall back to the built-in tag map for an
unexpected-but-decodable child.
*/
func sequenceChildSpec(cat *Catalogue, slot *int) func() *Spec {
	return func() *Spec {
		if *slot >= len(cat.Types) {
			return nil
		}
		return cat.Types[*slot].Template
	}
}

func constSpec(s *Spec) func() *Spec { return func() *Spec { return s } }

func missingRequired(cat *Catalogue, gotNames []string) []string {
	got := make(map[string]bool, len(gotNames))
	for _, n := range gotNames {
		got[n] = true
	}
	var missing []string
	for _, idx := range cat.RequiredComponents() {
		nt := cat.Types[idx]
		if !got[nt.Name] {
			missing = append(missing, nt.Name)
		}
	}
	return missing
}

/*
decodeSchemalessRecord implements the heuristic fallback of spec.md
§4.4 "Structural disambiguation without a catalogue": every child is
decoded without a guiding template (so its own tag or a TryAsExplicitTag
fallback selects its Kind), Names is left empty so the caller can tell
a schemaless decode from a catalogue-guided one, and the container
shape is inferred only after every child is in hand: a record
(Sequence/Set) if two or more distinct child tag sets were observed,
else a homogeneous container (SequenceOf/SetOf).
*/
func decodeSchemalessRecord(d *itemDecoder, sub *Substrate, tags TagSet, length int, opts *Options, recordKind Kind) (Value, error) {
	v := Value{Tags: tags}
	err := walkChildren(d, sub, length, constSpec(nil), func(child Value) error {
		v.Children = append(v.Children, child)
		return nil
	})
	if err != nil {
		return Value{}, err
	}
	v.Kind = inferContainerKind(recordKind, v.Children)
	return v, nil
}

/*
inferContainerKind implements the schemaless shape heuristic of
spec.md §4.4/§8 property 6.
*/
func inferContainerKind(recordKind Kind, children []Value) Kind {
	for i := 1; i < len(children); i++ {
		if !children[i].Tags.Eq(children[0].Tags) {
			return recordKind
		}
	}
	switch recordKind {
	case KindSequence:
		return KindSequenceOf
	case KindSet:
		return KindSetOf
	default:
		return recordKind
	}
}
