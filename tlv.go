package ber

/*
tlv.go implements the single-item TLV state machine (L2) of spec.md
§4.2: DecodeTag -> DecodeLength -> GetValueDecoder -> (ByTag|BySpec) ->
DecodeValue, with fallback states TryAsExplicitTag, DumpRawValue (folded
into the Any decoder), ErrorCondition and Stop.

Rather than a stackful coroutine, this machine follows the design note
in spec.md §9: mark the substrate position at entry, and when the tag,
length or dispatch step fails (an underrun included), rewind to the
mark and return the error unchanged. An error from inside the payload
decoder is returned without rewinding, since nested decodes overwrite
the single mark; the streaming driver (iterator.go) restores its own
snapshot so the caller can retry the *whole* value once more data
arrives.
*/

/*
itemDecoder is the single-item decoder. It is the "back-reference to
the single-item decoder for recursion" every payload decoder receives,
per spec.md §4.3/§4.4. Its dispatch tables are read-only after
construction and safe to share; it carries no other state, so it is
safe to reuse across top-level values in the same stream.
*/
type itemDecoder struct {
	tagMap  map[string]Kind
	typeMap map[Kind]payloadDecoder
	opts    *Options
}

func newItemDecoder(o *Options) *itemDecoder {
	return &itemDecoder{tagMap: resolveTagMap(o), typeMap: resolveTypeMap(o), opts: o}
}

/*
decodeOne decodes exactly one TLV from sub, optionally guided by spec.
allowEOO permits the end-of-contents sentinel to appear in place of a
value at this recursion level (only true for children of an
indefinite-length constructed value). It returns (value, eoo, err)
where eoo is true iff the end-of-contents sentinel was consumed
instead of a value.
*/
func (d *itemDecoder) decodeOne(sub *Substrate, spec *Spec, allowEOO bool) (Value, bool, error) {
	sub.Mark()
	debugEnter(spec, allowEOO)

	if allowEOO {
		peek, err := sub.Peek(2)
		if err != nil {
			sub.RewindToMark()
			return Value{}, false, err
		}
		if peek[0] == 0x00 && peek[1] == 0x00 {
			sub.Read(2)
			debugEvent(EventIO, "end-of-contents consumed")
			return Value{}, true, nil
		}
	}

	tag, err := decodeTagOctets(sub)
	if err != nil {
		sub.RewindToMark()
		return Value{}, false, err
	}

	length, indefinite, err := decodeLengthOctets(sub, d.opts.rule())
	if err != nil {
		sub.RewindToMark()
		return Value{}, false, err
	}

	tags := newTagSet(tag)
	debugEvent(EventDispatch, tags.String(), length, indefinite)

	if spec != nil && spec.Explicit && spec.Tag != nil && spec.Kind != KindChoice {
		if !spec.Tag.Eq(tag) {
			sub.RewindToMark()
			return Value{}, false, ErrUnknownTag
		}
		v, err := withConsumedCheck(sub, length, indefinite, func() (Value, error) {
			return d.decodeExplicitWrapper(sub, tag, indefinite, spec)
		})
		return v, false, err
	}

	kind, chosen, fellBack, err := d.selectDecoder(tag, spec)
	if err != nil {
		sub.RewindToMark()
		return Value{}, false, err
	}
	if fellBack {
		chosen = nil // lost the caller's catalogue; decode schemaless
	}

	if kind == kindTryExplicit {
		v, err := withConsumedCheck(sub, length, indefinite, func() (Value, error) {
			return d.tryAsExplicitTag(sub, tag, tags, length, indefinite)
		})
		return v, false, err
	}

	decodeFn := d.typeMap[kind]
	if decodeFn == nil {
		return Value{}, false, ErrUnknownTag
	}

	v, err := withConsumedCheck(sub, length, indefinite, func() (Value, error) {
		return decodeFn(d, sub, tags, lengthOrSentinel(length, indefinite), chosen, d.opts, false)
	})
	if err != nil {
		return Value{}, false, err
	}

	return v, false, nil
}

/*
withConsumedCheck runs fn and, for a definite-length value, verifies it
consumed exactly the declared content length -- guarding every dispatch
path (ordinary type decode, TryAsExplicitTag, and the explicit-wrapper
path above) against a payload decoder that stops short or overruns.
Indefinite-length values are EOC-terminated instead, so no check
applies there.
*/
func withConsumedCheck(sub *Substrate, length int, indefinite bool, fn func() (Value, error)) (Value, error) {
	startLen := sub.Tell()
	v, err := fn()
	if err != nil {
		return Value{}, err
	}
	if !indefinite {
		if consumed := sub.Tell() - startLen; consumed != length {
			return Value{}, errorASN1Expect("consumed octets", length, consumed)
		}
	}
	return v, nil
}

/*
decodeExplicitWrapper handles a Spec with Tag != nil and Explicit ==
true for an ordinary (non-CHOICE) field: the outer tag already matched
spec.Tag, so one nested TLV -- governed by the same Spec with its tag
override stripped -- is decoded from the content, and the wrapper tag
is prepended onto its tag set.
*/
func (d *itemDecoder) decodeExplicitWrapper(sub *Substrate, tag Tag, indefinite bool, spec *Spec) (Value, error) {
	stripped := *spec
	stripped.Tag, stripped.Explicit = nil, false

	inner, _, err := d.decodeOne(sub, &stripped, false)
	if err != nil {
		return Value{}, err
	}
	if indefinite {
		if _, err := consumeEOC(sub); err != nil {
			return Value{}, err
		}
	}

	inner.Tags = inner.Tags.prepend(tag)
	return inner, nil
}

const kindTryExplicit Kind = -1

/*
selectDecoder implements the GetValueDecoder/ByTag/BySpec states.
Returns the Kind to dispatch to (or kindTryExplicit to signal
TryAsExplicitTag), the Spec to carry forward (nil if the match fell
back to schemaless decode), whether the match was a fallback to the
base-tag decoder, and an error only for genuinely invalid input.
*/
func (d *itemDecoder) selectDecoder(tag Tag, spec *Spec) (Kind, *Spec, bool, error) {
	key := tagSetKey(newTagSet(tag))
	if _, ok := d.tagMap[key]; !ok && tag.isUniversal() && tag.Constructed {
		// the built-in map registers universal types by their primitive
		// tag; a constructed (fragmented) encoding of the same type is
		// looked up through that same entry.
		prim := tag
		prim.Constructed = false
		key = tagSetKey(newTagSet(prim))
	}

	if spec == nil {
		if k, ok := d.tagMap[key]; ok {
			return k, nil, false, nil
		}
		return kindTryExplicit, nil, false, nil
	}

	if spec.Kind == KindChoice {
		// CHOICE is untagged unless explicitly wrapped; the catalogue
		// (or the explicit wrapper tag) does the matching, not a
		// single expected tag (spec.md §4.4).
		return KindChoice, spec, false, nil
	}

	if spec.Kind == KindAny && spec.Tag == nil {
		// an untagged ANY has no natural universal tag to match against
		// -- it accepts whatever tag is on the wire verbatim.
		return KindAny, spec, false, nil
	}

	want := spec.effectiveTag()
	if want.Eq(tag) {
		return spec.Kind, spec, false, nil
	}

	// Fall back to the base-tag (schemaless) decoder: recover an
	// untagged value when the caller's override doesn't match what's
	// actually on the wire.
	if k, ok := d.tagMap[key]; ok {
		return k, nil, true, nil
	}

	return kindTryExplicit, nil, false, nil
}

/*
tryAsExplicitTag implements spec.md's TryAsExplicitTag fallback: if the
outermost tag is constructed and non-universal, assume it wraps an
inner TLV and recursively decode one value from the content; the
wrapper tag is then prepended onto the inner value's tag set.
Otherwise raise [ErrUnknownTag].
*/
func (d *itemDecoder) tryAsExplicitTag(sub *Substrate, tag Tag, tags TagSet, length int, indefinite bool) (Value, error) {
	if !(tag.Constructed && !tag.isUniversal()) {
		return Value{}, ErrUnknownTag
	}

	inner, _, err := d.decodeOne(sub, nil, indefinite)
	if err != nil {
		return Value{}, err
	}
	if indefinite {
		if _, err := consumeEOC(sub); err != nil {
			return Value{}, err
		}
	}

	inner.Tags = inner.Tags.prepend(tag)
	return inner, nil
}

func lengthOrSentinel(length int, indefinite bool) int {
	if indefinite {
		return -1
	}
	return length
}

/*
consumeEOC reads and validates the two-octet end-of-contents sentinel.
*/
func consumeEOC(sub *Substrate) (bool, error) {
	b, err := sub.Read(2)
	if err != nil {
		return false, err
	}
	if b[0] != 0x00 || b[1] != 0x00 {
		return false, ErrMalformedValue
	}
	return true, nil
}

/*
decodeTagOctets implements spec.md §4.2 tag decoding.
*/
func decodeTagOctets(sub *Substrate) (Tag, error) {
	b, err := sub.Read(1)
	if err != nil {
		return Tag{}, err
	}
	first := b[0]
	class := int(first>>6) & 0x3
	constructed := first&0x20 != 0
	id := int(first & 0x1F)

	if id != 0x1F {
		return Tag{Class: class, Constructed: constructed, ID: id}, nil
	}

	id = 0
	for {
		ob, err := sub.Read(1)
		if err != nil {
			return Tag{}, err
		}
		o := ob[0]
		id = accumulateBase128(id, o)
		if o&0x80 == 0 {
			break
		}
		if id > (1 << 28) {
			return Tag{}, errorTagTooLarge()
		}
	}
	return Tag{Class: class, Constructed: constructed, ID: id}, nil
}

func errorTagTooLarge() error { return mkerr("tag too large (>= 2^28)") }

/*
decodeLengthOctets implements spec.md §4.2/§6 length decoding.
*/
func decodeLengthOctets(sub *Substrate, rule EncodingRule) (length int, indefinite bool, err error) {
	b, err := sub.Read(1)
	if err != nil {
		return 0, false, err
	}
	l0 := b[0]

	switch {
	case l0 < 0x80:
		return int(l0), false, nil
	case l0 == 0x80:
		if !rule.allowsIndefinite() {
			return 0, false, errorIndefiniteForbidden
		}
		return -1, true, nil
	case l0 == 0xFF:
		return 0, false, errorReservedLength
	default:
		k := int(l0 & 0x7F)
		ob, err := sub.Read(k)
		if err != nil {
			return 0, false, err
		}
		if rule.requiresMinimalLength() && k > 0 && ob[0] == 0x00 {
			return 0, false, mkerr("DER: leading zero in length")
		}
		n := 0
		for _, c := range ob {
			n = n<<8 | int(c)
		}
		if rule.requiresMinimalLength() && n < 0x80 {
			return 0, false, mkerr("DER: non-minimal length encoding")
		}
		return n, false, nil
	}
}
