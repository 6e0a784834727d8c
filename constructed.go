package ber

/*
constructed.go implements the shared constructed-value child-iteration
loop (spec.md §4.4, L4): given a constructed value's substrate
positioned at its first child, drive the single-item decoder (L2)
child by child -- either for a declared length, or until the
end-of-contents sentinel under indefinite length -- handing each
decoded child to a caller-supplied sink.

specFn is consulted before each child is decoded so callers that walk
a named-type catalogue (sequence.go) can advance which template guides
the next child; callers with a single homogeneous template
(SequenceOf/SetOf) or no template at all (schemaless) just return a
constant.
*/

/*
walkSetChildren is walkChildren's SET-flavored sibling: since SET
children may arrive in any catalogue order, the guiding template for
each child cannot be chosen positionally. Instead the wire tag is
peeked (non-destructively) before each child is decoded, and specFor
looks up the matching catalogue slot's template by that tag -- falling
back to schemaless (nil) when no slot claims it, so an unrecognized
child still has a chance via the built-in tag map / TryAsExplicitTag.
*/
func walkSetChildren(d *itemDecoder, sub *Substrate, length int, specFor func(Tag) *Spec, onChild func(Value) error) error {
	next := func(allowEOO bool) *Spec {
		tag, err := peekTag(sub, allowEOO)
		if err != nil {
			return nil
		}
		return specFor(tag)
	}

	if length >= 0 {
		end := sub.Tell() + length
		for sub.Tell() < end {
			child, _, err := d.decodeOne(sub, next(false), false)
			if err != nil {
				return err
			}
			if err := onChild(child); err != nil {
				return err
			}
		}
		if sub.Tell() != end {
			return ErrMalformedValue
		}
		return nil
	}

	for {
		child, isEOO, err := d.decodeOne(sub, next(true), true)
		if err != nil {
			return err
		}
		if isEOO {
			return nil
		}
		if err := onChild(child); err != nil {
			return err
		}
	}
}

/*
peekTag reads the next value's tag octets without consuming them. If
allowEOO is true and the next two octets are the end-of-contents
sentinel, peekTag returns the zero Tag and no error; the caller
(walkSetChildren) then lets the real decodeOne call observe and consume
the sentinel itself.
*/
func peekTag(sub *Substrate, allowEOO bool) (Tag, error) {
	sub.Mark()
	defer sub.RewindToMark()

	if allowEOO {
		peek, err := sub.Peek(2)
		if err == nil && peek[0] == 0x00 && peek[1] == 0x00 {
			return Tag{}, nil
		}
	}
	return decodeTagOctets(sub)
}

func walkChildren(d *itemDecoder, sub *Substrate, length int, specFn func() *Spec, onChild func(Value) error) error {
	if length >= 0 {
		end := sub.Tell() + length
		for sub.Tell() < end {
			child, _, err := d.decodeOne(sub, specFn(), false)
			if err != nil {
				return err
			}
			if err := onChild(child); err != nil {
				return err
			}
		}
		if sub.Tell() != end {
			return ErrMalformedValue
		}
		return nil
	}

	for {
		child, isEOO, err := d.decodeOne(sub, specFn(), true)
		if err != nil {
			return err
		}
		if isEOO {
			return nil
		}
		if err := onChild(child); err != nil {
			return err
		}
	}
}
