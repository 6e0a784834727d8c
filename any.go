package ber

/*
any.go implements the ANY payload decoder (spec.md §4.3/§9): an opaque
capture of a value's raw encoding, governed wholesale (not decoded
structurally) unless an open-type hook later resolves it against a
concrete Spec (opentype.go).

A definite-length ANY captures the value's complete encoding (tag +
length + content), not just its content octets: open-type resolution
re-decodes a captured ANY as a fresh TLV (opentype.go's redecodeAny),
which needs a header to parse. It slices back to the mark decodeOne
left at the start of its own header. An indefinite-length ANY has no
declared length to slice in one shot: each child TLV is decoded to find
its own boundary, and the child's complete raw encoding is appended to
the capture, in wire order, up to but excluding the end-of-contents
sentinel. The indefinite capture therefore holds the children's
encodings only, without the ANY's own tag and length octets -- this
mirrors the behavior observed in the Python original's RawPayloadDecoder.
*/

func decodeAny(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugEvent(EventPrim, "ANY", length)

	proto := Value{Kind: KindAny, Tags: tags}

	if sf := opts.substrateFunc(); sf != nil {
		data, err := sf(proto, sub, length)
		if err != nil {
			return Value{}, err
		}
		proto.Bytes = data
		return proto, nil
	}

	if length >= 0 {
		headerStart := sub.MarkedPos()
		if _, err := sub.Read(length); err != nil {
			return Value{}, err
		}
		raw, err := sub.Slice(headerStart, sub.Tell())
		if err != nil {
			return Value{}, err
		}
		proto.Bytes = raw
		return proto, nil
	}

	var out []byte
	for {
		start := sub.Tell()
		_, isEOO, err := d.decodeOne(sub, nil, true)
		if err != nil {
			return Value{}, err
		}
		if isEOO {
			break
		}
		raw, err := sub.Slice(start, sub.Tell())
		if err != nil {
			return Value{}, err
		}
		out = append(out, raw...)
	}
	proto.Bytes = out
	return proto, nil
}
