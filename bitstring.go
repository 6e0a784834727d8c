package ber

/*
bitstring.go implements the BIT STRING payload decoder (spec.md §4.3).
Primitive form carries a leading unused-bits octet followed by the
packed bits; constructed/indefinite form concatenates the bit-runs of
successive child BIT STRING fragments, with the rule that only the
final fragment may declare a non-zero unused-bits count (a fragment in
the middle of the run cannot leave a gap).
*/

func decodeBitString(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugPrim("BIT STRING", length)

	if !tags.Outer().Constructed {
		if length < 0 {
			return Value{}, mkerrf("BIT STRING: primitive form cannot carry an indefinite length")
		}
		if length == 0 {
			return Value{}, ErrMalformedValue // must carry at least the unused-bits octet
		}
		data, err := sub.Read(length)
		if err != nil {
			return Value{}, err
		}
		unused := int(data[0])
		if unused > 7 || (unused > 0 && len(data) == 1) {
			return Value{}, ErrMalformedValue
		}
		return Value{Kind: KindBitString, Tags: tags, UnusedBits: unused, Bytes: data[1:]}, nil
	}

	bytesOut, unused, err := concatenateBitFragments(d, sub, length, opts)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindBitString, Tags: tags, UnusedBits: unused, Bytes: bytesOut}, nil
}

func concatenateBitFragments(d *itemDecoder, sub *Substrate, length int, opts *Options) ([]byte, int, error) {
	var out []byte
	finalUnused := 0
	seenNonzero := false

	consume := func(v Value) error {
		if seenNonzero {
			// a prior fragment already left a non-final unused-bit gap
			return ErrMalformedValue
		}
		out = append(out, v.Bytes...)
		finalUnused = v.UnusedBits
		if v.UnusedBits != 0 {
			seenNonzero = true
		}
		return nil
	}

	if length >= 0 {
		end := sub.Tell() + length
		for sub.Tell() < end {
			v, _, err := d.decodeOne(sub, bitStringFragmentSpec, false)
			if err != nil {
				return nil, 0, err
			}
			if err := consume(v); err != nil {
				return nil, 0, err
			}
		}
		if sub.Tell() != end {
			return nil, 0, ErrMalformedValue
		}
		return out, finalUnused, nil
	}

	for {
		v, isEOO, err := d.decodeOne(sub, bitStringFragmentSpec, true)
		if err != nil {
			return nil, 0, err
		}
		if isEOO {
			break
		}
		if err := consume(v); err != nil {
			return nil, 0, err
		}
	}
	return out, finalUnused, nil
}

/*
bitStringFragmentSpec pins each fragment's dispatch to BIT STRING so a
nested constructed fragment is itself recursed through this decoder.
*/
var bitStringFragmentSpec = &Spec{Kind: KindBitString, Tag: &Tag{Class: ClassUniversal, Constructed: false, ID: TagBitString}}
