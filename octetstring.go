package ber

/*
octetstring.go implements the OCTET STRING payload decoder (spec.md
§4.3) and doubles as the shared byte-payload mechanics for the
character-string and useful-time universal types (strings.go,
useful.go): primitive form is a raw byte run; constructed/indefinite
form concatenates the content of each child element's own TLV, in wire
order, recursing through the same single-item decoder used for
top-level values (so nested constructed fragments are themselves legal,
mirroring BER's recursive fragmentation rule).
*/

func decodeOctetString(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugPrim("OCTET STRING", length)

	kind := KindOctetString
	switch tags.Base().ID {
	case TagObjectDescriptor:
		kind = KindObjectDescriptor
	default:
		if name, ok := charStringKindByTag[tags.Base().ID]; ok {
			kind = KindCharacterString
			_ = name
		} else if name, ok := usefulTimeKindByTag[tags.Base().ID]; ok {
			kind = KindUsefulTime
			_ = name
		}
	}

	if !tags.Outer().Constructed {
		if length < 0 {
			return Value{}, mkerrf(kind.String(), ": primitive form cannot carry an indefinite length")
		}
		data, err := sub.Read(length)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, Tags: tags, Bytes: data, StringID: stringIDFor(tags.Base().ID)}, nil
	}

	data, err := concatenateFragments(d, sub, length, opts)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: kind, Tags: tags, Bytes: data, StringID: stringIDFor(tags.Base().ID)}, nil
}

/*
concatenateFragments decodes successive child TLVs -- definite-length
run if length >= 0, EOC-terminated run otherwise -- and appends each
child's raw content bytes in order. Each fragment may itself be
primitive or constructed; a constructed fragment is flattened
recursively via the same rule (spec.md §4.3, "constructed string
types").
*/
func concatenateFragments(d *itemDecoder, sub *Substrate, length int, opts *Options) ([]byte, error) {
	var out []byte

	if length >= 0 {
		end := sub.Tell() + length
		for sub.Tell() < end {
			v, _, err := d.decodeOne(sub, nil, false)
			if err != nil {
				return nil, err
			}
			out = append(out, fragmentBytes(v)...)
		}
		if sub.Tell() != end {
			return nil, ErrMalformedValue
		}
		return out, nil
	}

	for {
		v, isEOO, err := d.decodeOne(sub, nil, true)
		if err != nil {
			return nil, err
		}
		if isEOO {
			break
		}
		out = append(out, fragmentBytes(v)...)
	}
	return out, nil
}

func fragmentBytes(v Value) []byte {
	if v.Bytes != nil {
		return v.Bytes
	}
	var out []byte
	for _, c := range v.Children {
		out = append(out, fragmentBytes(c)...)
	}
	return out
}

func stringIDFor(tagID int) string {
	if name, ok := charStringKindByTag[tagID]; ok {
		return name
	}
	if name, ok := usefulTimeKindByTag[tagID]; ok {
		return name
	}
	return ""
}
