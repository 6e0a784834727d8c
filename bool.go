package ber

/*
bool.go implements the BOOLEAN payload decoder (spec.md §4.3).
*/

func decodeBoolean(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugPrim("BOOLEAN", length)
	if length < 0 || tags.Outer().Constructed {
		return Value{}, mkerrf("BOOLEAN: constructed/indefinite form not permitted")
	}
	data, err := sub.Read(length)
	if err != nil {
		return Value{}, err
	}
	if length == 0 {
		return Value{}, ErrMalformedValue
	}

	b := data[0]
	if opts.rule().requiresStrictBoolean() && b != 0x00 && b != 0xFF {
		return Value{}, mkerrf("DER: BOOLEAN content octet must be 0x00 or 0xFF")
	}

	return Value{Kind: KindBoolean, Tags: tags, Bool: b != 0x00}, nil
}
