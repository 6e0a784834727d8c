package ber

/*
null.go implements the NULL payload decoder (spec.md §4.3): primitive
only, length must be 0.
*/

func decodeNull(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugPrim("NULL", length)
	if length < 0 || tags.Outer().Constructed {
		return Value{}, mkerrf("NULL: constructed/indefinite form not permitted")
	}
	if length != 0 {
		return Value{}, ErrMalformedValue
	}
	return Value{Kind: KindNull, Tags: tags}, nil
}
