package ber

/*
decode.go is the public surface described in spec.md §6: a one-shot
decode over a complete byte slice, and (iterator.go) a resumable
streaming decode over an incrementally-fed byte source.
*/

/*
Decode parses exactly one top-level value from data, guided by the
optional spec (nil means schemaless/best-effort). It returns the
decoded value and whatever bytes of data were not consumed.

Underrun during a one-shot decode is fatal: there is no more data
coming, so it surfaces as [ErrEndOfStream] rather than
[ErrSubstrateUnderrun].
*/
func Decode(data []byte, spec *Spec, opts *Options) (Value, []byte, error) {
	sub := NewSubstrate(data)
	d := newItemDecoder(mergeSpecIntoOptions(spec, opts))

	v, _, err := d.decodeOne(sub, effectiveSpec(spec, opts), false)
	if err != nil {
		return Value{}, nil, err
	}
	return v, data[sub.Tell():], nil
}

func effectiveSpec(spec *Spec, opts *Options) *Spec {
	if spec != nil {
		return spec
	}
	if opts != nil {
		return opts.Spec
	}
	return nil
}

func mergeSpecIntoOptions(spec *Spec, opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Spec == nil {
		opts.Spec = spec
	}
	return opts
}
