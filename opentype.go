package ber

/*
opentype.go implements open-type resolution (spec.md §4.4, §9): a
record slot declared as ANY may name a sibling "governing field" whose
already-decoded value selects the concrete [Spec] to re-decode that
slot's captured raw octets against. Resolution happens once, after the
enclosing record has been fully populated -- uniformly for both
definite and indefinite length records, per the Open Question decision
recorded in the design notes -- so the governing field is guaranteed to
already be present in Value.Children regardless of which side of it
the open-type slot appears on.
*/

import "math/big"

func resolveOpenTypes(d *itemDecoder, cat *Catalogue, v *Value, opts *Options) error {
	for _, nt := range cat.Types {
		if nt.OpenType == nil {
			continue
		}

		slotPos := indexOfName(v.Names, nt.Name)
		govPos := indexOfName(v.Names, nt.OpenType.GoverningField)
		if slotPos < 0 || govPos < 0 {
			continue // slot or governing field absent (e.g. optional, unfilled)
		}

		raw := v.Children[slotPos]
		if raw.Kind != KindAny {
			continue // already concretely typed; nothing to resolve
		}

		key := stringifyGoverningValue(v.Children[govPos])

		resolved, ok := opts.openTypeFor(key)
		if !ok {
			resolved, ok = nt.OpenType.TypeMap[key]
		}
		if !ok && opts.decodeOpenTypes() && nt.OpenType.Default != nil {
			resolved, ok = nt.OpenType.Default, true
		}
		if !ok {
			continue // leave the slot as a captured ANY
		}

		inner, err := redecodeAny(d, raw.Bytes, resolved)
		if err != nil {
			return err
		}
		v.Children[slotPos] = inner
	}
	return nil
}

/*
redecodeAny decodes a fresh [Substrate] over captured ANY bytes against
the resolved Spec, requiring the whole capture to be consumed -- an
open-type slot's raw bytes are exactly one TLV, never a trailing
remainder.
*/
func redecodeAny(d *itemDecoder, raw []byte, resolved *Spec) (Value, error) {
	sub := NewSubstrate(raw)
	inner, _, err := d.decodeOne(sub, resolved, false)
	if err != nil {
		return Value{}, err
	}
	if sub.Tell() != len(raw) {
		return Value{}, ErrMalformedValue
	}
	return inner, nil
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

/*
stringifyGoverningValue renders a decoded governing-field value into
the key shape open-type maps are keyed by (spec.md §4.4): an OID's
dotted-decimal form for the common AlgorithmIdentifier-shaped case, or
an integer's decimal form for enumerated discriminators.
*/
func stringifyGoverningValue(v Value) string {
	switch v.Kind {
	case KindOID, KindRelativeOID:
		return dottedOID(v.OIDArcs)
	case KindInteger, KindEnumerated:
		if v.Int != nil {
			return v.Int.String()
		}
		return "0"
	default:
		return v.StringID
	}
}

func dottedOID(arcs []uint64) string {
	var parts []string
	for _, a := range arcs {
		parts = append(parts, new(big.Int).SetUint64(a).String())
	}
	return join(parts, ".")
}
