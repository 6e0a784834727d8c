package ber

/*
oid.go implements the OBJECT IDENTIFIER and RELATIVE-OID payload
decoders (spec.md §4.3). Both share the base-128 sub-identifier reader;
OID additionally combines the first two sub-identifiers per the
arc0/arc1 splitting rule.
*/

import "math/big"

func decodeOID(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugPrim("OBJECT IDENTIFIER", length)
	if tags.Outer().Constructed {
		return Value{}, mkerrf("OID: constructed/indefinite form not permitted")
	}
	arcs, err := readSubIdentifiers(sub, length)
	if err != nil {
		return Value{}, err
	}
	if len(arcs) == 0 {
		return Value{}, ErrMalformedValue
	}

	arc0, arc1 := splitFirstOIDArc(arcs[0])
	out := make([]uint64, 0, len(arcs)+1)
	out = append(out, arc0, arc1)
	out = append(out, arcs[1:]...)

	return Value{Kind: KindOID, Tags: tags, OIDArcs: out}, nil
}

func decodeRelativeOID(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	debugPrim("RELATIVE-OID", length)
	if tags.Outer().Constructed {
		return Value{}, mkerrf("OID: constructed/indefinite form not permitted")
	}
	arcs, err := readSubIdentifiers(sub, length)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindRelativeOID, Tags: tags, OIDArcs: arcs}, nil
}

/*
readSubIdentifiers decodes the base-128 sub-identifiers of an OID or
RelativeOID body. Per spec.md invariant I5, a sub-identifier whose
first octet is 0x80 (non-canonical leading zero -- a known decoder
exploit) is rejected.
*/
func readSubIdentifiers(sub *Substrate, length int) ([]uint64, error) {
	if length < 0 {
		return nil, mkerrf("OID: constructed/indefinite form not permitted")
	}
	data, err := sub.Read(length)
	if err != nil {
		return nil, err
	}

	var arcs []uint64
	i := 0
	for i < len(data) {
		if data[i] == 0x80 {
			return nil, ErrMalformedValue
		}
		acc := big.NewInt(0)
		for {
			if i >= len(data) {
				return nil, mkerr("truncated OID sub-identifier")
			}
			acc.Lsh(acc, 7)
			acc.Or(acc, big.NewInt(int64(data[i]&0x7f)))
			cont := data[i]&0x80 != 0
			i++
			if !cont {
				break
			}
		}
		if !acc.IsUint64() {
			return nil, ErrMalformedValue
		}
		arcs = append(arcs, acc.Uint64())
	}
	return arcs, nil
}

/*
splitFirstOIDArc implements the arc0/arc1 combination rule of
spec.md §4.3.
*/
func splitFirstOIDArc(s0 uint64) (arc0, arc1 uint64) {
	switch {
	case s0 < 40:
		return 0, s0
	case s0 < 80:
		return 1, s0 - 40
	default:
		return 2, s0 - 80
	}
}
