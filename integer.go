package ber

/*
integer.go implements the INTEGER/ENUMERATED payload decoder. Both
share identical wire mechanics (spec.md §4.3): primitive only,
two's-complement big-endian content, zero length means the value zero.
*/

import "math/big"

func decodeInteger(d *itemDecoder, sub *Substrate, tags TagSet, length int, spec *Spec, opts *Options, allowEOO bool) (Value, error) {
	kind := KindInteger
	if tags.Base().ID == TagEnum {
		kind = KindEnumerated
	}

	debugPrim(kind.String(), length)
	if length < 0 || tags.Outer().Constructed {
		return Value{}, mkerrf(kind.String(), ": constructed/indefinite form not permitted")
	}

	data, err := sub.Read(length)
	if err != nil {
		return Value{}, err
	}

	return Value{Kind: kind, Tags: tags, Int: bigFromTwosComplement(data)}, nil
}

/*
bigFromTwosComplement decodes a two's-complement big-endian integer,
per spec.md §4.3. Zero-length content decodes to zero.
*/
func bigFromTwosComplement(data []byte) *big.Int {
	if len(data) == 0 {
		return big.NewInt(0)
	}

	neg := data[0]&0x80 != 0
	n := new(big.Int).SetBytes(data)
	if neg {
		// n currently holds the unsigned magnitude of the two's
		// complement bit pattern; subtract 2^(8*len) to recover the
		// signed value.
		full := new(big.Int).Lsh(big.NewInt(1), uint(len(data))*8)
		n.Sub(n, full)
	}
	return n
}
