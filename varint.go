package ber

/*
varint.go contains the base-128, big-endian, high-bit-continuation
accumulator shared by long-form tag numbers (spec.md §4.2) and OID/
RelativeOID sub-identifiers (spec.md §4.3). Both use the same bit
layout; only the caller-side canonicality checks differ.
*/

import "golang.org/x/exp/constraints"

/*
accumulateBase128 folds a byte carrying a base-128 digit into acc.
Generic over the accumulator's integer width: the long-form tag-number
reader (tlv.go) instantiates it over int, since tag numbers are capped
well below the platform int range (spec.md's 2^28 ceiling); OID/
RelativeOID sub-identifiers (oid.go) accumulate into a *big.Int instead
since individual arcs are unbounded on the wire (an arc that does not
fit the uint64 stored in Value.OIDArcs is rejected), so they repeat the
same shift/mask shape directly rather than instantiating this generic
over *big.Int (which does not satisfy constraints.Integer).
*/
func accumulateBase128[T constraints.Integer](acc T, b byte) T {
	return (acc << 7) | T(b&0x7f)
}

/*
appendVarint appends the base-128 big-endian encoding of v to b. Used
only internally by tagSetKey; this package does not implement an
encoder.
*/
func appendVarint(b []byte, v int) []byte {
	var tmp [5]byte
	n := len(tmp)
	tmp[n-1] = byte(v & 0x7f)
	v >>= 7
	for v > 0 {
		n--
		tmp[n-1] = byte(v&0x7f) | 0x80
		v >>= 7
	}
	return append(b, tmp[n-1:]...)
}
