package ber

/*
useful.go enumerates the built-in "useful type" universal types (UTC
and Generalized time, spec.md §4.3). Like the character-string types,
the wire mechanics are identical to OCTET STRING (a primitive byte run,
or fragmented constructed/indefinite form); decodeOctetString handles
both and consults usefulTimeKindByTag to stamp Value.StringID. This
package does not parse the time string into a structured civil time --
spec.md scopes that to a caller-side concern layered over the decoded
bytes, not the decoder core.
*/

var usefulTimeTagIDs = map[int]string{
	TagUTCTime:         "utc",
	TagGeneralizedTime: "generalized",
}

/*
usefulTimeKindByTag is populated by dispatch.go's init as the inverse
of usefulTimeTagIDs.
*/
var usefulTimeKindByTag = map[int]string{}
