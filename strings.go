package ber

/*
strings.go enumerates the built-in character-string universal types
(spec.md §4.3: "surface differs, wire mechanics shared with OCTET
STRING"). Decoding is delegated entirely to decodeOctetString
(octetstring.go); this file only supplies the tag-number -> identifier
table that dispatch.go's init folds into the built-in tag map, and that
octetstring.go consults to stamp Value.StringID.

CharacterString (tag 29) and UTCTime/GeneralizedTime are deliberately
excluded here: CharacterString is a constructed-only associated-type
(its own catalogue, not a flat byte run) and the useful-time types live
in useful.go since callers commonly branch on "time-ish" vs
"string-ish" identifiers separately.

The three legacy string types (VideotexString, GraphicString,
GeneralString) are not registered here at all; dprc_on.go/dprc_off.go
add or withhold them depending on the "ber_no_dprc" build tag, the way
the teacher gates External/EmbeddedPDV.
*/

var charStringTagIDs = map[int]string{
	TagNumericString:   "numeric",
	TagPrintableString: "printable",
	TagT61String:       "t61",
	TagIA5String:       "ia5",
	TagVisibleString:   "visible",
	TagUniversalString: "universal",
	TagBMPString:       "bmp",
	TagUTF8String:      "utf8",
}

/*
charStringKindByTag is populated by dispatch.go's init as the inverse
of charStringTagIDs, consulted by octetstring.go to stamp
Value.StringID without re-walking the map on every decode.
*/
var charStringKindByTag = map[int]string{}
