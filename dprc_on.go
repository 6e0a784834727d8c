//go:build !ber_no_dprc

package ber

/*
dprc_on.go registers the legacy character-string universal types
(VideotexString, GraphicString, GeneralString) into the schemaless tag
map. This is the default build; pass "-tags ber_no_dprc" to omit them
(dprc_off.go), the way the teacher strips External/EmbeddedPDV behind
"asn1_no_dprc".

This runs as a package-level variable initializer rather than an init
function so it is guaranteed to complete -- by the language's
dependency-ordered variable initialization, which tracks the
charStringTagIDs reference below -- before dispatch.go's init folds
charStringTagIDs into builtinTagMap, regardless of file processing
order.
*/
var _ = registerDeprecatedCharStrings()

func registerDeprecatedCharStrings() bool {
	charStringTagIDs[TagVideotexString] = "videotex"
	charStringTagIDs[TagGraphicString] = "graphic"
	charStringTagIDs[TagGeneralString] = "general"
	return true
}
