//go:build ber_no_dprc

package ber

/*
dprc_off.go is the "-tags ber_no_dprc" build: the legacy string types
are left out of the schemaless tag map entirely. A caller can still
decode one by supplying an explicit Spec (Kind: KindCharacterString,
Tag pointing at the relevant universal tag) -- only the automatic,
no-schema dispatch path is affected.
*/

var _ = registerDeprecatedCharStrings()

func registerDeprecatedCharStrings() bool { return false }
