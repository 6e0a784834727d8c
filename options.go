package ber

/*
options.go implements the Options envelope described in spec.md §6.
Mirrors the teacher's habit (opts.go) of using one struct to both carry
top-level caller overrides and thread internal parser instructions,
but scoped to what the decoder core actually consumes.
*/

/*
SubstrateFunc is the caller hook that, when present, shortcircuits
value construction and streams raw octets to the caller instead of
materializing a [Value] -- the "streaming escape hatch" of spec.md §6.
Only the ANY decoder (any.go) consults it; every other decoder ignores
it and builds its [Value] as usual. It receives the partially-built
value (only Kind/Tags populated), the substrate positioned at the start of the value's content, and the
declared content length (-1 for indefinite, in which case the hook is
responsible for consuming through the end-of-contents sentinel).
*/
type SubstrateFunc func(proto Value, sub *Substrate, length int) ([]byte, error)

/*
Options gathers the decode-time knobs enumerated in spec.md §6.
*/
type Options struct {
	// Spec is the caller-supplied type template guiding decode. Nil
	// means schemaless/best-effort decoding.
	Spec *Spec

	// TagMap overrides (merges onto) the built-in tag-set -> decoder
	// table.
	TagMap map[string]Kind

	// TypeMap overrides (merges onto) the built-in type-id -> decoder
	// table.
	TypeMap map[Kind]payloadDecoder

	// OpenTypes is the caller-supplied open-type resolution map,
	// keyed by governing-field value (spec.md §4.4).
	OpenTypes map[string]*Spec

	// DecodeOpenTypes enables open-type resolution even without an
	// explicit OpenTypes map (falls back to the catalogue's per-slot
	// default map).
	DecodeOpenTypes bool

	// Recursive is carried on the options and read back through
	// recursive(), but no decoder consults it: constructed values are
	// always decoded recursively, whether or not SubstrateFunc is set.
	Recursive bool

	// SubstrateFunc streams raw payload octets to the caller; see
	// [SubstrateFunc].
	SubstrateFunc SubstrateFunc

	// Rule selects the BER-family member governing strictness checks.
	Rule EncodingRule
}

func (o *Options) rule() EncodingRule {
	if o == nil {
		return BER
	}
	return o.Rule
}

func (o *Options) recursive() bool {
	return o == nil || o.Recursive
}

func (o *Options) substrateFunc() SubstrateFunc {
	if o == nil {
		return nil
	}
	return o.SubstrateFunc
}

func (o *Options) decodeOpenTypes() bool {
	return o != nil && o.DecodeOpenTypes
}

func (o *Options) openTypeFor(key string) (*Spec, bool) {
	if o == nil || o.OpenTypes == nil {
		return nil, false
	}
	s, ok := o.OpenTypes[key]
	return s, ok
}
