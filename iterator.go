package ber

/*
iterator.go implements the streaming decode surface of spec.md §6/§9: a
resumable decoder over a byte source fed incrementally. Rather than a
stackful coroutine, each [StreamDecoder.Next] call simply re-invokes
the L2 state machine against the substrate's current buffer; on
underrun the substrate has already rewound to the start of the value
(spec.md §9's "restart-at-mark" strategy), so the caller need only
[StreamDecoder.Feed] more bytes and call Next again.
*/

/*
StreamDecoder decodes a sequence of top-level values from a byte
source that may arrive in pieces. It is not safe for concurrent use.
*/
type StreamDecoder struct {
	sub  *Substrate
	item *itemDecoder
	spec *Spec
}

/*
NewStreamDecoder creates a [StreamDecoder] guided by the optional spec
(nil means schemaless/best-effort decode of every top-level value).
*/
func NewStreamDecoder(spec *Spec, opts *Options) *StreamDecoder {
	return &StreamDecoder{
		sub:  NewStreamingSubstrate(),
		item: newItemDecoder(mergeSpecIntoOptions(spec, opts)),
		spec: effectiveSpec(spec, opts),
	}
}

/*
Feed appends more bytes to the decoder's input. Safe to call between
[StreamDecoder.Next] calls, including immediately after one returns
[ErrSubstrateUnderrun].
*/
func (sd *StreamDecoder) Feed(b []byte) { sd.sub.Feed(b) }

/*
Close signals that no more bytes will ever be fed: a subsequent
underrun is reported as [ErrEndOfStream] instead of
[ErrSubstrateUnderrun].
*/
func (sd *StreamDecoder) Close() { sd.sub.Close() }

/*
Next decodes the next top-level value. It returns [ErrSubstrateUnderrun]
(unwrappable via errors.Is) if the buffered data doesn't yet hold a
complete value -- the substrate cursor is left exactly where it was
before the call, so a later Next call after Feed retries the same value
from scratch rather than from wherever decoding gave up.

decodeOne's own mark/rewind only covers the tag and length states; a
recursive decode (a constructed value's children, an explicit wrapper's
inner TLV) calls Mark again and overwrites the single saved position,
so an underrun surfacing from deep inside a partially-decoded value
would otherwise leave the cursor wherever that nested call stopped.
Next snapshots the position itself and seeks back on any error,
independent of decodeOne's mark slot.
*/
func (sd *StreamDecoder) Next() (Value, error) {
	start := sd.sub.Tell()
	v, _, err := sd.item.decodeOne(sd.sub, sd.spec, false)
	if err != nil {
		sd.sub.Seek(start, SeekStart)
		return Value{}, err
	}
	return v, nil
}

/*
Values returns a push-iterator over every top-level value the stream
yields, stopping (without error) at a clean [ErrEndOfStream] boundary
and surfacing any other error via the supplied errFn. Feed must have
been called with the complete input, and [StreamDecoder.Close] called,
before ranging -- this convenience wrapper is for the common
fully-buffered case; genuinely incremental consumers should call
[StreamDecoder.Next] and [StreamDecoder.Feed] directly instead.
*/
func (sd *StreamDecoder) Values(errFn func(error)) func(yield func(Value) bool) {
	return func(yield func(Value) bool) {
		for {
			v, err := sd.Next()
			if err != nil {
				if err != ErrEndOfStream {
					errFn(err)
				}
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
