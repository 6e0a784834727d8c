package ber

/*
evt.go contains EventType constants which are (only) used for debugging
when this package was built or run with the "-tags ber_debug" flag.
*/

/*
EventType describes a specific kind of tracer event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was built with the "-tags ber_debug" flag.
Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter     EventType = 1 << iota //    1: Called-function begin
	EventInfo                            //    2: Interim function event
	EventExit                            //    4: Called function exit
	EventIO                              //    8: Substrate read/underrun
	EventTag                             //   16: Tag octet decode
	EventLength                          //   32: Length octet decode
	EventDispatch                        //   64: Tag/type dispatch decision
	EventConstructed                     //  128: SEQUENCE/SET/CHOICE recursion
	EventPrim                            //  256: primitive payload decode
	EventOpenType                        //  512: open-type resolution
	EventUnderrun                        // 1024: underrun signaled/resumed
	_                                    // 2048: unassigned
)
