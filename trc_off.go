//go:build !ber_debug

package ber

/*
trc_off.go is the zero-cost default build: every debug hook compiles
to a no-op so the decode hot path carries none of the tracer's
overhead unless built with "-tags ber_debug".
*/

func debugEnter(_ ...any)               {}
func debugExit(_ ...any)                {}
func debugEvent(_ EventType, _ ...any)  {}
func debugPrim(_ ...any)                {}
