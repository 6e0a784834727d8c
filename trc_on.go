//go:build ber_debug

package ber

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar names the environment variable consulted at init time to
select the enabled [EventType] bitmask without requiring a call to
[EnableDebug].
*/
const EnvDebugVar = "BERDECODE_DEBUG"

/*
DefaultTracer writes one line per enabled event to an [io.Writer].
*/
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask EventType
}

func NewDefaultTracer(w io.Writer) *DefaultTracer {
	return &DefaultTracer{w: w, mask: EventEnter | EventExit | EventInfo}
}

func (r *DefaultTracer) EnableLevel(ev EventType)  { r.mask |= ev }
func (r *DefaultTracer) DisableLevel(ev EventType) { r.mask &^= ev }
func (r *DefaultTracer) Enabled(ev EventType) bool { return r.mask&ev != 0 || r.mask == EventAll }

func (r *DefaultTracer) Trace(rec TraceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	var arrow string
	switch rec.Type {
	case EventEnter:
		arrow = " -> "
	case EventExit:
		arrow = " <- "
	default:
		arrow = " : "
	}

	io.WriteString(r.w, ts+arrow+fn+" "+fmtArgs(rec.Args)+"\n")
}

func trimFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}

func fmtArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmtArg(a))
	}
	return join(parts, " ")
}

func fmtArg(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case bool:
		return bool2str(v)
	case int:
		return itoa(v)
	case error:
		if v == nil {
			return "<nil error>"
		}
		return v.Error()
	case *Spec:
		if v == nil {
			return "<schemaless>"
		}
		return "spec:" + v.Kind.String()
	default:
		return "<value>"
	}
}

/*
TraceRecord carries the data passed to [Tracer.Trace] for one event.
*/
type TraceRecord struct {
	Time time.Time
	Type EventType
	Func string
	Args []any
}

/*
Tracer is the interface a caller implements to receive trace events.
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) { emitEvent(level, args) }

func debugEnter(args ...any) { emitEvent(EventEnter, args) }
func debugExit(args ...any)  { emitEvent(EventExit, args) }
func debugPrim(args ...any)  { emitEvent(EventPrim, args) }

/*
emitEvent is called directly by every debug hook, so two frames up is
always the function that invoked the hook.
*/
func emitEvent(level EventType, args []any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	if lt, ok := t.(levelTracer); ok && !lt.Enabled(level) {
		return
	}

	fn := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		fn = runtime.FuncForPC(pc).Name()
	}

	t.Trace(TraceRecord{Time: time.Now(), Type: level, Func: fn, Args: args})
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}
	dt := NewDefaultTracer(os.Stderr)
	if evar == "all" {
		dt.mask = EventAll
	}
	EnableDebug(dt)
}
