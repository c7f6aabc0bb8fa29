package dtwbd

// Sink is an injected, optional diagnostic collaborator. DTWBD never
// owns process-wide state (spec.md §9: "Global state... The core must
// not own process-wide mutable state") — callers that want the kind of
// leveled tracing original_source/logger.c wrote to a global file handle
// can supply a Sink; a nil Sink is always safe to use.
type Sink interface {
	Debugf(format string, args ...any)
}

// noopSink discards everything; used whenever a caller passes a nil
// Sink, so the hot loop never has to nil-check before calling.
type noopSink struct{}

func (noopSink) Debugf(string, ...any) {}

func sinkOrNoop(s Sink) Sink {
	if s == nil {
		return noopSink{}
	}

	return s
}
