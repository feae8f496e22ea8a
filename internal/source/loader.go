package source

import (
	"context"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// Sink is the engine-side half of a fetch: a generation token is issued when
// the fetch starts, and the completion is accepted only while that token is
// still current (last-fetch-wins).
type Sink interface {
	BeginFetch() string
	CompleteFetch(gen string, records []record.R, err error) bool
}

// Loader drives fetches from a Source into a Sink. A fetch that completes
// after a newer one was issued is discarded by the sink, so user input racing
// a slow fetch can never be overwritten by stale results.
type Loader struct {
	src Source
}

// NewLoader builds a loader over a source.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load performs one synchronous fetch cycle. On fetch failure the sink
// receives an empty record set plus the error flag. Returns false when the
// completion was stale (a newer fetch was begun while this one ran).
func (l *Loader) Load(ctx context.Context, sink Sink, scope string) bool {
	gen := sink.BeginFetch()
	records, err := l.src.Fetch(ctx, scope)
	return sink.CompleteFetch(gen, records, err)
}

// Begin starts a fetch and returns a completion func, for callers that run
// the fetch asynchronously (the TUI issues it as a command and applies the
// completion on the event loop).
func (l *Loader) Begin(sink Sink) (gen string, complete func(records []record.R, err error) bool) {
	gen = sink.BeginFetch()
	return gen, func(records []record.R, err error) bool {
		return sink.CompleteFetch(gen, records, err)
	}
}

// Fetch exposes the underlying source fetch for asynchronous callers.
func (l *Loader) Fetch(ctx context.Context, scope string) ([]record.R, error) {
	return l.src.Fetch(ctx, scope)
}
