package depends

import (
	"errors"
	"log"
)

// ── Invoker ──────────────────────────────────────────────────────────────────

// Invoker orchestrates one request: fresh scope, dependency resolution,
// handler call, and an unconditional teardown drain in reverse acquisition
// order. The drain runs on every exit path — success, provider failure or
// handler failure — so a scoped resource can never leak.
type Invoker struct {
	resolver *Resolver
	logger   *log.Logger
}

// NewInvoker creates an Invoker with its own Resolver, logging teardown
// failures through the default logger.
func NewInvoker() *Invoker {
	return &Invoker{resolver: NewResolver(), logger: log.Default()}
}

// SetLogger replaces the logger used for teardown failure reports.
// A nil logger silences them (they are still returned as a TeardownError).
func (in *Invoker) SetLogger(l *log.Logger) { in.logger = l }

// Override substitutes a dependency for every subsequent Invoke —
// see Resolver.Override.
func (in *Invoker) Override(original, replacement *Provider) {
	in.resolver.Override(original, replacement)
}

// ClearOverrides removes all dependency overrides.
func (in *Invoker) ClearOverrides() { in.resolver.ClearOverrides() }

// Invoke handles one request against handler. supplied carries the plain
// (non-dependency) arguments; the handler and every provider in its graph
// read their plain parameters from it.
//
// Whatever happens — success, a provider failing mid-resolution, or the
// handler itself failing — every release recorded so far runs before Invoke
// returns, in strict reverse acquisition order. A release failure is
// reported as (or joined onto) the returned error but never suppresses the
// remaining releases.
func (in *Invoker) Invoke(handler *Provider, supplied Args) (result any, err error) {
	if handler == nil {
		panic("depends: Invoke called with a nil handler")
	}
	if supplied == nil {
		supplied = Args{}
	}

	scope := NewScope()
	defer func() {
		if terr := scope.drain(in.logger); terr != nil {
			if err != nil {
				// Keep the provider/handler failure primary; the teardown
				// failure stays observable through errors.As / Unwrap.
				err = errors.Join(err, terr)
			} else {
				err = terr
			}
			result = nil
		}
		// Scope is discarded here; nothing survives the request.
	}()

	args, err := in.resolver.Resolve(handler, scope, supplied)
	if err != nil {
		return nil, err
	}

	return in.resolver.invoke(handler, args, scope)
}
