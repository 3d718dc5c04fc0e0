package depends

import (
	"fmt"
	"log"
	"strings"
)

// maxResolutionDepth bounds recursion for pathological graphs. Cycle
// detection already catches self-reference; this catches absurdly deep
// but acyclic chains.
const maxResolutionDepth = 256

// ── Scope ────────────────────────────────────────────────────────────────────

// Scope is the per-request state of one Invoke call: the dependency cache
// and the ordered list of pending releases. A Scope is created at the start
// of a request, mutated only while that request resolves, and discarded
// after teardown drains. It is never shared between requests, so no locking
// is needed.
type Scope struct {
	// provider id → resolved value. Only dependency-resolved values are
	// written here; plain parameters never enter the cache.
	cache map[uint64]any

	// pending releases, in acquisition order. Drained in reverse so a
	// provider is torn down only after everything that depended on it.
	teardown []teardownHandle

	// providers on the current resolution path, for cycle detection.
	stack []*Provider
}

type teardownHandle struct {
	provider string
	release  ReleaseFunc
}

// NewScope creates an empty request scope.
func NewScope() *Scope {
	return &Scope{cache: make(map[uint64]any)}
}

// cached looks up a previously resolved value.
func (s *Scope) cached(id uint64) (any, bool) {
	v, ok := s.cache[id]
	return v, ok
}

// store records a resolved value. Called as soon as a dependency finishes,
// before its siblings resolve, so diamond references hit the cache.
func (s *Scope) store(id uint64, v any) {
	s.cache[id] = v
}

// pushTeardown appends a pending release. A handle sits in the list iff its
// acquire completed and its release has not yet run.
func (s *Scope) pushTeardown(provider string, release ReleaseFunc) {
	s.teardown = append(s.teardown, teardownHandle{provider: provider, release: release})
}

// enter pushes a provider onto the resolution path, failing on re-entry
// (a cycle) or pathological depth.
func (s *Scope) enter(p *Provider) error {
	if len(s.stack) >= maxResolutionDepth {
		return fmt.Errorf("%w (%d)", ErrDepthExceeded, maxResolutionDepth)
	}
	for _, onPath := range s.stack {
		if onPath.id == p.id {
			return fmt.Errorf("%w: %s", ErrCircularDependency, s.chain(p))
		}
	}
	s.stack = append(s.stack, p)
	return nil
}

// exit pops the resolution path.
func (s *Scope) exit() {
	s.stack = s.stack[:len(s.stack)-1]
}

// chain renders the resolution path for cycle error messages.
func (s *Scope) chain(last *Provider) string {
	names := make([]string, 0, len(s.stack)+1)
	for _, p := range s.stack {
		names = append(names, p.name)
	}
	names = append(names, last.name)
	return strings.Join(names, " -> ")
}

// drain runs every pending release in reverse acquisition order. A failing
// release is logged and collected but never stops the drain. The teardown
// list is cleared first so no release can run twice.
func (s *Scope) drain(logger *log.Logger) error {
	handles := s.teardown
	s.teardown = nil

	var errs []error
	for i := len(handles) - 1; i >= 0; i-- {
		h := handles[i]
		if err := h.release(); err != nil {
			if logger != nil {
				logger.Printf("depends: teardown of %q failed: %v", h.provider, err)
			}
			errs = append(errs, fmt.Errorf("release of %q: %w", h.provider, err))
		}
	}
	if len(errs) > 0 {
		return &TeardownError{Errs: errs}
	}
	return nil
}
