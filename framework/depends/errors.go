package depends

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCircularDependency is returned when the dependency graph contains a
	// cycle. The error message includes the full resolution chain.
	ErrCircularDependency = errors.New("depends: circular dependency detected")

	// ErrUnresolvedParameter is returned when a parameter is neither
	// dependency-marked, supplied by the caller, nor defaulted.
	ErrUnresolvedParameter = errors.New("depends: unresolved parameter")

	// ErrDepthExceeded is returned when resolution recurses deeper than the
	// configured limit.
	ErrDepthExceeded = errors.New("depends: maximum resolution depth exceeded")
)

// ProviderError wraps a failure raised by a provider body (direct call or
// scoped acquire). It is reported to the caller of Invoke after teardown of
// everything already acquired.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("depends: provider %q: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// TeardownError aggregates release failures from one teardown drain. A
// failing release never stops the drain, so the error may hold several
// entries; when a provider failure preceded it, both are joined so neither
// masks the other.
type TeardownError struct {
	Errs []error
}

func (e *TeardownError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("depends: teardown failed: %s", strings.Join(msgs, "; "))
}

func (e *TeardownError) Unwrap() []error { return e.Errs }
