package depends

import (
	"fmt"
	"sync/atomic"
)

// ── Argument map ─────────────────────────────────────────────────────────────

// Args is the argument map a provider function is invoked with:
// parameter name → resolved (or caller-supplied) value.
type Args map[string]any

// String returns args[key] as a string (empty if absent or not a string).
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// ── Provider functions ───────────────────────────────────────────────────────

// DirectFunc is a provider body with no cleanup obligation.
//
//	// FastAPI: def get_user(conn = Depends(get_db)): return ...
//	func(args depends.Args) (any, error) { return fetchUser(args["conn"]), nil }
type DirectFunc func(args Args) (any, error)

// ReleaseFunc runs a scoped provider's cleanup. It is called exactly once,
// after the handler and every downstream provider have finished.
type ReleaseFunc func() error

// ScopedFunc is a provider body split into acquire and release — the Go
// rendering of FastAPI's yield-dependencies.
//
//	// FastAPI: def get_db():
//	//              conn = connect()
//	//              try:     yield conn
//	//              finally: conn.close()
//	func(args depends.Args) (any, depends.ReleaseFunc, error) {
//	    conn := connect()
//	    return conn, conn.Close, nil
//	}
type ScopedFunc func(args Args) (any, ReleaseFunc, error)

// ── Provider ─────────────────────────────────────────────────────────────────

// providerIDs hands out stable registration ids. The per-request cache is
// keyed by these ids, never by comparing function values.
var providerIDs atomic.Uint64

// Provider is a registered callable the resolver can invoke to produce a
// value. A provider declares its parameters up front; parameters marked with
// Depends form the edges of the dependency graph.
//
//	getDB := depends.NewScoped("get_db_connection", openDB)
//	getUser := depends.New("get_current_user", fetchUser,
//	    depends.Depends("conn", getDB),
//	)
type Provider struct {
	id     uint64
	name   string
	params []Param
	direct DirectFunc
	scoped ScopedFunc
}

// New registers a direct provider: the function's return value is the
// resolved value, and there is nothing to tear down.
func New(name string, fn DirectFunc, params ...Param) *Provider {
	if fn == nil {
		panic(fmt.Sprintf("depends: provider %q has a nil function", name))
	}
	return newProvider(name, params, fn, nil)
}

// NewScoped registers a scoped provider: the function returns the usable
// value plus a release that the Invoker runs after the request, in reverse
// acquisition order.
func NewScoped(name string, fn ScopedFunc, params ...Param) *Provider {
	if fn == nil {
		panic(fmt.Sprintf("depends: provider %q has a nil function", name))
	}
	return newProvider(name, params, nil, fn)
}

func newProvider(name string, params []Param, direct DirectFunc, scoped ScopedFunc) *Provider {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.name == "" {
			panic(fmt.Sprintf("depends: provider %q has an unnamed parameter", name))
		}
		if seen[p.name] {
			panic(fmt.Sprintf("depends: provider %q declares parameter %q twice", name, p.name))
		}
		seen[p.name] = true
	}
	return &Provider{
		id:     providerIDs.Add(1),
		name:   name,
		params: params,
		direct: direct,
		scoped: scoped,
	}
}

// Name returns the provider's registration name.
func (p *Provider) Name() string { return p.name }

// ID returns the provider's stable registration id — the per-request
// cache key.
func (p *Provider) ID() uint64 { return p.id }

// IsScoped reports whether the provider carries a release phase.
func (p *Provider) IsScoped() bool { return p.scoped != nil }

// Params returns a copy of the provider's declared parameters.
func (p *Provider) Params() []Param {
	out := make([]Param, len(p.params))
	copy(out, p.params)
	return out
}

// ── Parameters ───────────────────────────────────────────────────────────────

// Param describes one parameter of a provider: either dependency-marked
// (resolved by invoking another provider) or plain (supplied by the caller
// of Invoke, outside DI).
type Param struct {
	name       string
	provider   *Provider
	def        any
	hasDefault bool
}

// Depends marks a parameter as resolved by another provider.
//
//	// FastAPI: user: dict = Depends(get_user_from_db)
//	depends.Depends("user", getUserFromDB)
func Depends(name string, provider *Provider) Param {
	if provider == nil {
		panic(fmt.Sprintf("depends: parameter %q depends on a nil provider", name))
	}
	return Param{name: name, provider: provider}
}

// Plain declares a caller-supplied parameter. It is passed through from the
// supplied arguments untouched and never enters the dependency cache.
func Plain(name string) Param {
	return Param{name: name}
}

// PlainDefault declares a caller-supplied parameter with a fallback value
// used when the caller supplies nothing.
//
//	// FastAPI: limit: int = 10
//	depends.PlainDefault("limit", 10)
func PlainDefault(name string, def any) Param {
	return Param{name: name, def: def, hasDefault: true}
}

// Name returns the parameter name.
func (p Param) Name() string { return p.name }

// Dependency returns the provider this parameter depends on, if any.
func (p Param) Dependency() (*Provider, bool) { return p.provider, p.provider != nil }

// Default returns the parameter's fallback value, if one was declared.
func (p Param) Default() (any, bool) { return p.def, p.hasDefault }
