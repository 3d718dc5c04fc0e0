package depends

import "fmt"

// ── Resolver ─────────────────────────────────────────────────────────────────

// Resolver walks a provider's dependency graph depth-first and produces the
// argument map needed to invoke it. Each dependency is evaluated at most
// once per scope; diamond shapes collapse onto the cache.
//
// A Resolver carries no per-request state (that lives in the Scope), so one
// Resolver may serve concurrent requests.
type Resolver struct {
	// original provider id → replacement, consulted before every
	// dependency resolution.
	overrides map[uint64]*Provider
}

// NewResolver creates a Resolver with no overrides.
func NewResolver() *Resolver {
	return &Resolver{overrides: make(map[uint64]*Provider)}
}

// Override substitutes replacement wherever original is depended on —
// the moral equivalent of FastAPI's app.dependency_overrides, used to swap
// real resources for fakes in tests.
//
//	// FastAPI: app.dependency_overrides[get_db] = fake_db
//	resolver.Override(getDB, fakeDB)
func (r *Resolver) Override(original, replacement *Provider) {
	if original == nil || replacement == nil {
		panic("depends: Override requires non-nil providers")
	}
	r.overrides[original.id] = replacement
}

// ClearOverrides removes all registered overrides.
func (r *Resolver) ClearOverrides() {
	r.overrides = make(map[uint64]*Provider)
}

func (r *Resolver) override(p *Provider) *Provider {
	if repl, ok := r.overrides[p.id]; ok {
		return repl
	}
	return p
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve produces the argument map for target. Dependency-marked parameters
// are resolved through the graph (cached per scope); plain parameters are
// filled from supplied, falling back to their declared default. A plain
// parameter with neither is a configuration error.
//
// On failure, resolution aborts immediately; releases already recorded in
// the scope remain accurate and ordered, and the enclosing Invoker drains
// them.
func (r *Resolver) Resolve(target *Provider, scope *Scope, supplied Args) (Args, error) {
	args := make(Args, len(target.params))

	for _, param := range target.params {
		dep, ok := param.Dependency()
		if !ok {
			// Plain parameter: caller-supplied, out of DI scope. Nested
			// providers draw from the same supplied map as the handler.
			if v, ok := supplied[param.name]; ok {
				args[param.name] = v
				continue
			}
			if v, ok := param.Default(); ok {
				args[param.name] = v
				continue
			}
			return nil, fmt.Errorf("%w: %q of provider %q",
				ErrUnresolvedParameter, param.name, target.name)
		}

		dep = r.override(dep)

		if v, ok := scope.cached(dep.id); ok {
			args[param.name] = v
			continue
		}

		v, err := r.run(dep, scope, supplied)
		if err != nil {
			return nil, err
		}
		args[param.name] = v
	}

	return args, nil
}

// run evaluates one uncached dependency: resolves its own parameters
// (recursively), invokes it, and caches the result before the caller moves
// on to sibling parameters.
func (r *Resolver) run(dep *Provider, scope *Scope, supplied Args) (any, error) {
	if err := scope.enter(dep); err != nil {
		return nil, err
	}
	defer scope.exit()

	depArgs, err := r.Resolve(dep, scope, supplied)
	if err != nil {
		return nil, err
	}

	v, err := r.invoke(dep, depArgs, scope)
	if err != nil {
		return nil, err
	}

	scope.store(dep.id, v)
	return v, nil
}

// invoke calls a provider body. For scoped providers it advances the
// acquire phase and records the release in the scope's teardown list; the
// release is recorded only when acquire succeeded, so it runs exactly once
// per successful acquire.
func (r *Resolver) invoke(p *Provider, args Args, scope *Scope) (any, error) {
	if p.scoped != nil {
		v, release, err := p.scoped(args)
		if err != nil {
			return nil, &ProviderError{Provider: p.name, Err: err}
		}
		if release != nil {
			scope.pushTeardown(p.name, release)
		}
		return v, nil
	}

	v, err := p.direct(args)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: err}
	}
	return v, nil
}
