package routing

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shaheerzaman/my-fastapi/framework/depends"
	gohttp "github.com/shaheerzaman/my-fastapi/framework/http"
)

// Router maps paths to path-operation providers and dispatches requests
// through the dependency resolver — the transport face of the framework.
//
//	// FastAPI: @app.get("/users/me")
//	//          def profile(user = Depends(get_user)): ...
//	router.Get("/users/me", profileOp)
type Router struct {
	mux     chi.Router
	invoker *depends.Invoker
}

// New creates a Router with sane defaults (Logger, Recoverer, RealIP)
// dispatching through invoker.
func New(invoker *depends.Invoker) *Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	return &Router{mux: r, invoker: invoker}
}

// Invoker returns the dispatching invoker, e.g. to install dependency
// overrides in tests.
func (r *Router) Invoker() *depends.Invoker { return r.invoker }

// ── Path operations ──────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, op *depends.Provider)    { r.mux.Get(pattern, r.dispatch(op)) }
func (r *Router) Post(pattern string, op *depends.Provider)   { r.mux.Post(pattern, r.dispatch(op)) }
func (r *Router) Put(pattern string, op *depends.Provider)    { r.mux.Put(pattern, r.dispatch(op)) }
func (r *Router) Patch(pattern string, op *depends.Provider)  { r.mux.Patch(pattern, r.dispatch(op)) }
func (r *Router) Delete(pattern string, op *depends.Provider) { r.mux.Delete(pattern, r.dispatch(op)) }

// Handle registers a raw http.HandlerFunc, bypassing dependency resolution,
// for endpoints that want the bare ResponseWriter.
func (r *Router) Handle(method, pattern string, h http.HandlerFunc) {
	r.mux.Method(method, pattern, h)
}

// dispatch adapts a path-operation provider to an http.HandlerFunc: extract
// the plain arguments from the request, run one Invoke (resolution, handler,
// teardown), and serialize the outcome.
func (r *Router) dispatch(op *depends.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		request := gohttp.NewRequest(req)
		res := gohttp.NewResponse(w)

		result, err := r.invoker.Invoke(op, request.Args())
		if err != nil {
			writeError(res, op, err)
			return
		}
		res.OK(result)
	}
}

// writeError maps a resolver failure to a response. An HTTPError anywhere in
// the chain controls the status; everything else is a 500 with the detail
// kept out of the body.
func writeError(res *gohttp.Response, op *depends.Provider, err error) {
	var httpErr *gohttp.HTTPError
	if errors.As(err, &httpErr) {
		res.WriteHTTPError(httpErr)
		return
	}
	log.Printf("routing: operation %q failed: %v", op.Name(), err)
	res.ServerError()
}

// ── Groups & Prefixes ────────────────────────────────────────────────────────

// Group creates an inline group sharing the invoker, e.g. to attach
// middleware to a subset of operations.
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx, invoker: r.invoker})
	})
}

// Prefix mounts a sub-router under a URL prefix — FastAPI's
// APIRouter(prefix="/api/v1") + include_router.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx, invoker: r.invoker})
	})
}

// Middleware adds one or more middleware to the router.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// ── Params ───────────────────────────────────────────────────────────────────

// Param extracts a URL path parameter from a raw request.
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ── Serve ────────────────────────────────────────────────────────────────────

// ServeHTTP implements http.Handler so Router can be passed to
// http.ListenAndServe.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handler returns the underlying http.Handler (for testing etc.).
func (r *Router) Handler() http.Handler {
	return r.mux
}
