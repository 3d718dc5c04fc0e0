package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shaheerzaman/my-fastapi/framework/depends"
)

// Request wraps *http.Request with the helpers providers and handlers need.
// The dispatcher places the wrapped request itself into the argument map
// under "request", so any provider can declare depends.Plain("request") to
// receive it — the way a FastAPI dependency declares `request: Request`.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// ── Argument extraction ──────────────────────────────────────────────────────

// Args builds the plain-argument map for dependency resolution: every query
// parameter and every path parameter, by name, as strings; path parameters
// win on collision. The wrapped request rides along under "request".
func (req *Request) Args() depends.Args {
	args := depends.Args{}

	for key, vals := range req.raw.URL.Query() {
		if len(vals) > 0 {
			args[key] = vals[0]
		}
	}

	if rctx := chi.RouteContext(req.raw.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" {
				continue
			}
			args[key] = rctx.URLParams.Values[i]
		}
	}

	args["request"] = req
	return args
}

// ── Body binding ─────────────────────────────────────────────────────────────

// Bind decodes a JSON request body into v.
//
//	var body CreateUser
//	if err := request.Bind(&body); err != nil { ... }
func (req *Request) Bind(v any) error {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Query returns a query-string value, with an optional fallback.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// PathParam returns a URL path parameter (chi).
func (req *Request) PathParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// BearerToken extracts the token from Authorization: Bearer <token>.
func (req *Request) BearerToken() string {
	auth := req.raw.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// Path returns the URL path.
func (req *Request) Path() string { return req.raw.URL.Path }

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

// IsJSON reports whether the request carries or expects JSON.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json") ||
		strings.Contains(req.ContentType(), "application/json")
}
