package routing_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaheerzaman/my-fastapi/framework/depends"
	gohttp "github.com/shaheerzaman/my-fastapi/framework/http"
	"github.com/shaheerzaman/my-fastapi/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newRouter() *routing.Router {
	return routing.New(depends.NewInvoker())
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	return m
}

func op(name string, fn depends.DirectFunc, params ...depends.Param) *depends.Provider {
	return depends.New(name, fn, params...)
}

// ── Dispatch through the resolver ────────────────────────────────────────────

func TestRouter_Get_DispatchesThroughDependencies(t *testing.T) {
	released := false
	getConn := depends.NewScoped("get_conn",
		func(args depends.Args) (any, depends.ReleaseFunc, error) {
			return "conn-1", func() error { released = true; return nil }, nil
		})

	r := newRouter()
	r.Get("/users/me", op("profile", func(args depends.Args) (any, error) {
		return map[string]any{"conn": args.String("db")}, nil
	}, depends.Depends("db", getConn)))

	rr := do(t, r, http.MethodGet, "/users/me")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if m := decodeJSON(t, rr); m["conn"] != "conn-1" {
		t.Errorf("body: got %v", m)
	}
	if !released {
		t.Error("scoped dependency must be released after the response")
	}
}

func TestRouter_PathAndQueryParams_ArriveAsPlainArgs(t *testing.T) {
	r := newRouter()
	r.Get("/users/{id}", op("show", func(args depends.Args) (any, error) {
		return map[string]any{
			"id":    args.String("id"),
			"limit": args.String("limit"),
		}, nil
	}, depends.Plain("id"), depends.PlainDefault("limit", "10")))

	rr := do(t, r, http.MethodGet, "/users/42?limit=5")
	m := decodeJSON(t, rr)
	if m["id"] != "42" || m["limit"] != "5" {
		t.Errorf("got %v", m)
	}

	// Default applies when the query param is absent.
	rr = do(t, r, http.MethodGet, "/users/42")
	if m := decodeJSON(t, rr); m["limit"] != "10" {
		t.Errorf("limit default: got %v", m["limit"])
	}
}

func TestRouter_RequestAvailableAsPlainArg(t *testing.T) {
	r := newRouter()
	r.Get("/token", op("token", func(args depends.Args) (any, error) {
		req := args["request"].(*gohttp.Request)
		return map[string]any{"token": req.BearerToken()}, nil
	}, depends.Plain("request")))

	req := httptest.NewRequest(http.MethodGet, "/token", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if m := decodeJSON(t, rr); m["token"] != "sekrit" {
		t.Errorf("got %v", m)
	}
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestRouter_HTTPError_ControlsStatusAndDetail(t *testing.T) {
	r := newRouter()
	r.Get("/missing", op("missing", func(args depends.Args) (any, error) {
		return nil, gohttp.NewHTTPError(http.StatusNotFound, "User not found")
	}))

	rr := do(t, r, http.MethodGet, "/missing")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d want 404", rr.Code)
	}
	if m := decodeJSON(t, rr); m["detail"] != "User not found" {
		t.Errorf("detail: got %v", m["detail"])
	}
}

func TestRouter_HTTPErrorFromDependency_Propagates(t *testing.T) {
	auth := depends.New("auth", func(args depends.Args) (any, error) {
		return nil, gohttp.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	})

	r := newRouter()
	r.Get("/secure", op("secure", func(args depends.Args) (any, error) {
		t.Error("handler must not run when auth fails")
		return nil, nil
	}, depends.Depends("user", auth)))

	rr := do(t, r, http.MethodGet, "/secure")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got %d want 401", rr.Code)
	}
}

func TestRouter_UnexpectedFailure_Is500WithoutDetailLeak(t *testing.T) {
	r := newRouter()
	r.Get("/boom", op("boom", func(args depends.Args) (any, error) {
		return nil, errors.New("secret internal state")
	}))

	rr := do(t, r, http.MethodGet, "/boom")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got %d want 500", rr.Code)
	}
	m := decodeJSON(t, rr)
	if m["detail"] != "Internal Server Error" {
		t.Errorf("detail leaked: got %v", m["detail"])
	}
}

// ── Overrides through the router ─────────────────────────────────────────────

func TestRouter_DependencyOverride_SwapsProvider(t *testing.T) {
	real := depends.New("real_db", func(args depends.Args) (any, error) { return "real", nil })
	fake := depends.New("fake_db", func(args depends.Args) (any, error) { return "fake", nil })

	r := newRouter()
	r.Get("/db", op("db", func(args depends.Args) (any, error) {
		return map[string]any{"db": args["db"]}, nil
	}, depends.Depends("db", real)))

	r.Invoker().Override(real, fake)

	if m := decodeJSON(t, do(t, r, http.MethodGet, "/db")); m["db"] != "fake" {
		t.Errorf("got %v, want override value", m["db"])
	}
}

// ── Prefix / Group / raw handlers ────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := newRouter()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/ping", op("ping", func(args depends.Args) (any, error) {
			return "pong", nil
		}))
	})

	if rr := do(t, r, http.MethodGet, "/api/v1/ping"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/v1/ping: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/ping"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /ping: got %d want 404", rr.Code)
	}
}

func TestRouter_Group_Middleware(t *testing.T) {
	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	r := newRouter()
	r.Group(func(g *routing.Router) {
		g.Middleware(mw)
		g.Get("/protected", op("protected", func(args depends.Args) (any, error) {
			return "ok", nil
		}))
	})

	do(t, r, http.MethodGet, "/protected")
	if !called {
		t.Error("expected middleware to be called")
	}
}

func TestRouter_Handle_BypassesResolution(t *testing.T) {
	r := newRouter()
	r.Handle(http.MethodGet, "/raw", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	if rr := do(t, r, http.MethodGet, "/raw"); rr.Code != http.StatusTeapot {
		t.Errorf("got %d want 418", rr.Code)
	}
}

func TestRouter_HandlerInterface(t *testing.T) {
	r := newRouter()
	var _ http.Handler = r.Handler()
}
