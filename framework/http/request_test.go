package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	gohttp "github.com/shaheerzaman/my-fastapi/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// withRouteParams attaches chi route parameters to a request, the way the
// router does before a handler runs.
func withRouteParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ── Args ─────────────────────────────────────────────────────────────────────

func TestRequest_Args_CollectsQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users?limit=5&offset=20", nil)
	args := gohttp.NewRequest(r).Args()

	if args["limit"] != "5" || args["offset"] != "20" {
		t.Errorf("got %v", args)
	}
}

func TestRequest_Args_CollectsPathParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	r = withRouteParams(r, map[string]string{"id": "42"})

	args := gohttp.NewRequest(r).Args()
	if args["id"] != "42" {
		t.Errorf("got %v", args)
	}
}

func TestRequest_Args_PathParamWinsOverQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users/42?id=999", nil)
	r = withRouteParams(r, map[string]string{"id": "42"})

	args := gohttp.NewRequest(r).Args()
	if args["id"] != "42" {
		t.Errorf("id: got %v, path param should win", args["id"])
	}
}

func TestRequest_Args_IncludesWrappedRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	req := gohttp.NewRequest(r)

	args := req.Args()
	if args["request"] != req {
		t.Error("args[\"request\"] should be the wrapped request")
	}
}

// ── Bind ─────────────────────────────────────────────────────────────────────

func TestRequest_Bind_JSON(t *testing.T) {
	body := strings.NewReader(`{"username": "zoya", "email": "zoya@example.com"}`)
	r := httptest.NewRequest(http.MethodPost, "/users", body)
	r.Header.Set("Content-Type", "application/json")

	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := gohttp.NewRequest(r).Bind(&payload); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if payload.Username != "zoya" || payload.Email != "zoya@example.com" {
		t.Errorf("got %+v", payload)
	}
}

func TestRequest_Bind_EmptyBodyIsError(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(""))
	var v map[string]any
	if err := gohttp.NewRequest(r).Bind(&v); err == nil {
		t.Error("expected error for empty body")
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func TestRequest_Query_Fallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=2", nil)
	req := gohttp.NewRequest(r)

	if got := req.Query("page", "1"); got != "2" {
		t.Errorf("page: got %q", got)
	}
	if got := req.Query("missing", "1"); got != "1" {
		t.Errorf("missing: got %q want fallback", got)
	}
}

func TestRequest_BearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok-123")

	if got := gohttp.NewRequest(r).BearerToken(); got != "tok-123" {
		t.Errorf("got %q", got)
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := gohttp.NewRequest(r2).BearerToken(); got != "" {
		t.Errorf("got %q for missing header", got)
	}
}

func TestRequest_IsJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("Content-Type", "application/json")
	if !gohttp.NewRequest(r).IsJSON() {
		t.Error("Content-Type application/json should count as JSON")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.Header.Set("Accept", "application/json")
	if !gohttp.NewRequest(r2).IsJSON() {
		t.Error("Accept application/json should count as JSON")
	}
}
