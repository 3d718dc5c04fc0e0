package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaheerzaman/my-fastapi/app"
	"github.com/shaheerzaman/my-fastapi/framework/depends"
)

func TestApplication_EndToEnd(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	application := app.New("testdata/empty.env")

	if !application.IsTesting() {
		t.Errorf("environment: got %q", application.Environment())
	}

	getConn := depends.NewScoped("get_conn",
		func(args depends.Args) (any, depends.ReleaseFunc, error) {
			return "conn", func() error { return nil }, nil
		})
	application.Get("/users/me", depends.New("profile",
		func(args depends.Args) (any, error) {
			return map[string]any{"conn": args.String("db")}, nil
		},
		depends.Depends("db", getConn),
	))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rr := httptest.NewRecorder()
	application.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m["conn"] != "conn" {
		t.Errorf("body: got %v", m)
	}
}

func TestApplication_OverrideDependency(t *testing.T) {
	application := app.New("testdata/empty.env")

	real := depends.New("real", func(args depends.Args) (any, error) { return "real", nil })
	fake := depends.New("fake", func(args depends.Args) (any, error) { return "fake", nil })

	application.Get("/v", depends.New("v", func(args depends.Args) (any, error) {
		return map[string]any{"v": args["dep"]}, nil
	}, depends.Depends("dep", real)))

	application.OverrideDependency(real, fake)
	defer application.ClearOverrides()

	req := httptest.NewRequest(http.MethodGet, "/v", nil)
	rr := httptest.NewRecorder()
	application.Router.ServeHTTP(rr, req)

	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m["v"] != "fake" {
		t.Errorf("got %v, want override value", m["v"])
	}
}
