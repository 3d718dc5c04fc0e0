package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shaheerzaman/my-fastapi/framework/config"
	"github.com/shaheerzaman/my-fastapi/framework/depends"
	"github.com/shaheerzaman/my-fastapi/framework/routing"
)

// Application is the top-level container — mirrors FastAPI's app object:
// it owns the configuration, the router and the dependency invoker, and
// path operations are registered straight on it.
type Application struct {
	Config  *config.Config
	Router  *routing.Router
	Invoker *depends.Invoker
}

// New bootstraps the application.
//
//	// FastAPI: app = FastAPI()
//	application := app.New()
//	application.Get("/users/me", profileOp)
//	application.Run()
func New(envFiles ...string) *Application {
	cfg := config.Load(envFiles...)
	invoker := depends.NewInvoker()

	return &Application{
		Config:  cfg,
		Invoker: invoker,
		Router:  routing.New(invoker),
	}
}

// ── Path operation registration ──────────────────────────────────────────────

// Get registers a GET path operation — FastAPI's @app.get(path).
func (a *Application) Get(pattern string, op *depends.Provider) { a.Router.Get(pattern, op) }

// Post registers a POST path operation — FastAPI's @app.post(path).
func (a *Application) Post(pattern string, op *depends.Provider) { a.Router.Post(pattern, op) }

// Put registers a PUT path operation.
func (a *Application) Put(pattern string, op *depends.Provider) { a.Router.Put(pattern, op) }

// Patch registers a PATCH path operation.
func (a *Application) Patch(pattern string, op *depends.Provider) { a.Router.Patch(pattern, op) }

// Delete registers a DELETE path operation.
func (a *Application) Delete(pattern string, op *depends.Provider) { a.Router.Delete(pattern, op) }

// ── Dependency overrides ─────────────────────────────────────────────────────

// OverrideDependency substitutes replacement wherever original is depended
// on — FastAPI's app.dependency_overrides[original] = replacement.
func (a *Application) OverrideDependency(original, replacement *depends.Provider) {
	a.Invoker.Override(original, replacement)
}

// ClearOverrides removes all dependency overrides.
func (a *Application) ClearOverrides() { a.Invoker.ClearOverrides() }

// ── Environment ──────────────────────────────────────────────────────────────

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }

// ── Serve ────────────────────────────────────────────────────────────────────

// Run starts the HTTP server on APP_PORT (default 8000).
func (a *Application) Run() {
	addr := ":" + a.Config.App.Port
	fmt.Printf("🚀  %s running on http://localhost%s  [%s]\n",
		a.Config.App.Name, addr, a.Config.App.Env)

	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
