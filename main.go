package main

import (
	"log"
	"net/http"

	"github.com/shaheerzaman/my-fastapi/app"
	"github.com/shaheerzaman/my-fastapi/framework/depends"
	gohttp "github.com/shaheerzaman/my-fastapi/framework/http"
	"github.com/shaheerzaman/my-fastapi/framework/orm"
	"github.com/shaheerzaman/my-fastapi/framework/routing"
	"github.com/shaheerzaman/my-fastapi/framework/validation"
)

// userModel is the demo schema, declared once at startup.
var userModel = orm.NewModel("auth_user",
	orm.Integer("id", orm.PrimaryKey()),
	orm.Char("username", 50),
	orm.Char("email", 100),
)

func main() {
	application := app.New() // loads .env automatically

	// ── Providers ────────────────────────────────────────────────────────────

	// Scoped: acquires a connection per request, releases it after the
	// handler — FastAPI's yield dependency.
	dsn := application.Config.DB.DSN
	getDBConn := depends.NewScoped("get_db_connection",
		func(args depends.Args) (any, depends.ReleaseFunc, error) {
			log.Println("[dep] connecting to the database")
			return dsn, func() error {
				log.Println("[dep] closing the db")
				return nil
			}, nil
		})

	// Direct: fetches the current user through the request-scoped connection.
	getCurrentUser := depends.New("get_current_user",
		func(args depends.Args) (any, error) {
			log.Println("[dep] fetching user with connection:", args.String("conn"))
			return map[string]any{"username": "zoya", "id": 100}, nil
		},
		depends.Depends("conn", getDBConn),
	)

	// ── Path operations ──────────────────────────────────────────────────────

	// GET /users/me — the mini demo: handler ← user ← connection.
	profileOp := depends.New("get_current_user_profile",
		func(args depends.Args) (any, error) {
			user := args["user"].(map[string]any)
			return map[string]any{
				"profile_data": "Data for " + user["username"].(string),
			}, nil
		},
		depends.Depends("user", getCurrentUser),
	)
	application.Get("/users/me", profileOp)

	// GET /users/{id}?limit=n — path and query parameters arrive as plain
	// arguments; both the handler and its dependencies may read them.
	showUserOp := depends.New("show_user",
		func(args depends.Args) (any, error) {
			v := validation.Make(map[string]string{
				"id":    args.String("id"),
				"limit": args.String("limit"),
			}, validation.Rules{
				"id":    "required|integer",
				"limit": "optional|integer|gte:1|lte:100",
			})
			if v.Fails() {
				return nil, gohttp.NewHTTPError(422, v.Errors().Detail)
			}

			qs := userModel.Objects().Filter("id", args.String("id"))
			sql, params := qs.SQL()
			log.Printf("[orm] would execute: %s %v", sql, params)

			return map[string]any{"id": args.String("id"), "conn": args.String("conn")}, nil
		},
		depends.Plain("id"),
		depends.PlainDefault("limit", "10"),
		depends.Depends("conn", getDBConn),
	)
	application.Get("/users/{id}", showUserOp)

	// ── Grouped routes with middleware ───────────────────────────────────────

	application.Router.Prefix("/admin", func(admin *routing.Router) {
		admin.Middleware(requireBearer)

		admin.Get("/schema", depends.New("show_schema",
			func(args depends.Args) (any, error) {
				return map[string]any{
					"table":  userModel.Table(),
					"fields": userModel.Fields(),
					"create": userModel.CreateSQL(),
				}, nil
			}))
	})

	application.Run()
}

// requireBearer rejects requests without a bearer token.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := gohttp.NewRequest(r)
		if req.BearerToken() == "" {
			gohttp.NewResponse(w).Unauthorized()
			return
		}
		next.ServeHTTP(w, r)
	})
}
