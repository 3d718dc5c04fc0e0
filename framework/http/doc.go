// Package http provides FastAPI-compatible request and response helpers.
//
// # Request
//
// Request wraps *http.Request and feeds the dependency resolver: Args()
// flattens query and path parameters into the plain-argument map, with the
// wrapped request itself under the "request" key so providers can declare
// depends.Plain("request") to receive it.
//
//	req := gohttp.NewRequest(r)
//	args := req.Args()          // {"id": "42", "limit": "10", "request": req}
//
//	var payload struct {
//	    Username string `json:"username"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	token := req.BearerToken()
//	page  := req.Query("page", "1")
//	id    := req.PathParam("id")
//
// # Response
//
// Response wraps http.ResponseWriter with helpers matching FastAPI's
// response conventions: handler return values serialize as-is, errors use
// the {"detail": ...} envelope, and validation failures go out as 422.
//
//	res := gohttp.NewResponse(w)
//
//	res.OK(result)                // 200, body is the value itself
//	res.Created(v)                // 201
//	res.NoContent()               // 204
//
//	res.Error(400, "bad input")   // {"detail": "bad input"}
//	res.Unauthorized()            // 401 {"detail": "Not authenticated"}
//	res.NotFound()                // 404 {"detail": "Not Found"}
//	res.ValidationError(errs)     // 422 {"detail": {"field": ["msg"]}}
//
//	res.HTML(200, "<h1>hi</h1>")  // FastAPI: HTMLResponse
//	res.Text(200, "pong")         // FastAPI: PlainTextResponse
//
// # HTTPError
//
// A provider or handler returns *HTTPError to control the response status —
// FastAPI's HTTPException:
//
//	return nil, gohttp.NewHTTPError(404, "User not found")
package http
