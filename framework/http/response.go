package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shaheerzaman/my-fastapi/framework/validation"
)

// ── HTTPError ────────────────────────────────────────────────────────────────

// HTTPError is a failure a provider or handler may return to control the
// response status — mirrors FastAPI's HTTPException. The routing layer
// unwraps it from whatever the resolver reports and renders
// {"detail": ...} with the given status. Detail may be any
// JSON-serializable value, a string in the common case.
//
//	// FastAPI: raise HTTPException(status_code=404, detail="User not found")
//	return nil, gohttp.NewHTTPError(404, "User not found")
type HTTPError struct {
	Status int
	Detail any
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, detail any) *HTTPError {
	return &HTTPError{Status: status, Detail: detail}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %v", e.Status, e.Detail)
}

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with FastAPI-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// JSON sends v as a JSON body with the given status. Handler return values
// are serialized as-is, the way FastAPI serializes a path operation's
// return value.
func (res *Response) JSON(status int, v any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(v)
}

// OK sends 200 with v as the body.
func (res *Response) OK(v any) { res.JSON(http.StatusOK, v) }

// Created sends 201 with v as the body.
func (res *Response) Created(v any) { res.JSON(http.StatusCreated, v) }

// NoContent sends 204 with no body.
func (res *Response) NoContent() { res.w.WriteHeader(http.StatusNoContent) }

// Error sends {"detail": detail} with the given status — the FastAPI error
// envelope.
func (res *Response) Error(status int, detail string) {
	res.JSON(status, envelope{"detail": detail})
}

// WriteHTTPError renders an HTTPError: its status with {"detail": ...}.
func (res *Response) WriteHTTPError(e *HTTPError) {
	res.JSON(e.Status, envelope{"detail": e.Detail})
}

// NotFound sends 404 {"detail": "Not Found"}.
func (res *Response) NotFound(detail ...string) {
	res.Error(http.StatusNotFound, first(detail, "Not Found"))
}

// Unauthorized sends 401 {"detail": "Not authenticated"}.
func (res *Response) Unauthorized(detail ...string) {
	res.Error(http.StatusUnauthorized, first(detail, "Not authenticated"))
}

// ServerError sends 500 {"detail": "Internal Server Error"}.
func (res *Response) ServerError(detail ...string) {
	res.Error(http.StatusInternalServerError, first(detail, "Internal Server Error"))
}

// ValidationError sends 422 with the validation error bag — FastAPI's
// status for request validation failures.
//
//	res.ValidationError(v.Errors())
func (res *Response) ValidationError(errs *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errs)
}

// ── Non-JSON responses ───────────────────────────────────────────────────────

// HTML sends an HTML body — FastAPI's HTMLResponse.
func (res *Response) HTML(status int, body string) {
	res.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.w.WriteHeader(status)
	_, _ = res.w.Write([]byte(body))
}

// Text sends a plain-text body — FastAPI's PlainTextResponse.
func (res *Response) Text(status int, body string) {
	res.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	res.w.WriteHeader(status)
	_, _ = res.w.Write([]byte(body))
}

// ── helpers ──────────────────────────────────────────────────────────────────

// envelope is the FastAPI error body shape: {"detail": "..."}.
type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
