// Package validation checks flat request input against declarative
// constraint strings — the role pydantic models play for FastAPI request
// bodies, without the code generation.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "username": "zoya",
//	    "email":    "zoya@example.com",
//	}, validation.Rules{
//	    "username": "required|min:2|max:50",
//	    "email":    "required|email",
//	    "age":      "optional|integer|gte:18",
//	})
//
//	if v.Fails() {
//	    // v.Errors() marshals to {"detail": {"field": ["message"]}},
//	    // which Response.ValidationError sends with a 422 — the same
//	    // status FastAPI uses for request validation failures.
//	}
//
// # Available Constraints
//
//   - required   — present and non-empty
//   - optional   — stop silently when the field is absent
//   - integer, numeric, boolean, email
//   - min:n, max:n — UTF-8 character count bounds
//   - gt:n, gte:n, lt:n, lte:n — numeric bounds
//   - in:a,b,c  — enumeration membership
//   - regex:pat — pattern match
//
// Constraints run left to right; the first failure per field wins.
package validation
