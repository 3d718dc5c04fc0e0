package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors collects validation failures per field. JSON output matches the
// body my-fastapi sends with a 422:
//
//	{"detail": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Detail map[string][]string `json:"detail"`
}

func (e *Errors) add(field, msg string) {
	if e.Detail == nil {
		e.Detail = make(map[string][]string)
	}
	e.Detail[field] = append(e.Detail[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Detail) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Detail[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ── Validator ────────────────────────────────────────────────────────────────

// Rules maps field → pipe-separated constraint string.
// e.g. Rules{"email": "required|email", "age": "required|integer|gte:18"}
type Rules map[string]string

// Validator checks a flat map of request input against Rules. Failure
// messages follow pydantic's phrasing, since providers feed the result
// straight into a 422 response.
type Validator struct {
	data   map[string]string
	rules  Rules
	errors *Errors
}

// Make creates a Validator over data.
func Make(data map[string]string, rules Rules) *Validator {
	return &Validator{
		data:   data,
		rules:  rules,
		errors: &Errors{},
	}
}

// Fails runs validation and returns true if any constraint fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all constraints pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the error bag.
func (v *Validator) Errors() *Errors { return v.errors }

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	for field, ruleStr := range v.rules {
		value := v.data[field]

		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// "gte:18" → name=gte, param=18
			name, param, _ := strings.Cut(rule, ":")

			if !v.applyRule(field, value, name, param) {
				break // first failure per field wins
			}
		}
	}
}

// applyRule returns true if the constraint passes.
func (v *Validator) applyRule(field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			v.errors.add(field, "field required")
			return false
		}

	case "optional":
		// Skip the remaining constraints when the field is absent.
		if value == "" {
			return false
		}

	case "integer":
		if _, err := strconv.Atoi(value); err != nil {
			v.errors.add(field, "value is not a valid integer")
			return false
		}

	case "numeric":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			v.errors.add(field, "value is not a valid number")
			return false
		}

	case "boolean":
		if _, err := strconv.ParseBool(strings.ToLower(value)); err != nil {
			v.errors.add(field, "value could not be parsed to a boolean")
			return false
		}

	case "email":
		if _, err := mail.ParseAddress(value); err != nil {
			v.errors.add(field, "value is not a valid email address")
			return false
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) < n {
			v.errors.add(field, fmt.Sprintf("ensure this value has at least %d characters", n))
			return false
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) > n {
			v.errors.add(field, fmt.Sprintf("ensure this value has at most %d characters", n))
			return false
		}

	case "gt":
		if f, _ := strconv.ParseFloat(value, 64); f <= mustFloat(param) {
			v.errors.add(field, fmt.Sprintf("ensure this value is greater than %s", param))
			return false
		}

	case "gte":
		if f, _ := strconv.ParseFloat(value, 64); f < mustFloat(param) {
			v.errors.add(field, fmt.Sprintf("ensure this value is greater than or equal to %s", param))
			return false
		}

	case "lt":
		if f, _ := strconv.ParseFloat(value, 64); f >= mustFloat(param) {
			v.errors.add(field, fmt.Sprintf("ensure this value is less than %s", param))
			return false
		}

	case "lte":
		if f, _ := strconv.ParseFloat(value, 64); f > mustFloat(param) {
			v.errors.add(field, fmt.Sprintf("ensure this value is less than or equal to %s", param))
			return false
		}

	case "in":
		for _, allowed := range strings.Split(param, ",") {
			if strings.TrimSpace(allowed) == value {
				return true
			}
		}
		v.errors.add(field, fmt.Sprintf("value is not a valid enumeration member; permitted: %s", param))
		return false

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil || !re.MatchString(value) {
			v.errors.add(field, "string does not match expected pattern")
			return false
		}
	}

	return true
}

func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
