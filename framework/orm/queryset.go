package orm

import (
	"fmt"
	"strings"
)

// ── QuerySet ─────────────────────────────────────────────────────────────────

// QuerySet is an immutable, lazy SELECT builder. Filter never mutates the
// receiver: each call returns a new QuerySet with one more predicate, so
// partially built queries can be shared and branched freely. Nothing is
// rendered until SQL() — the Go rendering of Django's lazy queryset.
//
//	qs := user.Objects().Filter("username", "shaheer").Filter("id", 1)
//	sql, args := qs.SQL()
//	// SELECT id, username, email FROM auth_user WHERE username = ? AND id = ?
type QuerySet struct {
	model      *Model
	predicates []predicate
}

// predicate is one equality condition of the WHERE clause.
type predicate struct {
	field string
	value any
}

// Filter returns a copy of the QuerySet with field = value appended to the
// WHERE clause. Filtering on a field the model does not declare is a
// programmer error and panics, the way Django raises FieldError.
func (qs *QuerySet) Filter(field string, value any) *QuerySet {
	if !qs.model.hasField(field) {
		panic(fmt.Sprintf("orm: model %q has no field %q", qs.model.table, field))
	}
	clone := qs.clone()
	clone.predicates = append(clone.predicates, predicate{field: field, value: value})
	return clone
}

// All returns a copy of the QuerySet with the predicates so far.
func (qs *QuerySet) All() *QuerySet {
	return qs.clone()
}

// Count returns the number of accumulated predicates (introspection for
// callers and tests; no query runs).
func (qs *QuerySet) Count() int { return len(qs.predicates) }

// Model returns the model the QuerySet selects from.
func (qs *QuerySet) Model() *Model { return qs.model }

func (qs *QuerySet) clone() *QuerySet {
	preds := make([]predicate, len(qs.predicates))
	copy(preds, qs.predicates)
	return &QuerySet{model: qs.model, predicates: preds}
}

// SQL materializes the query: the SELECT statement with ? placeholders and
// the bound arguments in predicate order. This is the only point where the
// accumulated filters are rendered.
func (qs *QuerySet) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(qs.model.Fields(), ", "))
	b.WriteString(" FROM ")
	b.WriteString(qs.model.table)

	if len(qs.predicates) == 0 {
		return b.String(), nil
	}

	clauses := make([]string, len(qs.predicates))
	args := make([]any, len(qs.predicates))
	for i, p := range qs.predicates {
		clauses[i] = p.field + " = ?"
		args[i] = p.value
	}
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(clauses, " AND "))
	return b.String(), args
}
