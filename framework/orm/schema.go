package orm

import (
	"fmt"
	"strings"
)

// ── Fields ───────────────────────────────────────────────────────────────────

// Field is the column metadata of one model attribute. Fields are built by
// the typed constructors below and collected into a Model at startup — an
// explicit schema builder instead of Django's class-body metaclass scan.
type Field struct {
	name       string
	dbType     string
	primaryKey bool
}

// FieldOption customizes a field at construction.
type FieldOption func(*Field)

// PrimaryKey marks the field as the model's primary key.
func PrimaryKey() FieldOption {
	return func(f *Field) { f.primaryKey = true }
}

// Char declares a VARCHAR(maxLength) column.
//
//	// Django: username = CharField(max_length=50)
//	orm.Char("username", 50)
func Char(name string, maxLength int, opts ...FieldOption) Field {
	return newField(name, fmt.Sprintf("VARCHAR(%d)", maxLength), opts)
}

// Integer declares an INTEGER column.
//
//	// Django: id = IntegerField(primary_key=True)
//	orm.Integer("id", orm.PrimaryKey())
func Integer(name string, opts ...FieldOption) Field {
	return newField(name, "INTEGER", opts)
}

func newField(name, dbType string, opts []FieldOption) Field {
	f := Field{name: name, dbType: dbType}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Name returns the column name.
func (f Field) Name() string { return f.name }

// DBType returns the SQL column type.
func (f Field) DBType() string { return f.dbType }

// IsPrimaryKey reports whether the field is the primary key.
func (f Field) IsPrimaryKey() bool { return f.primaryKey }

// ── Model ────────────────────────────────────────────────────────────────────

// Model holds a table's schema: name and ordered field metadata.
//
//	user := orm.NewModel("auth_user",
//	    orm.Integer("id", orm.PrimaryKey()),
//	    orm.Char("username", 50),
//	    orm.Char("email", 100),
//	)
type Model struct {
	table  string
	fields []Field
}

// NewModel builds a model. Field order is preserved in generated SQL.
// Duplicate field names or a missing table name are programmer errors and
// panic at startup.
func NewModel(table string, fields ...Field) *Model {
	if table == "" {
		panic("orm: model requires a table name")
	}
	if len(fields) == 0 {
		panic(fmt.Sprintf("orm: model %q requires at least one field", table))
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.name == "" {
			panic(fmt.Sprintf("orm: model %q has an unnamed field", table))
		}
		if seen[f.name] {
			panic(fmt.Sprintf("orm: model %q declares field %q twice", table, f.name))
		}
		seen[f.name] = true
	}
	return &Model{table: table, fields: fields}
}

// Table returns the table name.
func (m *Model) Table() string { return m.table }

// Fields returns the ordered field names.
func (m *Model) Fields() []string {
	names := make([]string, len(m.fields))
	for i, f := range m.fields {
		names[i] = f.name
	}
	return names
}

// PrimaryKey returns the primary-key field name, or "" if none is declared.
func (m *Model) PrimaryKey() string {
	for _, f := range m.fields {
		if f.primaryKey {
			return f.name
		}
	}
	return ""
}

func (m *Model) hasField(name string) bool {
	for _, f := range m.fields {
		if f.name == name {
			return true
		}
	}
	return false
}

// CreateSQL renders the CREATE TABLE statement for the model.
func (m *Model) CreateSQL() string {
	cols := make([]string, len(m.fields))
	for i, f := range m.fields {
		col := f.name + " " + f.dbType
		if f.primaryKey {
			col += " PRIMARY KEY"
		}
		cols[i] = col
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", m.table, strings.Join(cols, ", "))
}

// Objects returns an unfiltered QuerySet over the model — Django's
// Model.objects entry point.
func (m *Model) Objects() *QuerySet {
	return &QuerySet{model: m}
}
