// Package resolve lowers the schema AST into validated entity descriptors.
//
// Descriptors are generation-time-only values: they are produced from the
// AST, consumed by the query synthesizer and the method emitter, and
// discarded when generation completes.
package resolve

import (
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/georm-db/georm/gsl/diagnostics"
)

// Entity describes one entity declaration after validation.
type Entity struct {
	Name      string
	Table     string
	Fields    []*Field
	Relations []*Relation
	Doc       string
	Span      diagnostics.Span
}

// Field describes one column of an entity.
type Field struct {
	Name        string // schema/column name
	GoName      string
	SQLType     string
	GoType      string // base Go type; nullable fields become pointers to it
	ID          bool
	Defaultable bool
	Nullable    bool
	Span        diagnostics.Span
}

// RelationKind tags the closed set of relation variants.
type RelationKind int

const (
	// ForeignKey is a field-level relation following a local foreign-key column.
	ForeignKey RelationKind = iota
	// OneToOne follows a remote column holding this entity's id, at most one row.
	OneToOne
	// OneToMany follows a remote column holding this entity's id, any number of rows.
	OneToMany
	// ManyToMany joins through a link table.
	ManyToMany
)

// String returns the schema-level name of the relation kind.
func (k RelationKind) String() string {
	switch k {
	case ForeignKey:
		return "relation"
	case OneToOne:
		return "one_to_one"
	case OneToMany:
		return "one_to_many"
	case ManyToMany:
		return "many_to_many"
	default:
		return "unknown"
	}
}

// Link describes the intermediary table of a many-to-many relation.
type Link struct {
	Table string
	From  string
	To    string
}

// Relation describes one resolved relation of an entity.
type Relation struct {
	Kind     RelationKind
	Name     string // accessor suffix: the generated method is Get<GoName>
	GoName   string
	Target   string // target entity name
	Table    string // target table
	RemoteID string // target key column, "id" unless overridden
	Nullable bool   // ForeignKey only
	Local    *Field // ForeignKey only: the local column holding the key
	Link     *Link  // ManyToMany only
	Span     diagnostics.Span
}

// IDFields returns the identifier fields in declaration order.
func (e *Entity) IDFields() []*Field {
	var ids []*Field
	for _, f := range e.Fields {
		if f.ID {
			ids = append(ids, f)
		}
	}
	return ids
}

// HasCompositeID returns true if more than one field is marked @id.
func (e *Entity) HasCompositeID() bool {
	return len(e.IDFields()) > 1
}

// NonIDFields returns the fields not part of the identifier, in declaration order.
func (e *Entity) NonIDFields() []*Field {
	var fields []*Field
	for _, f := range e.Fields {
		if !f.ID {
			fields = append(fields, f)
		}
	}
	return fields
}

// DefaultableFields returns the fields marked @defaultable.
func (e *Entity) DefaultableFields() []*Field {
	var fields []*Field
	for _, f := range e.Fields {
		if f.Defaultable {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasDefaultable returns true if any field is marked @defaultable.
func (e *Entity) HasDefaultable() bool {
	return len(e.DefaultableFields()) > 0
}

// Columns returns the column names in declaration order.
func (e *Entity) Columns() []string {
	cols := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		cols[i] = f.Name
	}
	return cols
}

// FindField returns the field with the given schema name, or nil.
func (e *Entity) FindField(name string) *Field {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// GoName converts a schema name to an exported Go identifier.
func GoName(name string) string {
	n := inflect.Camelize(name)
	// Keep the conventional initialism for identifier suffixes.
	if strings.HasSuffix(n, "Id") {
		n = strings.TrimSuffix(n, "Id") + "ID"
	}
	return n
}
