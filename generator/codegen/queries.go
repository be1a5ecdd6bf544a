package codegen

import (
	"fmt"
	"strings"

	"github.com/georm-db/georm/gsl/resolve"
)

// Statements holds the SQL text generated for a single entity. The strings
// are embedded as constants in the generated file, so every query the
// produced methods run is visible to review.
type Statements struct {
	Find    string
	FindAll string
	Insert  string
	Update  string
	Upsert  string
	Delete  string
}

// BuildStatements synthesizes the per-entity statements for a dialect.
func BuildStatements(e *resolve.Entity, d Dialect) Statements {
	cols := e.Columns()
	colList := strings.Join(cols, ", ")

	return Statements{
		Find:    fmt.Sprintf("SELECT %s FROM %s WHERE %s", colList, e.Table, idPredicate(e, d, 1)),
		FindAll: fmt.Sprintf("SELECT %s FROM %s", colList, e.Table),
		Insert:  insertStatement(e, d),
		Update:  updateStatement(e, d),
		Upsert:  upsertStatement(e, d),
		Delete:  fmt.Sprintf("DELETE FROM %s WHERE %s", e.Table, idPredicate(e, d, 1)),
	}
}

// RelationQuery synthesizes the statement backing a relation accessor.
// target is the resolved entity the relation points at; the queried table
// is the one the relation declares, which may differ from the target
// entity's own table.
func RelationQuery(e, target *resolve.Entity, r *resolve.Relation, d Dialect) string {
	cols := target.Columns()
	if r.Kind == resolve.ManyToMany {
		qualified := make([]string, len(cols))
		for i, c := range cols {
			qualified[i] = "remote." + c
		}
		localID := e.IDFields()[0].Name
		return fmt.Sprintf(
			"SELECT %s FROM %s local JOIN %s link ON link.%s = local.%s JOIN %s remote ON link.%s = remote.%s WHERE local.%s = %s",
			strings.Join(qualified, ", "), e.Table,
			r.Link.Table, r.Link.From, localID,
			r.Table, r.Link.To, r.RemoteID,
			localID, d.Placeholder(1),
		)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		strings.Join(cols, ", "), r.Table, r.RemoteID, d.Placeholder(1))
}

// idPredicate renders the WHERE clause matching the identifier columns,
// numbering placeholders from first.
func idPredicate(e *resolve.Entity, d Dialect, first int) string {
	ids := e.IDFields()
	parts := make([]string, len(ids))
	for i, f := range ids {
		parts[i] = fmt.Sprintf("%s = %s", f.Name, d.Placeholder(first+i))
	}
	return strings.Join(parts, " AND ")
}

func insertStatement(e *resolve.Entity, d Dialect) string {
	cols := e.Columns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = d.Placeholder(i + 1)
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		e.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return withReturning(stmt, e, d)
}

func updateStatement(e *resolve.Entity, d Dialect) string {
	assignable := e.NonIDFields()
	if len(assignable) == 0 {
		return ""
	}
	assignments := make([]string, len(assignable))
	for i, f := range assignable {
		assignments[i] = fmt.Sprintf("%s = %s", f.Name, d.Placeholder(i+1))
	}
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		e.Table, strings.Join(assignments, ", "), idPredicate(e, d, len(assignable)+1))
	return withReturning(stmt, e, d)
}

func upsertStatement(e *resolve.Entity, d Dialect) string {
	cols := e.Columns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = d.Placeholder(i + 1)
	}
	idCols := make([]string, 0, len(cols))
	updateCols := make([]string, 0, len(cols))
	for _, f := range e.Fields {
		if f.ID {
			idCols = append(idCols, f.Name)
		} else {
			updateCols = append(updateCols, f.Name)
		}
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)%s",
		e.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		d.UpsertSuffix(idCols, updateCols))
	return withReturning(stmt, e, d)
}

func withReturning(stmt string, e *resolve.Entity, d Dialect) string {
	if !d.SupportsReturning() {
		return stmt
	}
	return stmt + " RETURNING " + strings.Join(e.Columns(), ", ")
}
