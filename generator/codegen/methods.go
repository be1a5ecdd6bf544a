package codegen

import (
	"fmt"
	"strings"

	"github.com/georm-db/georm/gsl/resolve"
)

// renderFind emits the package-level finder, and the unexported refetch
// helper on dialects that cannot use RETURNING.
func (w *Writer) renderFind(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	prefix := statementPrefix(e)
	v := receiverName(e)
	params, args := idParams(e)

	fmt.Fprintf(b, "// Find%s loads the %s with the given identifier. It returns\n", name, name)
	b.WriteString("// runtime.ErrNotFound when no row matches.\n")
	fmt.Fprintf(b, "func Find%s(ctx context.Context, db runtime.Queryer, %s) (*%s, error) {\n", name, params, name)
	fmt.Fprintf(b, "\tvar %s %s\n", v, name)
	fmt.Fprintf(b, "\terr := db.QueryRowContext(ctx, %sFindStmt, %s).Scan(%s)\n", prefix, args, scanList(v, e))
	b.WriteString("\tif errors.Is(err, sql.ErrNoRows) {\n\t\treturn nil, runtime.ErrNotFound\n\t}\n")
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	fmt.Fprintf(b, "\treturn &%s, nil\n}\n\n", v)

	if w.needsRefetch(e) {
		fmt.Fprintf(b, "func (%s *%s) refetch(ctx context.Context, db runtime.Queryer) error {\n", v, name)
		fmt.Fprintf(b, "\terr := db.QueryRowContext(ctx, %sFindStmt, %s).Scan(%s)\n",
			prefix, argList(v, e.IDFields()), scanList(v, e))
		b.WriteString("\tif errors.Is(err, sql.ErrNoRows) {\n\t\treturn runtime.ErrNotFound\n\t}\n")
		b.WriteString("\treturn err\n}\n\n")
	}
}

// needsRefetch reports whether the entity's mutating methods reload the row
// with a second query instead of RETURNING.
func (w *Writer) needsRefetch(e *resolve.Entity) bool {
	return !w.dialect.SupportsReturning() || len(e.NonIDFields()) == 0
}

func (w *Writer) renderFindAll(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	plural := pluralGoName(e)
	prefix := statementPrefix(e)
	v := receiverName(e)

	fmt.Fprintf(b, "// FindAll%s loads every row of the %s table.\n", plural, e.Table)
	fmt.Fprintf(b, "func FindAll%s(ctx context.Context, db runtime.Queryer) ([]*%s, error) {\n", plural, name)
	fmt.Fprintf(b, "\trows, err := db.QueryContext(ctx, %sFindAllStmt)\n", prefix)
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	b.WriteString("\tdefer rows.Close()\n\n")
	fmt.Fprintf(b, "\tvar out []*%s\n", name)
	b.WriteString("\tfor rows.Next() {\n")
	fmt.Fprintf(b, "\t\tvar %s %s\n", v, name)
	fmt.Fprintf(b, "\t\tif err := rows.Scan(%s); err != nil {\n\t\t\treturn nil, err\n\t\t}\n", scanList(v, e))
	fmt.Fprintf(b, "\t\tout = append(out, &%s)\n", v)
	b.WriteString("\t}\n")
	b.WriteString("\treturn out, rows.Err()\n}\n\n")
}

func (w *Writer) renderCreate(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	prefix := statementPrefix(e)
	v := receiverName(e)
	insertArgs := argList(v, e.Fields)

	fmt.Fprintf(b, "// Create inserts the receiver and refreshes it from the stored row.\n")
	fmt.Fprintf(b, "func (%s *%s) Create(ctx context.Context, db runtime.Queryer) error {\n", v, name)

	if w.dialect.SupportsReturning() {
		fmt.Fprintf(b, "\treturn db.QueryRowContext(ctx, %sInsertStmt, %s).Scan(%s)\n",
			prefix, insertArgs, scanList(v, e))
		b.WriteString("}\n\n")
		return
	}

	id := e.IDFields()[0]
	if !e.HasCompositeID() && id.IsAuto() {
		fmt.Fprintf(b, "\tres, err := db.ExecContext(ctx, %sInsertStmt, %s)\n", prefix, insertArgs)
		b.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
		// The driver reports insert-id 0 when the caller supplied the key.
		fmt.Fprintf(b, "\tif %s.%s == 0 {\n", v, id.GoName)
		b.WriteString("\t\tlast, err := res.LastInsertId()\n")
		b.WriteString("\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s.%s = %s\n\t}\n", v, id.GoName, castFromInt64(id.GoType, "last"))
	} else {
		fmt.Fprintf(b, "\tif _, err := db.ExecContext(ctx, %sInsertStmt, %s); err != nil {\n\t\treturn err\n\t}\n",
			prefix, insertArgs)
	}
	fmt.Fprintf(b, "\treturn %s.refetch(ctx, db)\n}\n\n", v)
}

func (w *Writer) renderUpdate(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	prefix := statementPrefix(e)
	v := receiverName(e)

	if len(e.NonIDFields()) == 0 {
		b.WriteString("// Update verifies the row still exists. Every column is part of the\n")
		b.WriteString("// identifier, so there is nothing to store.\n")
		fmt.Fprintf(b, "func (%s *%s) Update(ctx context.Context, db runtime.Queryer) error {\n", v, name)
		fmt.Fprintf(b, "\treturn %s.refetch(ctx, db)\n}\n\n", v)
		return
	}

	updateArgs := argList(v, e.NonIDFields()) + ", " + argList(v, e.IDFields())
	b.WriteString("// Update stores the receiver's non-identifier columns and refreshes it\n")
	b.WriteString("// from the stored row. It returns runtime.ErrNotFound when the row does\n")
	b.WriteString("// not exist.\n")
	fmt.Fprintf(b, "func (%s *%s) Update(ctx context.Context, db runtime.Queryer) error {\n", v, name)

	if w.dialect.SupportsReturning() {
		fmt.Fprintf(b, "\terr := db.QueryRowContext(ctx, %sUpdateStmt, %s).Scan(%s)\n",
			prefix, updateArgs, scanList(v, e))
		b.WriteString("\tif errors.Is(err, sql.ErrNoRows) {\n\t\treturn runtime.ErrNotFound\n\t}\n")
		b.WriteString("\treturn err\n}\n\n")
		return
	}

	fmt.Fprintf(b, "\tif _, err := db.ExecContext(ctx, %sUpdateStmt, %s); err != nil {\n\t\treturn err\n\t}\n",
		prefix, updateArgs)
	fmt.Fprintf(b, "\treturn %s.refetch(ctx, db)\n}\n\n", v)
}

func (w *Writer) renderUpsert(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	prefix := statementPrefix(e)
	v := receiverName(e)
	insertArgs := argList(v, e.Fields)

	b.WriteString("// CreateOrUpdate inserts the receiver, or updates the row sharing its\n")
	b.WriteString("// identifier, then refreshes the receiver from the stored row.\n")
	fmt.Fprintf(b, "func (%s *%s) CreateOrUpdate(ctx context.Context, db runtime.Queryer) error {\n", v, name)

	switch {
	case w.dialect.SupportsReturning() && len(e.NonIDFields()) > 0:
		fmt.Fprintf(b, "\treturn db.QueryRowContext(ctx, %sUpsertStmt, %s).Scan(%s)\n",
			prefix, insertArgs, scanList(v, e))
	case w.dialect.SupportsReturning():
		// DO NOTHING returns no row when the insert was skipped.
		fmt.Fprintf(b, "\terr := db.QueryRowContext(ctx, %sUpsertStmt, %s).Scan(%s)\n",
			prefix, insertArgs, scanList(v, e))
		b.WriteString("\tif errors.Is(err, sql.ErrNoRows) {\n")
		fmt.Fprintf(b, "\t\treturn %s.refetch(ctx, db)\n\t}\n", v)
		b.WriteString("\treturn err\n")
	default:
		fmt.Fprintf(b, "\tif _, err := db.ExecContext(ctx, %sUpsertStmt, %s); err != nil {\n\t\treturn err\n\t}\n",
			prefix, insertArgs)
		fmt.Fprintf(b, "\treturn %s.refetch(ctx, db)\n", v)
	}
	b.WriteString("}\n\n")
}

func (w *Writer) renderDelete(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	prefix := statementPrefix(e)
	v := receiverName(e)
	params, args := idParams(e)

	fmt.Fprintf(b, "// Delete%sByID removes the row with the given identifier. It returns\n", name)
	b.WriteString("// runtime.ErrNotFound when no row matches.\n")
	fmt.Fprintf(b, "func Delete%sByID(ctx context.Context, db runtime.Queryer, %s) error {\n", name, params)
	fmt.Fprintf(b, "\tres, err := db.ExecContext(ctx, %sDeleteStmt, %s)\n", prefix, args)
	b.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
	b.WriteString("\tn, err := res.RowsAffected()\n")
	b.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
	b.WriteString("\tif n == 0 {\n\t\treturn runtime.ErrNotFound\n\t}\n")
	b.WriteString("\treturn nil\n}\n\n")

	fmt.Fprintf(b, "// Delete removes the receiver's row.\n")
	fmt.Fprintf(b, "func (%s *%s) Delete(ctx context.Context, db runtime.Queryer) error {\n", v, name)
	fmt.Fprintf(b, "\treturn Delete%sByID(ctx, db, %s.GetID())\n}\n\n", name, v)
}

func (w *Writer) renderRelations(b *strings.Builder, e *resolve.Entity) {
	for _, r := range e.Relations {
		target := w.entities[r.Target]
		switch r.Kind {
		case resolve.ForeignKey:
			w.renderForeignKeyAccessor(b, e, target, r)
		case resolve.OneToOne:
			w.renderOneToOneAccessor(b, e, target, r)
		default:
			w.renderListAccessor(b, e, target, r)
		}
	}
}

func (w *Writer) renderForeignKeyAccessor(b *strings.Builder, e, target *resolve.Entity, r *resolve.Relation) {
	name := goName(e)
	targetName := resolve.GoName(target.Name)
	prefix := statementPrefix(e)
	v := receiverName(e)
	local := v + "." + r.Local.GoName

	if r.Nullable {
		fmt.Fprintf(b, "// Get%s loads the %s referenced by %s. It returns a nil\n", r.GoName, targetName, r.Local.Name)
		fmt.Fprintf(b, "// %s when the reference is NULL or dangling.\n", targetName)
	} else {
		fmt.Fprintf(b, "// Get%s loads the %s referenced by %s.\n", r.GoName, targetName, r.Local.Name)
	}
	fmt.Fprintf(b, "func (%s *%s) Get%s(ctx context.Context, db runtime.Queryer) (*%s, error) {\n",
		v, name, r.GoName, targetName)
	if r.Nullable {
		fmt.Fprintf(b, "\tif %s == nil {\n\t\treturn nil, nil\n\t}\n", local)
	}
	fmt.Fprintf(b, "\tvar row %s\n", targetName)
	fmt.Fprintf(b, "\terr := db.QueryRowContext(ctx, %s%sStmt, %s).Scan(%s)\n",
		prefix, r.GoName, local, scanList("row", target))
	if r.Nullable {
		b.WriteString("\tif errors.Is(err, sql.ErrNoRows) {\n\t\treturn nil, nil\n\t}\n")
	} else {
		b.WriteString("\tif errors.Is(err, sql.ErrNoRows) {\n\t\treturn nil, runtime.ErrNotFound\n\t}\n")
	}
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	b.WriteString("\treturn &row, nil\n}\n\n")
}

func (w *Writer) renderOneToOneAccessor(b *strings.Builder, e, target *resolve.Entity, r *resolve.Relation) {
	name := goName(e)
	targetName := resolve.GoName(target.Name)
	prefix := statementPrefix(e)
	v := receiverName(e)
	bind := v + "." + e.IDFields()[0].GoName

	fmt.Fprintf(b, "// Get%s loads the %s referencing this %s, if any. It returns\n", r.GoName, targetName, name)
	b.WriteString("// runtime.ErrNotUnique when more than one row matches.\n")
	fmt.Fprintf(b, "func (%s *%s) Get%s(ctx context.Context, db runtime.Queryer) (*%s, error) {\n",
		v, name, r.GoName, targetName)
	fmt.Fprintf(b, "\trows, err := db.QueryContext(ctx, %s%sStmt, %s)\n", prefix, r.GoName, bind)
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	b.WriteString("\tdefer rows.Close()\n\n")
	fmt.Fprintf(b, "\tvar out *%s\n", targetName)
	b.WriteString("\tfor rows.Next() {\n")
	b.WriteString("\t\tif out != nil {\n\t\t\treturn nil, runtime.ErrNotUnique\n\t\t}\n")
	fmt.Fprintf(b, "\t\tvar row %s\n", targetName)
	fmt.Fprintf(b, "\t\tif err := rows.Scan(%s); err != nil {\n\t\t\treturn nil, err\n\t\t}\n", scanList("row", target))
	b.WriteString("\t\tout = &row\n")
	b.WriteString("\t}\n")
	b.WriteString("\tif err := rows.Err(); err != nil {\n\t\treturn nil, err\n\t}\n")
	b.WriteString("\treturn out, nil\n}\n\n")
}

func (w *Writer) renderListAccessor(b *strings.Builder, e, target *resolve.Entity, r *resolve.Relation) {
	name := goName(e)
	targetName := resolve.GoName(target.Name)
	prefix := statementPrefix(e)
	v := receiverName(e)
	bind := v + "." + e.IDFields()[0].GoName

	if r.Kind == resolve.ManyToMany {
		fmt.Fprintf(b, "// Get%s loads the %s rows linked through the %s table.\n", r.GoName, targetName, r.Link.Table)
	} else {
		fmt.Fprintf(b, "// Get%s loads the %s rows referencing this %s.\n", r.GoName, targetName, name)
	}
	fmt.Fprintf(b, "func (%s *%s) Get%s(ctx context.Context, db runtime.Queryer) ([]*%s, error) {\n",
		v, name, r.GoName, targetName)
	fmt.Fprintf(b, "\trows, err := db.QueryContext(ctx, %s%sStmt, %s)\n", prefix, r.GoName, bind)
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	b.WriteString("\tdefer rows.Close()\n\n")
	fmt.Fprintf(b, "\tvar out []*%s\n", targetName)
	b.WriteString("\tfor rows.Next() {\n")
	fmt.Fprintf(b, "\t\tvar row %s\n", targetName)
	fmt.Fprintf(b, "\t\tif err := rows.Scan(%s); err != nil {\n\t\t\treturn nil, err\n\t\t}\n", scanList("row", target))
	b.WriteString("\t\tout = append(out, &row)\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn out, rows.Err()\n}\n\n")
}

// castFromInt64 converts a LastInsertId value to the identifier's Go type.
func castFromInt64(goType, expr string) string {
	if goType == "int64" {
		return expr
	}
	return goType + "(" + expr + ")"
}
