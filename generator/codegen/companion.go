package codegen

import (
	"fmt"
	"strings"

	"github.com/georm-db/georm/gsl/resolve"
)

// renderCompanion emits the <Entity>Default type for entities with
// defaultable columns. The companion's create assembles the column list at
// call time so that nil defaultable values are omitted and filled in by the
// database.
func (w *Writer) renderCompanion(b *strings.Builder, e *resolve.Entity) {
	if !e.HasDefaultable() {
		return
	}

	name := goName(e)
	companion := name + "Default"

	fmt.Fprintf(b, "// %s inserts %s rows while leaving nil defaultable columns\n", companion, name)
	b.WriteString("// to the database.\n")
	fmt.Fprintf(b, "type %s struct {\n", companion)
	for _, f := range e.Fields {
		typ := fieldGoType(f)
		if f.Defaultable {
			typ = "*" + typ
		}
		fmt.Fprintf(b, "\t%s %s\n", f.GoName, typ)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// Create inserts the present columns and returns the stored row.\n")
	fmt.Fprintf(b, "func (d *%s) Create(ctx context.Context, db runtime.Queryer) (*%s, error) {\n", companion, name)
	fmt.Fprintf(b, "\tcols := make([]string, 0, %d)\n", len(e.Fields))
	fmt.Fprintf(b, "\targs := make([]any, 0, %d)\n", len(e.Fields))
	for _, f := range e.Fields {
		if f.Defaultable {
			fmt.Fprintf(b, "\tif d.%s != nil {\n", f.GoName)
			fmt.Fprintf(b, "\t\tcols = append(cols, %q)\n", f.Name)
			fmt.Fprintf(b, "\t\targs = append(args, *d.%s)\n\t}\n", f.GoName)
		} else {
			fmt.Fprintf(b, "\tcols = append(cols, %q)\n", f.Name)
			fmt.Fprintf(b, "\targs = append(args, d.%s)\n", f.GoName)
		}
	}
	b.WriteString("\n\tplaceholders := make([]string, len(cols))\n")
	b.WriteString("\tfor i := range cols {\n")
	if _, ok := w.dialect.(PostgresDialect); ok {
		b.WriteString("\t\tplaceholders[i] = fmt.Sprintf(\"$%d\", i+1)\n")
	} else {
		b.WriteString("\t\tplaceholders[i] = \"?\"\n")
	}
	b.WriteString("\t}\n")

	if w.dialect.SupportsReturning() {
		w.renderCompanionReturning(b, e)
	} else {
		w.renderCompanionRefetch(b, e)
	}
	b.WriteString("}\n\n")
}

func (w *Writer) renderCompanionReturning(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	fmt.Fprintf(b, "\tquery := \"INSERT INTO %s (\" + strings.Join(cols, \", \") + \") VALUES (\" + strings.Join(placeholders, \", \") + \") RETURNING %s\"\n\n",
		e.Table, strings.Join(e.Columns(), ", "))
	fmt.Fprintf(b, "\tvar row %s\n", name)
	fmt.Fprintf(b, "\tif err := db.QueryRowContext(ctx, query, args...).Scan(%s); err != nil {\n\t\treturn nil, err\n\t}\n",
		scanList("row", e))
	b.WriteString("\treturn &row, nil\n")
}

// renderCompanionRefetch handles dialects without RETURNING. The stored row
// is reloaded through the finder, so the identifier has to be recovered
// first: from the companion when present, from LastInsertId when the
// database assigned a numeric key, and otherwise the create fails.
func (w *Writer) renderCompanionRefetch(b *strings.Builder, e *resolve.Entity) {
	name := goName(e)
	ids := e.IDFields()
	singleNumericDefault := !e.HasCompositeID() && ids[0].Defaultable && isNumericID(ids[0])

	fmt.Fprintf(b, "\tquery := \"INSERT INTO %s (\" + strings.Join(cols, \", \") + \") VALUES (\" + strings.Join(placeholders, \", \") + \")\"\n\n",
		e.Table)

	if singleNumericDefault {
		b.WriteString("\tres, err := db.ExecContext(ctx, query, args...)\n")
	} else {
		b.WriteString("\t_, err := db.ExecContext(ctx, query, args...)\n")
	}
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")

	if !e.HasCompositeID() {
		id := ids[0]
		switch {
		case singleNumericDefault:
			fmt.Fprintf(b, "\tvar id %s\n", id.GoType)
			fmt.Fprintf(b, "\tif d.%s != nil {\n\t\tid = *d.%s\n\t} else {\n", id.GoName, id.GoName)
			b.WriteString("\t\tlast, err := res.LastInsertId()\n")
			b.WriteString("\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
			fmt.Fprintf(b, "\t\tid = %s\n\t}\n", castFromInt64(id.GoType, "last"))
			fmt.Fprintf(b, "\treturn Find%s(ctx, db, id)\n", name)
		case id.Defaultable:
			fmt.Fprintf(b, "\tif d.%s == nil {\n", id.GoName)
			fmt.Fprintf(b, "\t\treturn nil, fmt.Errorf(\"cannot reload %s: %s was assigned by the database\")\n\t}\n",
				e.Table, id.Name)
			fmt.Fprintf(b, "\treturn Find%s(ctx, db, *d.%s)\n", name, id.GoName)
		default:
			fmt.Fprintf(b, "\treturn Find%s(ctx, db, d.%s)\n", name, id.GoName)
		}
		return
	}

	fmt.Fprintf(b, "\tid := %sID{}\n", name)
	for _, f := range ids {
		if f.Defaultable {
			fmt.Fprintf(b, "\tif d.%s == nil {\n", f.GoName)
			fmt.Fprintf(b, "\t\treturn nil, fmt.Errorf(\"cannot reload %s: %s was assigned by the database\")\n\t}\n",
				e.Table, f.Name)
			fmt.Fprintf(b, "\tid.%s = *d.%s\n", f.GoName, f.GoName)
		} else {
			fmt.Fprintf(b, "\tid.%s = d.%s\n", f.GoName, f.GoName)
		}
	}
	fmt.Fprintf(b, "\treturn Find%s(ctx, db, id)\n", name)
}

func isNumericID(f *resolve.Field) bool {
	switch f.GoType {
	case "int", "int16", "int64":
		return true
	}
	return false
}
