// Package format reformats georm schema files into a canonical layout.
package format

import (
	"fmt"
	"strings"

	"github.com/georm-db/georm/gsl/ast"
	"github.com/georm-db/georm/gsl/parser"
)

// Reformat parses the source and renders it back in canonical form: the
// table property first, fields column-aligned, block attributes last.
func Reformat(source string, indentWidth int) (string, error) {
	schema, err := parser.ParseSchemaString("schema.georm", source)
	if err != nil {
		return "", fmt.Errorf("cannot reformat invalid schema: %w", err)
	}

	var sb strings.Builder
	for i, entity := range schema.Entities {
		if i > 0 {
			sb.WriteString("\n")
		}
		renderEntity(&sb, entity, strings.Repeat(" ", indentWidth))
	}
	return sb.String(), nil
}

func renderEntity(sb *strings.Builder, entity *ast.Entity, indent string) {
	renderDoc(sb, entity.Documentation, "")
	fmt.Fprintf(sb, "entity %s {\n", entity.GetName())

	for _, table := range entity.TableProps() {
		fmt.Fprintf(sb, "%stable %q\n", indent, table.Name)
	}

	fields := entity.Fields()
	if len(fields) > 0 {
		sb.WriteString("\n")
		nameWidth, typeWidth := fieldWidths(fields)
		for _, field := range fields {
			renderDoc(sb, field.Documentation, indent)
			renderField(sb, field, indent, nameWidth, typeWidth)
		}
	}

	if blocks := entity.BlockAttributes(); len(blocks) > 0 {
		sb.WriteString("\n")
		for _, block := range blocks {
			fmt.Fprintf(sb, "%s%s\n", indent, block.String())
		}
	}

	sb.WriteString("}\n")
}

func renderField(sb *strings.Builder, field *ast.Field, indent string, nameWidth, typeWidth int) {
	typeName := field.GetTypeName()
	if field.IsOptional() {
		typeName += "?"
	}

	fmt.Fprintf(sb, "%s%-*s %-*s", indent, nameWidth, field.GetName(), typeWidth, typeName)
	for _, attr := range field.Attributes {
		fmt.Fprintf(sb, " %s", attr.String())
	}
	// Trailing spaces from the width padding are dropped for fields
	// without attributes.
	trimTrailingSpaces(sb)
	sb.WriteString("\n")
}

func fieldWidths(fields []*ast.Field) (nameWidth, typeWidth int) {
	for _, field := range fields {
		if n := len(field.GetName()); n > nameWidth {
			nameWidth = n
		}
		t := len(field.GetTypeName())
		if field.IsOptional() {
			t++
		}
		if t > typeWidth {
			typeWidth = t
		}
	}
	return nameWidth, typeWidth
}

func renderDoc(sb *strings.Builder, doc *ast.CommentBlock, indent string) {
	if doc == nil {
		return
	}
	for _, comment := range doc.Comments {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.TrimSpace(comment.Text))
	}
}

// trimTrailingSpaces removes padding spaces left at the end of the current
// line in the builder.
func trimTrailingSpaces(sb *strings.Builder) {
	s := sb.String()
	trimmed := strings.TrimRight(s, " ")
	if len(trimmed) != len(s) {
		sb.Reset()
		sb.WriteString(trimmed)
	}
}
