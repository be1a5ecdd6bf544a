package codegen

import (
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/spf13/afero"

	"github.com/georm-db/georm/gsl/resolve"
	"github.com/georm-db/georm/internal/debug"
)

const generatedHeader = "// Code generated by georm. DO NOT EDIT.\n"

// Writer emits one Go source file per entity into the output package.
type Writer struct {
	fs       afero.Fs
	dialect  Dialect
	pkg      string
	entities map[string]*resolve.Entity
}

// NewWriter creates a writer emitting code for the given dialect into a
// package named pkg. The filesystem is injected so tests can capture output
// in memory.
func NewWriter(fs afero.Fs, d Dialect, pkg string) *Writer {
	return &Writer{
		fs:       fs,
		dialect:  d,
		pkg:      pkg,
		entities: make(map[string]*resolve.Entity),
	}
}

// WriteEntities renders every entity into outDir, one file per entity plus
// a shared doc file. Files are gofmt-formatted before writing.
func (w *Writer) WriteEntities(entities []*resolve.Entity, outDir string) error {
	debug.Debug("Writing generated package", "outDir", outDir, "package", w.pkg, "entities", len(entities))

	for _, e := range entities {
		w.entities[e.Name] = e
	}

	if err := w.fs.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := w.writeFile(filepath.Join(outDir, "georm.go"), w.renderDocFile()); err != nil {
		return err
	}

	for _, e := range entities {
		name := fileNameFor(e)
		debug.Debug("Rendering entity", "entity", e.Name, "file", name)
		src, err := w.RenderEntity(e)
		if err != nil {
			debug.Error("Rendering failed", "entity", e.Name, "error", err)
			return fmt.Errorf("render %s: %w", e.Name, err)
		}
		if err := w.writeFile(filepath.Join(outDir, name), src); err != nil {
			return err
		}
	}

	debug.Info("Generated package written", "outDir", outDir, "files", len(entities)+1)
	return nil
}

// RenderEntity produces the formatted source for a single entity.
func (w *Writer) RenderEntity(e *resolve.Entity) ([]byte, error) {
	var body strings.Builder
	w.renderStruct(&body, e)
	w.renderIdentifier(&body, e)
	w.renderStatements(&body, e)
	w.renderFind(&body, e)
	w.renderFindAll(&body, e)
	w.renderCreate(&body, e)
	w.renderUpdate(&body, e)
	w.renderUpsert(&body, e)
	w.renderDelete(&body, e)
	w.renderRelations(&body, e)
	w.renderCompanion(&body, e)

	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\npackage " + w.pkg + "\n\n")
	b.WriteString(w.renderImports(e))
	b.WriteString(body.String())

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func (w *Writer) writeFile(path string, data []byte) error {
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w *Writer) renderDocFile() []byte {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "// Package %s contains data access methods generated from a georm schema\n", w.pkg)
	fmt.Fprintf(&b, "// for the %s dialect.\n", w.dialect.Name())
	fmt.Fprintf(&b, "package %s\n", w.pkg)
	return []byte(b.String())
}

// renderImports derives the import block from the entity's fields and the
// render paths the dialect takes, so the file never carries an unused
// import. Every generated file reaches context, database/sql, and errors
// through its finder.
func (w *Writer) renderImports(e *resolve.Entity) string {
	need := map[string]bool{
		"context":      true,
		"database/sql": true,
		"errors":       true,
	}
	for _, f := range e.Fields {
		switch f.GoType {
		case "time.Time":
			need["time"] = true
		case "json.RawMessage":
			need["encoding/json"] = true
		}
	}
	if e.HasDefaultable() {
		need["strings"] = true
		need["fmt"] = w.companionNeedsFmt(e)
	}

	var b strings.Builder
	b.WriteString("import (\n")
	for _, imp := range []string{"context", "database/sql", "encoding/json", "errors", "fmt", "strings", "time"} {
		if need[imp] {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
	}
	b.WriteString("\n\t\"github.com/georm-db/georm/runtime\"\n")
	b.WriteString(")\n\n")
	return b.String()
}

// companionNeedsFmt reports whether the companion's create formats
// placeholders or errors at run time.
func (w *Writer) companionNeedsFmt(e *resolve.Entity) bool {
	if _, ok := w.dialect.(PostgresDialect); ok {
		return true
	}
	if w.dialect.SupportsReturning() {
		return false
	}
	ids := e.IDFields()
	if e.HasCompositeID() {
		for _, f := range ids {
			if f.Defaultable {
				return true
			}
		}
		return false
	}
	return ids[0].Defaultable && !isNumericID(ids[0])
}

func (w *Writer) renderStruct(b *strings.Builder, e *resolve.Entity) {
	if e.Doc != "" {
		for _, line := range strings.Split(e.Doc, "\n") {
			fmt.Fprintf(b, "// %s\n", line)
		}
	} else {
		fmt.Fprintf(b, "// %s is mapped to the %s table.\n", goName(e), e.Table)
	}
	fmt.Fprintf(b, "type %s struct {\n", goName(e))
	for _, f := range e.Fields {
		fmt.Fprintf(b, "\t%s %s `db:%q`\n", f.GoName, fieldGoType(f), f.Name)
	}
	b.WriteString("}\n\n")
}

// renderIdentifier emits the GetID accessor, and for composite keys the
// identifier holder struct.
func (w *Writer) renderIdentifier(b *strings.Builder, e *resolve.Entity) {
	recv := receiverName(e)
	if !e.HasCompositeID() {
		id := e.IDFields()[0]
		fmt.Fprintf(b, "// GetID returns the identifier of the receiver.\n")
		fmt.Fprintf(b, "func (%s *%s) GetID() %s {\n\treturn %s.%s\n}\n\n",
			recv, goName(e), id.GoType, recv, id.GoName)
		return
	}

	idType := goName(e) + "ID"
	fmt.Fprintf(b, "// %s holds the composite identifier of a %s.\n", idType, goName(e))
	fmt.Fprintf(b, "type %s struct {\n", idType)
	for _, f := range e.IDFields() {
		fmt.Fprintf(b, "\t%s %s\n", f.GoName, f.GoType)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// GetID returns the composite identifier of the receiver.\n")
	fmt.Fprintf(b, "func (%s *%s) GetID() %s {\n", recv, goName(e), idType)
	fmt.Fprintf(b, "\treturn %s{\n", idType)
	for _, f := range e.IDFields() {
		fmt.Fprintf(b, "\t\t%s: %s.%s,\n", f.GoName, recv, f.GoName)
	}
	b.WriteString("\t}\n}\n\n")
}

func (w *Writer) renderStatements(b *strings.Builder, e *resolve.Entity) {
	stmts := BuildStatements(e, w.dialect)
	prefix := statementPrefix(e)

	b.WriteString("const (\n")
	fmt.Fprintf(b, "\t%sFindStmt    = %q\n", prefix, stmts.Find)
	fmt.Fprintf(b, "\t%sFindAllStmt = %q\n", prefix, stmts.FindAll)
	fmt.Fprintf(b, "\t%sInsertStmt  = %q\n", prefix, stmts.Insert)
	if stmts.Update != "" {
		fmt.Fprintf(b, "\t%sUpdateStmt  = %q\n", prefix, stmts.Update)
	}
	fmt.Fprintf(b, "\t%sUpsertStmt  = %q\n", prefix, stmts.Upsert)
	fmt.Fprintf(b, "\t%sDeleteStmt  = %q\n", prefix, stmts.Delete)
	for _, r := range e.Relations {
		target := w.entities[r.Target]
		fmt.Fprintf(b, "\t%s%sStmt = %q\n", prefix, r.GoName, RelationQuery(e, target, r, w.dialect))
	}
	b.WriteString(")\n\n")
}

// statementPrefix is the lower-camel entity name used for the statement
// constants.
func statementPrefix(e *resolve.Entity) string {
	n := goName(e)
	return strings.ToLower(n[:1]) + n[1:]
}

func goName(e *resolve.Entity) string {
	return resolve.GoName(e.Name)
}

func pluralGoName(e *resolve.Entity) string {
	return inflect.Pluralize(goName(e))
}

func receiverName(e *resolve.Entity) string {
	return strings.ToLower(goName(e)[:1])
}

func fileNameFor(e *resolve.Entity) string {
	return inflect.Underscore(e.Name) + ".go"
}

// fieldGoType renders the struct field type; nullable columns are pointers.
func fieldGoType(f *resolve.Field) string {
	if f.Nullable {
		return "*" + f.GoType
	}
	return f.GoType
}

// scanList renders the &x.Field arguments for scanning a full row.
func scanList(varName string, e *resolve.Entity) string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = "&" + varName + "." + f.GoName
	}
	return strings.Join(parts, ", ")
}

// argList renders the receiver's fields in column order for binding.
func argList(recv string, fields []*resolve.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = recv + "." + f.GoName
	}
	return strings.Join(parts, ", ")
}

// idParams renders the identifier parameter list for the package-level
// functions, and the matching bind arguments.
func idParams(e *resolve.Entity) (params, args string) {
	if !e.HasCompositeID() {
		id := e.IDFields()[0]
		return "id " + id.GoType, "id"
	}
	callArgs := make([]string, len(e.IDFields()))
	for i, f := range e.IDFields() {
		callArgs[i] = "id." + f.GoName
	}
	return "id " + goName(e) + "ID", strings.Join(callArgs, ", ")
}

