// Package gsl provides the main API for working with the georm schema
// language: parsing, resolution to entity descriptors, and reformatting.
package gsl

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/georm-db/georm/gsl/ast"
	"github.com/georm-db/georm/gsl/core"
	"github.com/georm-db/georm/gsl/diagnostics"
	"github.com/georm-db/georm/gsl/format"
	"github.com/georm-db/georm/gsl/parser"
	"github.com/georm-db/georm/gsl/resolve"
)

// Re-export key types for convenience.
type (
	SourceFile  = core.SourceFile
	Diagnostics = diagnostics.Diagnostics
	Schema      = ast.Schema
	Entity      = resolve.Entity
)

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}

// ParseSchema parses a schema string and returns the AST and diagnostics.
func ParseSchema(input string) (*ast.Schema, diagnostics.Diagnostics) {
	return ParseSchemaFromFile(core.NewSourceFile("schema.georm", input))
}

// ParseSchemaFromFile parses a schema from a source file.
func ParseSchemaFromFile(file core.SourceFile) (*ast.Schema, diagnostics.Diagnostics) {
	schema, err := parser.ParseSchema(file.Path, strings.NewReader(file.Data))
	var diags diagnostics.Diagnostics
	if err != nil {
		diags.PushError(diagnostics.NewParserError(err.Error(), parseErrorSpan(err, file.Data)))
	}
	return schema, diags
}

// LoadEntities parses and resolves a schema file into entity descriptors.
// The returned diagnostics carry every parse and resolution problem found.
func LoadEntities(file core.SourceFile) ([]*resolve.Entity, diagnostics.Diagnostics) {
	schema, diags := ParseSchemaFromFile(file)
	if diags.HasErrors() || schema == nil {
		return nil, diags
	}
	entities, resolveDiags := resolve.Resolve(schema)
	for _, err := range resolveDiags.Errors() {
		diags.PushError(err)
	}
	for _, warn := range resolveDiags.Warnings() {
		diags.PushWarning(warn)
	}
	return entities, diags
}

// Reformat reformats a schema string into the canonical layout.
// Returns an error if the schema cannot be parsed.
func Reformat(source string, indentWidth int) (string, error) {
	return format.Reformat(source, indentWidth)
}

// parseErrorSpan recovers a source span from a participle error so parse
// failures render with the same source window as resolution errors.
func parseErrorSpan(err error, text string) diagnostics.Span {
	perr, ok := err.(participle.Error)
	if !ok {
		return diagnostics.EmptySpan()
	}
	offset := perr.Position().Offset
	if offset > len(text) {
		offset = len(text)
	}
	return diagnostics.NewSpan(offset, offset, diagnostics.FileIDZero)
}
