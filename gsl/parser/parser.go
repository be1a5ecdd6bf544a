// Package parser parses georm schema files into an AST using Participle.
package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/georm-db/georm/gsl/ast"
)

// schemaParser is the Participle parser instance.
var schemaParser = participle.MustBuild[ast.Schema](
	participle.Lexer(GeormLexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
	participle.Union[ast.Expression](
		&ast.FunctionCall{},
		&ast.StringValue{},
		&ast.NumericValue{},
		&ast.ConstantValue{},
	),
)

// ParseSchema parses a georm schema from an io.Reader.
func ParseSchema(filename string, r io.Reader) (*ast.Schema, error) {
	return schemaParser.Parse(filename, r)
}

// ParseSchemaString parses a georm schema from a string.
func ParseSchemaString(filename, input string) (*ast.Schema, error) {
	return ParseSchema(filename, strings.NewReader(input))
}

// MustParseSchemaString parses a georm schema from a string, panicking on error.
func MustParseSchemaString(filename, input string) *ast.Schema {
	schema, err := ParseSchemaString(filename, input)
	if err != nil {
		panic(err)
	}
	return schema
}
