package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntity(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Author {
  table "authors"

  id   serial @id @defaultable
  name text
}
`)
	require.NoError(t, err)
	require.Len(t, schema.Entities, 1)

	e := schema.Entities[0]
	require.Equal(t, "Author", e.GetName())

	tables := e.TableProps()
	require.Len(t, tables, 1)
	require.Equal(t, "authors", tables[0].Name)

	fields := e.Fields()
	require.Len(t, fields, 2)
	require.Equal(t, "id", fields[0].GetName())
	require.Equal(t, "serial", fields[0].GetTypeName())
	require.True(t, fields[0].HasAttribute("id"))
	require.True(t, fields[0].HasAttribute("defaultable"))
	require.Equal(t, "name", fields[1].GetName())
	require.False(t, fields[1].IsOptional())
}

func TestParseOptionalField(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Author {
  table "authors"

  id        serial @id
  biography text?
}
`)
	require.NoError(t, err)

	fields := schema.Entities[0].Fields()
	require.True(t, fields[1].IsOptional())
	require.False(t, fields[0].IsOptional())
}

func TestParseDocComments(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
/// Writers with books in the catalog.
/// Spans two lines.
entity Author {
  table "authors"

  /// Primary key.
  id serial @id
}
`)
	require.NoError(t, err)

	e := schema.Entities[0]
	require.Equal(t, "Writers with books in the catalog.\nSpans two lines.", e.GetDocumentation())
	require.Equal(t, "Primary key.", e.Fields()[0].Documentation.GetText())
}

func TestParseRelationAttribute(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Book {
  table "books"

  id        serial  @id
  author_id integer @relation(entity: Author, table: "authors", name: "author")
}
`)
	require.NoError(t, err)

	f := schema.Entities[0].Fields()[1]
	attr := f.FindAttribute("relation")
	require.NotNil(t, attr)

	entityArg := attr.FindArgument("entity")
	require.NotNil(t, entityArg)
	c, ok := entityArg.Value.AsConstantValue()
	require.True(t, ok)
	require.Equal(t, "Author", c.Value)

	tableArg := attr.FindArgument("table")
	require.NotNil(t, tableArg)
	s, ok := tableArg.Value.AsStringValue()
	require.True(t, ok)
	require.Equal(t, "authors", s.Value)
}

func TestParseBlockAttributes(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Book {
  table "books"

  id serial @id

  @@one_to_many(name: "reviews", entity: Review, table: "reviews", remote_id: "book_id")
  @@many_to_many(name: "genres", entity: Genre, table: "genres", link: link(table: "book_genres", from: "book_id", to: "genre_id"))
}
`)
	require.NoError(t, err)

	attrs := schema.Entities[0].BlockAttributes()
	require.Len(t, attrs, 2)
	require.Equal(t, "one_to_many", attrs[0].GetName())
	require.Equal(t, "many_to_many", attrs[1].GetName())

	linkArg := attrs[1].FindArgument("link")
	require.NotNil(t, linkArg)
	fn, ok := linkArg.Value.AsFunction()
	require.True(t, ok)
	require.Equal(t, "link", fn.Name)
	from, ok := fn.FindArgument("from").Value.AsStringValue()
	require.True(t, ok)
	require.Equal(t, "book_id", from.Value)
}

func TestParseBooleanArgument(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Book {
  table "books"

  id        serial   @id
  series_id integer? @relation(entity: Series, table: "series", name: "series", nullable: true)
}
`)
	require.NoError(t, err)

	attr := schema.Entities[0].Fields()[1].FindAttribute("relation")
	v, ok := attr.FindArgument("nullable").Value.AsBooleanValue()
	require.True(t, ok)
	require.True(t, v)
}

func TestParseKeywordAsFieldName(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Export {
  table "exports"

  id    serial @id
  table text
}
`)
	require.NoError(t, err)
	require.Equal(t, "table", schema.Entities[0].Fields()[1].GetName())
}

func TestParseLineComments(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
// a note the parser discards
entity Author {
  table "authors" // trailing note

  id serial @id
}
`)
	require.NoError(t, err)
	require.Len(t, schema.Entities, 1)
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"missing brace":    `entity Author { table "authors"`,
		"missing type":     "entity Author {\n  table \"authors\"\n  id @id\n}",
		"stray token":      `entity Author governs { table "authors" }`,
		"unclosed string":  "entity Author {\n  table \"authors\n}",
		"attr before name": `entity Author { table "authors" @id id serial }`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSchemaString("test.georm", input)
			require.Error(t, err)
		})
	}
}

func TestParseMultipleEntities(t *testing.T) {
	schema, err := ParseSchemaString("test.georm", `
entity Author {
  table "authors"
  id serial @id
}

entity Book {
  table "books"
  id serial @id
}
`)
	require.NoError(t, err)
	require.Equal(t, []string{"Author", "Book"}, schema.EntityNames())
	require.NotNil(t, schema.FindEntity("Book"))
	require.Nil(t, schema.FindEntity("Review"))
}
