package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georm-db/georm/gsl/diagnostics"
	"github.com/georm-db/georm/gsl/parser"
)

func resolveString(t *testing.T, input string) ([]*Entity, diagnostics.Diagnostics) {
	t.Helper()
	schema, err := parser.ParseSchemaString("test.georm", input)
	require.NoError(t, err)
	return Resolve(schema)
}

func requireErrorContaining(t *testing.T, diags diagnostics.Diagnostics, substr string) {
	t.Helper()
	for _, err := range diags.Errors() {
		if strings.Contains(err.Message(), substr) {
			return
		}
	}
	t.Fatalf("no error containing %q, got %v", substr, diags.Errors())
}

func TestResolveFields(t *testing.T) {
	entities, diags := resolveString(t, `
/// Writers with books in the catalog.
entity Author {
  table "authors"

  id         serial @id @defaultable
  name       text
  biography  text?
  born_on    date
  account_id bigint
}
`)
	require.False(t, diags.HasErrors())
	require.Len(t, entities, 1)

	e := entities[0]
	require.Equal(t, "Author", e.Name)
	require.Equal(t, "authors", e.Table)
	require.Equal(t, "Writers with books in the catalog.", e.Doc)
	require.Equal(t, []string{"id", "name", "biography", "born_on", "account_id"}, e.Columns())

	id := e.Fields[0]
	require.True(t, id.ID)
	require.True(t, id.Defaultable)
	require.True(t, id.IsAuto())
	require.Equal(t, "int", id.GoType)
	require.Equal(t, "ID", id.GoName)

	bio := e.Fields[2]
	require.True(t, bio.Nullable)
	require.Equal(t, "string", bio.GoType)
	require.Equal(t, "Biography", bio.GoName)

	require.Equal(t, "time.Time", e.Fields[3].GoType)
	require.Equal(t, "BornOn", e.Fields[3].GoName)
	require.Equal(t, "AccountID", e.Fields[4].GoName)

	require.False(t, e.HasCompositeID())
	require.Len(t, e.NonIDFields(), 4)
	require.True(t, e.HasDefaultable())
}

func TestResolveCompositeID(t *testing.T) {
	entities, diags := resolveString(t, `
entity Price {
  table "prices"

  book_id  integer @id
  currency text    @id
  amount   bigint
}
`)
	require.False(t, diags.HasErrors())
	e := entities[0]
	require.True(t, e.HasCompositeID())
	require.Len(t, e.IDFields(), 2)
	require.False(t, e.HasDefaultable())
}

func TestResolveMissingTable(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  id serial @id
}
`)
	requireErrorContaining(t, diags, `the "table" property is required.`)
}

func TestResolveDuplicateTableProperty(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"
  table "writers"

  id serial @id
}
`)
	requireErrorContaining(t, diags, `the "table" property can only be declared once.`)
}

func TestResolveMissingIdentifier(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"

  name text
}
`)
	requireErrorContaining(t, diags, "at least one field must be marked with @id.")
}

func TestResolveUnknownScalarType(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"

  id serial @id
  mood feeling
}
`)
	requireErrorContaining(t, diags, `"feeling" is not a known column type.`)
}

func TestResolveDefaultableOnNullable(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"

  id        serial @id
  biography text?  @defaultable
}
`)
	requireErrorContaining(t, diags, "already optional and cannot be marked @defaultable.")
}

func TestResolveDuplicateField(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"

  id   serial @id
  name text
  name text
}
`)
	requireErrorContaining(t, diags, "the field is already defined.")
}

func TestResolveUnknownFieldAttribute(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"

  id serial @id @indexed
}
`)
	requireErrorContaining(t, diags, `Attribute "indexed" is not known.`)
}

func TestResolveDuplicateEntity(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id
}

entity Author {
  table "writers"
  id serial @id
}
`)
	requireErrorContaining(t, diags, `an entity with that name already exists.`)
}

func TestResolveDuplicateEntityTable(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "people"
  id serial @id
}

entity Editor {
  table "people"
  id serial @id
}
`)
	requireErrorContaining(t, diags, `entity "Author" already maps to it.`)
}

func TestResolveForeignKey(t *testing.T) {
	entities, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id
}

entity Book {
  table "books"

  id        serial  @id
  author_id integer @relation(entity: Author, table: "authors", name: "author")
}
`)
	require.False(t, diags.HasErrors())
	require.Len(t, entities, 2)

	book := entities[1]
	require.Len(t, book.Relations, 1)

	r := book.Relations[0]
	require.Equal(t, ForeignKey, r.Kind)
	require.Equal(t, "author", r.Name)
	require.Equal(t, "Author", r.GoName)
	require.Equal(t, "Author", r.Target)
	require.Equal(t, "authors", r.Table)
	require.Equal(t, "id", r.RemoteID)
	require.False(t, r.Nullable)
	require.Same(t, book.Fields[1], r.Local)
}

func TestResolveNullableForeignKey(t *testing.T) {
	entities, diags := resolveString(t, `
entity Series {
  table "series"
  id serial @id
}

entity Book {
  table "books"

  id        serial   @id
  series_id integer? @relation(entity: Series, table: "series", name: "series")
}
`)
	require.False(t, diags.HasErrors())
	require.True(t, entities[1].Relations[0].Nullable)
}

func TestResolveRedundantNullableWarning(t *testing.T) {
	entities, diags := resolveString(t, `
entity Series {
  table "series"
  id serial @id
}

entity Book {
  table "books"

  id        serial   @id
  series_id integer? @relation(entity: Series, table: "series", name: "series", nullable: true)
}
`)
	require.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings(), 1)
	require.Contains(t, diags.Warnings()[0].Message(), `"nullable: true" is redundant.`)
	require.True(t, entities[1].Relations[0].Nullable)
}

func TestResolveNullabilityMismatch(t *testing.T) {
	_, diags := resolveString(t, `
entity Series {
  table "series"
  id serial @id
}

entity Book {
  table "books"

  id        serial  @id
  series_id integer @relation(entity: Series, table: "series", name: "series", nullable: true)
}
`)
	requireErrorContaining(t, diags, "a relation on a required column cannot be declared nullable.")
}

func TestResolveUnknownTargetEntity(t *testing.T) {
	_, diags := resolveString(t, `
entity Book {
  table "books"

  id        serial  @id
  author_id integer @relation(entity: Author, table: "authors", name: "author")
}
`)
	requireErrorContaining(t, diags, `relation target "Author" is not a declared entity.`)
}

func TestResolveBlockRelations(t *testing.T) {
	entities, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id

  @@one_to_many(name: "books", entity: Book, table: "books", remote_id: "author_id")
}

entity Book {
  table "books"
  id serial @id

  @@one_to_one(name: "cover", entity: Cover, table: "covers", remote_id: "book_id")
  @@many_to_many(name: "genres", entity: Genre, table: "genres", link: link(table: "book_genres", from: "book_id", to: "genre_id"))
}

entity Cover {
  table "covers"
  id serial @id
}

entity Genre {
  table "genres"
  id serial @id
}
`)
	require.False(t, diags.HasErrors())

	author := entities[0]
	require.Len(t, author.Relations, 1)
	require.Equal(t, OneToMany, author.Relations[0].Kind)
	require.Equal(t, "author_id", author.Relations[0].RemoteID)

	book := entities[1]
	require.Len(t, book.Relations, 2)
	require.Equal(t, OneToOne, book.Relations[0].Kind)

	m2m := book.Relations[1]
	require.Equal(t, ManyToMany, m2m.Kind)
	require.Equal(t, "id", m2m.RemoteID)
	require.Equal(t, &Link{Table: "book_genres", From: "book_id", To: "genre_id"}, m2m.Link)
}

func TestResolveMissingRelationArguments(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id

  @@one_to_many(entity: Author)
}
`)
	requireErrorContaining(t, diags, `Argument "table" is missing in attribute "one_to_many".`)
	requireErrorContaining(t, diags, `Argument "name" is missing in attribute "one_to_many".`)
}

func TestResolveIncompleteLink(t *testing.T) {
	_, diags := resolveString(t, `
entity Book {
  table "books"
  id serial @id

  @@many_to_many(name: "genres", entity: Genre, table: "genres", link: link(table: "book_genres", from: "book_id"))
}

entity Genre {
  table "genres"
  id serial @id
}
`)
	requireErrorContaining(t, diags, `many_to_many requires "link.to" in its link specification.`)
}

func TestResolveDuplicateRelationName(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id

  @@one_to_many(name: "books", entity: Book, table: "books", remote_id: "author_id")
  @@one_to_many(name: "books", entity: Book, table: "books", remote_id: "editor_id")
}

entity Book {
  table "books"
  id serial @id
}
`)
	requireErrorContaining(t, diags, `relation name "books" is already in use.`)
}

func TestResolveCompositeKeyRelation(t *testing.T) {
	_, diags := resolveString(t, `
entity Price {
  table "prices"

  book_id  integer @id
  currency text    @id

  @@one_to_many(name: "adjustments", entity: Adjustment, table: "adjustments", remote_id: "price_id")
}

entity Adjustment {
  table "adjustments"
  id serial @id
}
`)
	requireErrorContaining(t, diags, "relations are not supported on entities with a composite identifier.")
}

func TestResolveEntityReferenceMustBeBare(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id

  @@one_to_many(name: "books", entity: "Book", table: "books", remote_id: "author_id")
}

entity Book {
  table "books"
  id serial @id
}
`)
	requireErrorContaining(t, diags, `Argument "entity" of attribute "one_to_many" must be an entity name.`)
}

func TestResolveUnknownArgument(t *testing.T) {
	_, diags := resolveString(t, `
entity Author {
  table "authors"
  id serial @id

  @@one_to_many(name: "books", entity: Book, table: "books", cascade: "delete")
}

entity Book {
  table "books"
  id serial @id
}
`)
	requireErrorContaining(t, diags, `Argument "cascade" is not known in attribute "one_to_many".`)
}

func TestResolveDroppedEntityKeepsOthers(t *testing.T) {
	entities, diags := resolveString(t, `
entity Broken {
  table "broken"
  name text
}

entity Author {
  table "authors"
  id serial @id
}
`)
	require.True(t, diags.HasErrors())
	require.Len(t, entities, 1)
	require.Equal(t, "Author", entities[0].Name)
}

func TestGoName(t *testing.T) {
	for in, want := range map[string]string{
		"id":           "ID",
		"author_id":    "AuthorID",
		"name":         "Name",
		"published_at": "PublishedAt",
		"book_price":   "BookPrice",
	} {
		require.Equal(t, want, GoName(in))
	}
}
