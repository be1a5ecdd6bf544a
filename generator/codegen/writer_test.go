package codegen

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/georm-db/georm/gsl"
)

const writerSchema = `/// Writers with books in the catalog.
entity Author {
  table "authors"

  id        serial @id @defaultable
  name      text
  biography text?

  @@one_to_many(name: "books", entity: Book, table: "books", remote_id: "author_id")
}

entity Book {
  table "books"

  id        serial  @id @defaultable
  title     text
  author_id integer @relation(entity: Author, table: "authors", name: "author")
}

entity Price {
  table "prices"

  book_id      integer @id
  currency     text    @id
  amount_cents bigint
}
`

func loadWriterEntities(t *testing.T) []*gsl.Entity {
	t.Helper()
	entities, diags := gsl.LoadEntities(gsl.NewSourceFile("schema.georm", writerSchema))
	require.False(t, diags.HasErrors(), diags.ToPrettyString("schema.georm", writerSchema))
	return entities
}

func TestWriteEntities(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, PostgresDialect{}, "models")

	require.NoError(t, w.WriteEntities(loadWriterEntities(t), "out"))

	for _, name := range []string{"georm.go", "author.go", "book.go", "price.go"} {
		exists, err := afero.Exists(fs, "out/"+name)
		require.NoError(t, err)
		require.True(t, exists, "expected out/%s", name)
	}

	doc, err := afero.ReadFile(fs, "out/georm.go")
	require.NoError(t, err)
	require.Contains(t, string(doc), "// Package models contains data access methods")
	require.Contains(t, string(doc), "postgres dialect")
}

func TestRenderEntityAuthor(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, PostgresDialect{}, "models")
	require.NoError(t, w.WriteEntities(loadWriterEntities(t), "out"))

	data, err := afero.ReadFile(fs, "out/author.go")
	require.NoError(t, err)
	src := string(data)

	require.Contains(t, src, "// Code generated by georm. DO NOT EDIT.")
	require.Contains(t, src, "// Writers with books in the catalog.")
	require.Contains(t, src, "type Author struct {")
	require.Contains(t, src, "Biography *string `db:\"biography\"`")
	require.Contains(t, src, "func (a *Author) GetID() int {")
	require.Contains(t, src, `authorFindStmt    = "SELECT id, name, biography FROM authors WHERE id = $1"`)
	require.Contains(t, src, "func FindAuthor(ctx context.Context, db runtime.Queryer, id int) (*Author, error) {")
	require.Contains(t, src, "func FindAllAuthors(ctx context.Context, db runtime.Queryer) ([]*Author, error) {")
	require.Contains(t, src, "func (a *Author) Create(ctx context.Context, db runtime.Queryer) error {")
	require.Contains(t, src, "func (a *Author) CreateOrUpdate(ctx context.Context, db runtime.Queryer) error {")
	require.Contains(t, src, "func DeleteAuthorByID(ctx context.Context, db runtime.Queryer, id int) error {")
	require.Contains(t, src, "func (a *Author) GetBooks(ctx context.Context, db runtime.Queryer) ([]*Book, error) {")
	require.Contains(t, src, "type AuthorDefault struct {")
	require.Contains(t, src, "ID        *int")
	require.NotContains(t, src, "\"time\"")
}

func TestRenderEntityForeignKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, PostgresDialect{}, "models")
	require.NoError(t, w.WriteEntities(loadWriterEntities(t), "out"))

	data, err := afero.ReadFile(fs, "out/book.go")
	require.NoError(t, err)
	src := string(data)

	require.Contains(t, src, `bookAuthorStmt  = "SELECT id, name, biography FROM authors WHERE id = $1"`)
	require.Contains(t, src, "func (b *Book) GetAuthor(ctx context.Context, db runtime.Queryer) (*Author, error) {")
	require.Contains(t, src, "return nil, runtime.ErrNotFound")
}

func TestRenderEntityCompositeID(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, PostgresDialect{}, "models")
	require.NoError(t, w.WriteEntities(loadWriterEntities(t), "out"))

	data, err := afero.ReadFile(fs, "out/price.go")
	require.NoError(t, err)
	src := string(data)

	require.Contains(t, src, "type PriceID struct {")
	require.Contains(t, src, "func (p *Price) GetID() PriceID {")
	require.Contains(t, src, "func FindPrice(ctx context.Context, db runtime.Queryer, id PriceID) (*Price, error) {")
	require.Contains(t, src, "id.BookID, id.Currency")
	require.NotContains(t, src, "PriceDefault")
}

func TestRenderEntityMySQLRefetches(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, MySQLDialect{}, "models")
	require.NoError(t, w.WriteEntities(loadWriterEntities(t), "out"))

	data, err := afero.ReadFile(fs, "out/author.go")
	require.NoError(t, err)
	src := string(data)

	require.NotContains(t, src, "RETURNING")
	require.Contains(t, src, "func (a *Author) refetch(ctx context.Context, db runtime.Queryer) error {")

	// An explicitly assigned id wins over LastInsertId, which the driver
	// reports as 0 in that case.
	require.Contains(t, src, "if a.ID == 0 {\n\t\tlast, err := res.LastInsertId()")
}

func TestFileNameFor(t *testing.T) {
	e := &gsl.Entity{Name: "book_price"}
	require.Equal(t, "book_price.go", fileNameFor(e))

	e = &gsl.Entity{Name: "BookPrice"}
	require.Equal(t, "book_price.go", fileNameFor(e))
}
