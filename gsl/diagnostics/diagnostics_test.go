package diagnostics

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestSpanContains(t *testing.T) {
	s := NewSpan(5, 10, FileIDZero)
	require.True(t, s.Contains(5))
	require.True(t, s.Contains(7))
	require.True(t, s.Contains(10))
	require.False(t, s.Contains(4))
	require.False(t, s.Contains(11))
}

func TestSpanOverlaps(t *testing.T) {
	s := NewSpan(5, 10, FileIDZero)
	require.True(t, s.Overlaps(NewSpan(8, 12, FileIDZero)))
	require.True(t, s.Overlaps(NewSpan(0, 5, FileIDZero)))
	require.False(t, s.Overlaps(NewSpan(11, 15, FileIDZero)))
}

func TestDiagnosticsAccumulate(t *testing.T) {
	d := NewDiagnostics()
	require.False(t, d.HasErrors())
	require.NoError(t, d.ToResult())

	d.PushWarning(NewRedundantNullableWarning("series_id", EmptySpan()))
	require.False(t, d.HasErrors())
	require.Len(t, d.Warnings(), 1)

	d.PushError(NewMissingTableError("Author", EmptySpan()))
	d.PushError(NewMissingIdentifierError("Author", EmptySpan()))
	require.True(t, d.HasErrors())
	require.Len(t, d.Errors(), 2)
	require.EqualError(t, d.ToResult(), "schema validation failed with 2 errors")
}

func TestErrorMessages(t *testing.T) {
	err := NewUnknownScalarTypeError("feeling", "Author", "mood", EmptySpan())
	require.Equal(t, `Error validating field "mood" in entity "Author": "feeling" is not a known column type.`, err.Message())
	require.Equal(t, err.Message(), err.Error())

	err = NewArgumentNotFoundError("table", "one_to_many", EmptySpan())
	require.Equal(t, `Argument "table" is missing in attribute "one_to_many".`, err.Message())
}

func TestPrettyPrintShowsOffendingLine(t *testing.T) {
	color.NoColor = true

	schema := "entity Author {\n  table \"authors\"\n\n  mood feeling\n}\n"
	start := bytes.Index([]byte(schema), []byte("feeling"))
	err := NewUnknownScalarTypeError("feeling", "Author", "mood", NewSpan(start, start+len("feeling"), FileIDZero))

	var buf bytes.Buffer
	require.NoError(t, err.PrettyPrint(&buf, "schema.georm", schema))

	out := buf.String()
	require.Contains(t, out, "error: ")
	require.Contains(t, out, "schema.georm:4")
	require.Contains(t, out, "mood feeling")
}

func TestPrettyPrintWarning(t *testing.T) {
	color.NoColor = true

	schema := "entity Book {\n  x integer? @relation(nullable: true)\n}\n"
	w := NewRedundantNullableWarning("x", NewSpan(16, 20, FileIDZero))

	var buf bytes.Buffer
	require.NoError(t, w.PrettyPrint(&buf, "schema.georm", schema))
	require.Contains(t, buf.String(), "warning: ")
	require.Contains(t, buf.String(), `"nullable: true" is redundant.`)
}

func TestPrettyPrintTruncatesOutOfRangeSpan(t *testing.T) {
	color.NoColor = true

	err := NewSchemaError("boom", NewSpan(500, 600, FileIDZero))
	var buf bytes.Buffer
	require.NoError(t, err.PrettyPrint(&buf, "schema.georm", "short"))
	require.Contains(t, buf.String(), "boom")
}
