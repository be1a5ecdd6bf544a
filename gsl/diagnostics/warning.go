package diagnostics

import (
	"fmt"
	"io"
)

// SchemaWarning represents a non-fatal warning emitted by the schema front end.
type SchemaWarning struct {
	message string
	span    Span
}

// NewSchemaWarning creates a new SchemaWarning with the given message and span.
func NewSchemaWarning(message string, span Span) SchemaWarning {
	return SchemaWarning{
		message: message,
		span:    span,
	}
}

// NewRedundantNullableWarning creates a warning for an explicit nullable flag
// that repeats what the field type already says.
func NewRedundantNullableWarning(fieldName string, span Span) SchemaWarning {
	return NewSchemaWarning(fmt.Sprintf("Field \"%s\" is already optional; \"nullable: true\" is redundant.", fieldName), span)
}

// Message returns the warning message.
func (w SchemaWarning) Message() string {
	return w.message
}

// Span returns the span of the warning.
func (w SchemaWarning) Span() Span {
	return w.span
}

// PrettyPrint writes a pretty-printed representation of the warning to the writer.
func (w SchemaWarning) PrettyPrint(writer io.Writer, fileName, text string) error {
	return PrettyPrint(writer, fileName, text, w.span, w.message, WarningColorer{})
}
