package diagnostics

import (
	"fmt"
	"io"
)

// SchemaError represents a parser or resolution error in a georm schema.
type SchemaError struct {
	span    Span
	message string
}

// NewSchemaError creates a new SchemaError with the given message and span.
func NewSchemaError(message string, span Span) SchemaError {
	return SchemaError{
		message: message,
		span:    span,
	}
}

// NewParserError creates an error for input the parser could not consume.
func NewParserError(message string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Error parsing schema: %s", message), span)
}

// NewEntityValidationError creates an error for entity-level validation issues.
func NewEntityValidationError(message, entityName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Error validating entity \"%s\": %s", entityName, message), span)
}

// NewFieldValidationError creates an error for field-level validation issues.
func NewFieldValidationError(message, entityName, fieldName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Error validating field \"%s\" in entity \"%s\": %s", fieldName, entityName, message), span)
}

// NewMissingTableError creates an error for an entity without a table property.
func NewMissingTableError(entityName string, span Span) SchemaError {
	return NewEntityValidationError("the \"table\" property is required.", entityName, span)
}

// NewDuplicateTableDeclarationError creates an error for more than one table property.
func NewDuplicateTableDeclarationError(entityName string, span Span) SchemaError {
	return NewEntityValidationError("the \"table\" property can only be declared once.", entityName, span)
}

// NewMissingIdentifierError creates an error for an entity with no @id field.
func NewMissingIdentifierError(entityName string, span Span) SchemaError {
	return NewEntityValidationError("at least one field must be marked with @id.", entityName, span)
}

// NewUnknownAttributeError creates an error for an unrecognized attribute.
func NewUnknownAttributeError(attributeName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Attribute \"%s\" is not known.", attributeName), span)
}

// NewUnknownArgumentError creates an error for an unrecognized attribute argument.
func NewUnknownArgumentError(argumentName, attributeName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Argument \"%s\" is not known in attribute \"%s\".", argumentName, attributeName), span)
}

// NewArgumentNotFoundError creates an error for a missing attribute argument.
func NewArgumentNotFoundError(argumentName, attributeName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Argument \"%s\" is missing in attribute \"%s\".", argumentName, attributeName), span)
}

// NewArgumentTypeError creates an error for an argument holding the wrong kind of value.
func NewArgumentTypeError(argumentName, attributeName, expected string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Argument \"%s\" of attribute \"%s\" must be %s.", argumentName, attributeName, expected), span)
}

// NewUnnamedArgumentError creates an error for a positional argument where a
// named one is required.
func NewUnnamedArgumentError(attributeName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Arguments of attribute \"%s\" must be named.", attributeName), span)
}

// NewDuplicateArgumentError creates an error for an argument given twice.
func NewDuplicateArgumentError(argumentName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Argument \"%s\" is already specified.", argumentName), span)
}

// NewDuplicateRelationNameError creates an error for colliding relation names.
func NewDuplicateRelationNameError(relationName, entityName string, span Span) SchemaError {
	return NewEntityValidationError(fmt.Sprintf("relation name \"%s\" is already in use.", relationName), entityName, span)
}

// NewDuplicateEntityError creates an error for two entities sharing a name.
func NewDuplicateEntityError(entityName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("The entity \"%s\" cannot be defined because an entity with that name already exists.", entityName), span)
}

// NewDuplicateEntityTableError creates an error for two entities mapping to the same table.
func NewDuplicateEntityTableError(table, entityName, existingEntityName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("The entity \"%s\" cannot map to table \"%s\": entity \"%s\" already maps to it.", entityName, table, existingEntityName), span)
}

// NewUnknownTargetEntityError creates an error for a relation pointing at an undeclared entity.
func NewUnknownTargetEntityError(targetName, entityName string, span Span) SchemaError {
	return NewEntityValidationError(fmt.Sprintf("relation target \"%s\" is not a declared entity.", targetName), entityName, span)
}

// NewIncompleteLinkError creates an error for a many_to_many missing part of its link spec.
func NewIncompleteLinkError(missing, entityName string, span Span) SchemaError {
	return NewEntityValidationError(fmt.Sprintf("many_to_many requires \"%s\" in its link specification.", missing), entityName, span)
}

// NewCompositeKeyRelationError creates an error for relations declared on a composite-key entity.
func NewCompositeKeyRelationError(entityName string, span Span) SchemaError {
	return NewEntityValidationError("relations are not supported on entities with a composite identifier.", entityName, span)
}

// NewUnknownScalarTypeError creates an error for an unrecognized field type.
func NewUnknownScalarTypeError(typeName, entityName, fieldName string, span Span) SchemaError {
	return NewFieldValidationError(fmt.Sprintf("\"%s\" is not a known column type.", typeName), entityName, fieldName, span)
}

// NewDefaultableNullableError creates an error for @defaultable on an already-optional field.
func NewDefaultableNullableError(entityName, fieldName string, span Span) SchemaError {
	return NewFieldValidationError("the field is already optional and cannot be marked @defaultable.", entityName, fieldName, span)
}

// NewNullabilityMismatchError creates an error for a relation nullability contradicting its field.
func NewNullabilityMismatchError(entityName, fieldName string, nullable bool, span Span) SchemaError {
	if nullable {
		return NewFieldValidationError("a relation on a required column cannot be declared nullable.", entityName, fieldName, span)
	}
	return NewFieldValidationError("a relation on an optional column cannot be declared non-nullable.", entityName, fieldName, span)
}

// Message returns the error message.
func (e SchemaError) Message() string {
	return e.message
}

// Span returns the span of the error.
func (e SchemaError) Span() Span {
	return e.span
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	return e.message
}

// PrettyPrint writes a pretty-printed representation of the error to the writer.
func (e SchemaError) PrettyPrint(w io.Writer, fileName, text string) error {
	return PrettyPrint(w, fileName, text, e.span, e.message, ErrorColorer{})
}
