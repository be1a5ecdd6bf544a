package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// FieldType represents the declared column type of a field.
type FieldType struct {
	Pos  lexer.Position
	Name string `@Ident`
}

// String returns the string representation of the field type.
func (f *FieldType) String() string {
	if f == nil {
		return ""
	}
	return f.Name
}

// Field represents a column declaration in an entity.
type Field struct {
	Pos           lexer.Position
	EndPos        lexer.Position
	Documentation *CommentBlock `@@?`
	Name          *Identifier   `@@`
	Type          *FieldType    `@@`
	OptionalMark  *string       `@"?"?`
	Attributes    []*Attribute  `@@*`
}

// GetName returns the field name.
func (f *Field) GetName() string {
	if f.Name == nil {
		return ""
	}
	return f.Name.Name
}

// GetTypeName returns the declared type name.
func (f *Field) GetTypeName() string {
	if f.Type == nil {
		return ""
	}
	return f.Type.Name
}

// IsOptional returns true if the field carries a `?` suffix.
func (f *Field) IsOptional() bool {
	return f.OptionalMark != nil
}

// FindAttribute returns the first attribute with the given name, or nil.
func (f *Field) FindAttribute(name string) *Attribute {
	for _, attr := range f.Attributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}

// HasAttribute returns true if the field carries the named attribute.
func (f *Field) HasAttribute(name string) bool {
	return f.FindAttribute(name) != nil
}

// String returns a string representation of the field.
func (f *Field) String() string {
	optional := ""
	if f.IsOptional() {
		optional = "?"
	}
	return fmt.Sprintf("%s %s%s", f.GetName(), f.GetTypeName(), optional)
}
