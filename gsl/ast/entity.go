package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Entity represents an entity declaration.
type Entity struct {
	Pos           lexer.Position
	EndPos        lexer.Position
	Documentation *CommentBlock `@@?`
	Keyword       string        `@"entity"`
	Name          *Identifier   `@@`
	Items         []*EntityItem `"{" @@* "}"`
}

// GetName returns the entity name.
func (e *Entity) GetName() string {
	if e.Name == nil {
		return ""
	}
	return e.Name.Name
}

// GetDocumentation returns the entity documentation.
func (e *Entity) GetDocumentation() string {
	if e.Documentation == nil {
		return ""
	}
	return e.Documentation.GetText()
}

// TableProps returns every table property declared in the entity body.
// Validation of the "exactly one" rule happens during resolution, not here.
func (e *Entity) TableProps() []*TableProp {
	var props []*TableProp
	for _, item := range e.Items {
		if item.Table != nil {
			props = append(props, item.Table)
		}
	}
	return props
}

// Fields returns the entity's fields in declaration order.
func (e *Entity) Fields() []*Field {
	var fields []*Field
	for _, item := range e.Items {
		if item.Field != nil {
			fields = append(fields, item.Field)
		}
	}
	return fields
}

// BlockAttributes returns the entity's @@ attributes in declaration order.
func (e *Entity) BlockAttributes() []*BlockAttribute {
	var attrs []*BlockAttribute
	for _, item := range e.Items {
		if item.Block != nil {
			attrs = append(attrs, item.Block)
		}
	}
	return attrs
}

// EntityItem is a union of the constructs allowed inside an entity body.
// Body items are order-free; the resolver enforces cardinality rules.
type EntityItem struct {
	Pos   lexer.Position
	Table *TableProp      `@@`
	Block *BlockAttribute `| @@`
	Field *Field          `| @@`
}

// TableProp represents the `table "<name>"` property.
type TableProp struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Keyword string `@"table"`
	Name    string `@String`
}
