package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expression represents a value expression in the schema.
// This is a union type over the value kinds arguments can hold.
type Expression interface {
	isExpression()
	Span() lexer.Position
	String() string

	AsStringValue() (*StringValue, bool)
	AsNumericValue() (*NumericValue, bool)
	AsConstantValue() (*ConstantValue, bool)
	AsFunction() (*FunctionCall, bool)
	AsBooleanValue() (bool, bool)
}

// StringValue represents a quoted string literal.
type StringValue struct {
	Pos   lexer.Position
	Value string `@String`
}

func (s *StringValue) isExpression() {}

// Span returns the source position.
func (s *StringValue) Span() lexer.Position { return s.Pos }

// String returns the string representation.
func (s *StringValue) String() string {
	return fmt.Sprintf("%q", s.Value)
}

// NumericValue represents a numeric literal.
type NumericValue struct {
	Pos   lexer.Position
	Value string `@Number`
}

func (n *NumericValue) isExpression() {}

// Span returns the source position.
func (n *NumericValue) Span() lexer.Position { return n.Pos }

// String returns the string representation.
func (n *NumericValue) String() string { return n.Value }

// FunctionCall represents a call-shaped value like link(table: "x", from: "a", to: "b").
type FunctionCall struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      string         `@Ident`
	Arguments *ArgumentsList `"(" @@? ")"`
}

func (f *FunctionCall) isExpression() {}

// Span returns the source position.
func (f *FunctionCall) Span() lexer.Position { return f.Pos }

// String returns the string representation.
func (f *FunctionCall) String() string {
	args := ""
	if f.Arguments != nil {
		args = f.Arguments.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name, args)
}

// FindArgument returns the named argument, or nil.
func (f *FunctionCall) FindArgument(name string) *Argument {
	if f.Arguments == nil {
		return nil
	}
	for _, arg := range f.Arguments.Arguments {
		if arg.GetName() == name {
			return arg
		}
	}
	return nil
}

// ConstantValue represents a bare identifier value (true, false, entity references).
type ConstantValue struct {
	Pos   lexer.Position
	Value string `@Ident`
}

func (c *ConstantValue) isExpression() {}

// Span returns the source position.
func (c *ConstantValue) Span() lexer.Position { return c.Pos }

// String returns the string representation.
func (c *ConstantValue) String() string { return c.Value }

// AsStringValue returns the StringValue if the expression is one.
func (s *StringValue) AsStringValue() (*StringValue, bool)   { return s, true }
func (n *NumericValue) AsStringValue() (*StringValue, bool)  { return nil, false }
func (c *ConstantValue) AsStringValue() (*StringValue, bool) { return nil, false }
func (f *FunctionCall) AsStringValue() (*StringValue, bool)  { return nil, false }

// AsNumericValue returns the NumericValue if the expression is one.
func (s *StringValue) AsNumericValue() (*NumericValue, bool)   { return nil, false }
func (n *NumericValue) AsNumericValue() (*NumericValue, bool)  { return n, true }
func (c *ConstantValue) AsNumericValue() (*NumericValue, bool) { return nil, false }
func (f *FunctionCall) AsNumericValue() (*NumericValue, bool)  { return nil, false }

// AsConstantValue returns the ConstantValue if the expression is one.
func (s *StringValue) AsConstantValue() (*ConstantValue, bool)   { return nil, false }
func (n *NumericValue) AsConstantValue() (*ConstantValue, bool)  { return nil, false }
func (c *ConstantValue) AsConstantValue() (*ConstantValue, bool) { return c, true }
func (f *FunctionCall) AsConstantValue() (*ConstantValue, bool)  { return nil, false }

// AsFunction returns the FunctionCall if the expression is one.
func (s *StringValue) AsFunction() (*FunctionCall, bool)   { return nil, false }
func (n *NumericValue) AsFunction() (*FunctionCall, bool)  { return nil, false }
func (c *ConstantValue) AsFunction() (*FunctionCall, bool) { return nil, false }
func (f *FunctionCall) AsFunction() (*FunctionCall, bool)  { return f, true }

// AsBooleanValue returns the boolean value if the expression is a constant
// "true" or "false".
func (c *ConstantValue) AsBooleanValue() (bool, bool) {
	if c.Value == "true" {
		return true, true
	}
	if c.Value == "false" {
		return false, true
	}
	return false, false
}

func (s *StringValue) AsBooleanValue() (bool, bool)  { return false, false }
func (n *NumericValue) AsBooleanValue() (bool, bool) { return false, false }
func (f *FunctionCall) AsBooleanValue() (bool, bool) { return false, false }
