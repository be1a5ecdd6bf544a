package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Attribute represents a field-level attribute (@attribute).
type Attribute struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      *Identifier    `"@" @@`
	Arguments *ArgumentsList `("(" @@ ")")?`
}

// GetName returns the attribute name.
func (a *Attribute) GetName() string {
	if a.Name == nil {
		return ""
	}
	return a.Name.Name
}

// String returns the string representation of the attribute.
func (a *Attribute) String() string {
	args := ""
	if a.Arguments != nil && len(a.Arguments.Arguments) > 0 {
		args = "(" + a.Arguments.String() + ")"
	}
	return "@" + a.GetName() + args
}

// FindArgument returns the named argument, or nil.
func (a *Attribute) FindArgument(name string) *Argument {
	if a.Arguments == nil {
		return nil
	}
	for _, arg := range a.Arguments.Arguments {
		if arg.GetName() == name {
			return arg
		}
	}
	return nil
}

// BlockAttribute represents an entity-level attribute (@@attribute).
type BlockAttribute struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      *Identifier    `"@@" @@`
	Arguments *ArgumentsList `("(" @@ ")")?`
}

// GetName returns the block attribute name.
func (b *BlockAttribute) GetName() string {
	if b.Name == nil {
		return ""
	}
	return b.Name.Name
}

// String returns the string representation of the block attribute.
func (b *BlockAttribute) String() string {
	args := ""
	if b.Arguments != nil && len(b.Arguments.Arguments) > 0 {
		args = "(" + b.Arguments.String() + ")"
	}
	return "@@" + b.GetName() + args
}

// FindArgument returns the named argument, or nil.
func (b *BlockAttribute) FindArgument(name string) *Argument {
	if b.Arguments == nil {
		return nil
	}
	for _, arg := range b.Arguments.Arguments {
		if arg.GetName() == name {
			return arg
		}
	}
	return nil
}
