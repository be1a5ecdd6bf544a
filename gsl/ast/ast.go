// Package ast defines the syntax tree for georm schema files.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Schema is the root node of a parsed schema file.
type Schema struct {
	Pos      lexer.Position
	Entities []*Entity `@@*`
}

// FindEntity returns the entity with the given name, or nil.
func (s *Schema) FindEntity(name string) *Entity {
	for _, e := range s.Entities {
		if e.GetName() == name {
			return e
		}
	}
	return nil
}

// EntityNames returns the declared entity names in declaration order.
func (s *Schema) EntityNames() []string {
	names := make([]string, len(s.Entities))
	for i, e := range s.Entities {
		names[i] = e.GetName()
	}
	return names
}
