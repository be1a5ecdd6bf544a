package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Identifier represents a named identifier in the schema. Keywords are
// accepted so that column names like "table" remain usable.
type Identifier struct {
	Pos  lexer.Position
	Name string `(@Ident | @Keyword)`
}

// String returns the identifier name.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}
