package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Comment represents a documentation comment (///).
type Comment struct {
	Pos  lexer.Position
	Text string `@DocComment`
}

// CommentBlock represents multiple consecutive doc comments.
type CommentBlock struct {
	Comments []*Comment `@@*`
}

// GetText returns the combined text of all comments with the markers stripped.
func (c *CommentBlock) GetText() string {
	if c == nil || len(c.Comments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(c.Comments))
	for _, comment := range c.Comments {
		text := strings.TrimPrefix(comment.Text, "///")
		lines = append(lines, strings.TrimSpace(text))
	}
	return strings.Join(lines, "\n")
}
