package parser

import (
	"strings"

	"github.com/goidl/webidl/internal/token"
)

// cursor owns a mutable position into a token stream plus a running
// 1-based line counter, adapted from the teacher's TokenCursor
// (internal/parser/cursor.go in CWBudde-go-dws) — but mutable rather
// than copy-on-write, per spec.md §4.2 ("owning a mutable position ...
// plus a running line counter"). Every production that may backtrack
// saves a mark on entry and restores it on failure (see save/unconsume).
type cursor struct {
	tokens []token.Token
	pos    int
	line   int
}

// newCursor wraps a finished token stream (always EOF-terminated).
func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens, pos: 0, line: 1}
}

// current returns the token at the cursor's position without consuming.
func (c *cursor) current() token.Token {
	return c.tokens[c.pos]
}

// peek returns the token n positions ahead without consuming; peek(0) is
// current(). Past the end of the stream it clamps to the trailing EOF.
func (c *cursor) peek(n int) token.Token {
	idx := c.pos + n
	if idx >= len(c.tokens) {
		idx = len(c.tokens) - 1
	}
	return c.tokens[idx]
}

// upcoming returns up to n tokens starting at the current position — the
// diagnostic context a ParseError captures (spec.md §4.3: "the first
// five upcoming tokens").
func (c *cursor) upcoming(n int) []token.Token {
	end := c.pos + n
	if end > len(c.tokens) {
		end = len(c.tokens)
	}
	return c.tokens[c.pos:end]
}

// probe reports whether the current token's type matches any of types,
// without consuming.
func (c *cursor) probe(types ...token.Type) bool {
	cur := c.current().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// consume advances past the current token and returns it if its type
// matches any of types; otherwise the cursor is left unchanged and ok is
// false. line advances by the number of newlines in the consumed
// token's trivia.
func (c *cursor) consume(types ...token.Type) (tok token.Token, ok bool) {
	if !c.probe(types...) {
		return token.Token{}, false
	}
	tok = c.tokens[c.pos]
	c.line += strings.Count(tok.Trivia, "\n")
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return tok, true
}

// untypedConsume behaves like consume but returns only Value and Trivia
// — used where the full token record would leak lexical noise (the
// token's Type) into the tree.
func (c *cursor) untypedConsume(types ...token.Type) (value, trivia string, ok bool) {
	tok, ok := c.consume(types...)
	if !ok {
		return "", "", false
	}
	return tok.Value, tok.Trivia, true
}

// unquote strips the surrounding double quotes a token.String value
// always carries (per the lexer's strRe, which only ever matches a
// complete "..." span).
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// mark is a saved cursor position for backtracking.
type mark struct {
	pos  int
	line int
}

// save captures the current position for a later unconsume.
func (c *cursor) save() mark {
	return mark{pos: c.pos, line: c.line}
}

// unconsume rolls the cursor back to a previously saved mark.
func (c *cursor) unconsume(m mark) {
	c.pos = m.pos
	c.line = m.line
}
