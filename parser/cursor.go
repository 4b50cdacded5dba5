package parser

import "github.com/lolc-toolchain/lolparse/token"

// cursor is the opaque token-stream object named in spec.md §9 Design
// Notes ("Model as an opaque cursor object with peek/accept/require;
// internal representation... is a free choice"). It borrows the token
// slice but never owns or mutates it, and it never retreats: every
// recursive-descent choice is resolved by inspecting current(), never by
// rewinding pos.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens}
}

// current returns the token at the cursor without advancing. Past the end
// of the slice it synthesizes an EOF token carrying the position of the
// last real token, so callers never need a separate bounds check.
func (c *cursor) current() token.Token {
	if c.pos >= len(c.tokens) {
		return c.eofSentinel()
	}
	return c.tokens[c.pos]
}

func (c *cursor) eofSentinel() token.Token {
	if len(c.tokens) == 0 {
		return token.Token{Kind: token.EOF}
	}
	last := c.tokens[len(c.tokens)-1]
	return token.Token{Kind: token.EOF, File: last.File, Line: last.Line}
}

// advance returns the current token and moves the cursor forward by one,
// unless already at or past EOF.
func (c *cursor) advance() token.Token {
	tok := c.current()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}
