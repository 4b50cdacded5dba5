package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lolc-toolchain/lolparse/token"
)

func TestCursor_AdvanceWalksTokens(t *testing.T) {
	toks := []token.Token{
		token.New(token.HAI, "f.lol", 1),
		token.NewIdent("1.2", "f.lol", 1),
	}
	c := newCursor(toks)

	assert.Equal(t, token.HAI, c.current().Kind)
	first := c.advance()
	assert.Equal(t, token.HAI, first.Kind)
	assert.Equal(t, token.IDENT, c.current().Kind)
}

func TestCursor_PastEndSynthesizesEOF(t *testing.T) {
	toks := []token.Token{
		token.New(token.HAI, "f.lol", 3),
	}
	c := newCursor(toks)
	c.advance()

	eof := c.current()
	assert.Equal(t, token.EOF, eof.Kind)
	assert.Equal(t, "f.lol", eof.File)
	assert.Equal(t, 3, eof.Line)

	// advancing past EOF stays at EOF rather than panicking
	again := c.advance()
	assert.Equal(t, token.EOF, again.Kind)
	assert.Equal(t, token.EOF, c.current().Kind)
}

func TestCursor_EmptyStreamIsEOF(t *testing.T) {
	c := newCursor(nil)
	assert.Equal(t, token.EOF, c.current().Kind)
}
