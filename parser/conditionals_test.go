package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/diag"
	"github.com/lolc-toolchain/lolparse/token"
)

func TestParseSwitch_RequiresAtLeastOneCase(t *testing.T) {
	toks := withEOF(tok(token.WTF), tok(token.NEWLINE), tok(token.OIC))
	p, sink := newTestParser(toks)
	stmt := p.parseStatement()
	assert.Nil(t, stmt)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, diag.MalformedConstruct, sink.Diagnostics[0].Kind)
}

func TestParseSwitch_WithDefault(t *testing.T) {
	toks := withEOF(
		tok(token.WTF), tok(token.NEWLINE),
		tok(token.OMG), intTok(1), tok(token.NEWLINE),
		tok(token.GTFO), tok(token.NEWLINE),
		tok(token.OMGWTF), tok(token.NEWLINE),
		tok(token.GTFO), tok(token.NEWLINE),
		tok(token.OIC),
	)
	p, sink := newTestParser(toks)
	stmt := p.parseStatement()
	require.Empty(t, sink.Diagnostics)
	sw, can := stmt.(*ast.SwitchStatement)
	require.True(t, can)
	require.Len(t, sw.Cases, 1)
	require.NotNil(t, sw.Default)
}

func TestParseIf_OnlyYaRly(t *testing.T) {
	toks := withEOF(
		tok(token.O_RLY), tok(token.NEWLINE),
		tok(token.YA_RLY), tok(token.NEWLINE),
		tok(token.GTFO), tok(token.NEWLINE),
		tok(token.OIC),
	)
	p, sink := newTestParser(toks)
	stmt := p.parseStatement()
	require.Empty(t, sink.Diagnostics)
	ifStmt := stmt.(*ast.IfStatement)
	require.Len(t, ifStmt.Yes.Statements, 1)
	assert.Empty(t, ifStmt.ElseIfs)
	assert.Nil(t, ifStmt.No)
}

func TestParseIf_MissingOICReportsUnclosedConstruct(t *testing.T) {
	toks := withEOF(
		tok(token.O_RLY), tok(token.NEWLINE),
		tok(token.YA_RLY), tok(token.NEWLINE),
		tok(token.GTFO), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	stmt := p.parseStatement()
	assert.Nil(t, stmt)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, diag.UnclosedConstruct, sink.Diagnostics[0].Kind)
	assert.Equal(t, "MEBBE or NO WAI or OIC", sink.Diagnostics[0].Expected)
}
