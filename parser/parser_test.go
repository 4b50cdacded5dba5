package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/diag"
	"github.com/lolc-toolchain/lolparse/token"
)

// TestParser_MinimalProgram covers spec.md §8 scenario 1: the smallest
// legal program is HAI/version/NEWLINE/KTHXBYE with an empty root block.
func TestParser_MinimalProgram(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	prog, ok := p.ParseProgram()
	require.True(t, ok)
	require.Empty(t, sink.Diagnostics)
	assert.Equal(t, "1.2", prog.Version)
	assert.NotNil(t, prog.Root)
	assert.Empty(t, prog.Root.Statements)
}

// TestParser_OmittedKTHXBYE_SucceedsAtEOF covers spec.md §4.5: KTHXBYE is
// optional, so running out of input at the top level is a legitimate way
// to end a program, unlike running out of input inside a nested
// construct (see TestParseIf_MissingOICReportsUnclosedConstruct).
func TestParser_OmittedKTHXBYE_SucceedsAtEOF(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		tok(token.GTFO), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	prog, ok := p.ParseProgram()
	require.True(t, ok)
	require.Empty(t, sink.Diagnostics)
	require.Len(t, prog.Root.Statements, 1)
}

// strTokVersion builds an IDENT-shaped version token the way the
// tokenizer emits version numbers after HAI (free-form literal text, not
// re-validated by the parser).
func strTokVersion(v string) token.Token {
	return token.NewIdent(v, "t.lol", 1)
}

func TestParser_MissingHAI_ReportsUnexpectedToken(t *testing.T) {
	toks := withEOF(tok(token.KTHXBYE))
	p, sink := newTestParser(toks)
	_, ok := p.ParseProgram()
	require.False(t, ok)
	require.True(t, p.Failed())
	d, found := sink.Last()
	require.True(t, found)
	assert.Equal(t, diag.UnexpectedToken, d.Kind)
	assert.Equal(t, token.HAI.String(), d.Expected)
}

// TestParser_PrintWithBang covers spec.md §8 scenario 2: VISIBLE with a
// trailing bang suppresses the newline.
func TestParser_PrintWithBang(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		tok(token.VISIBLE), strTok("hi"), tok(token.BANG), tok(token.NEWLINE),
		tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	prog, ok := p.ParseProgram()
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)
	require.Len(t, prog.Root.Statements, 1)

	print, can := prog.Root.Statements[0].(*ast.PrintStatement)
	require.True(t, can)
	assert.True(t, print.SuppressNewline)
	require.Len(t, print.Args, 1)
	c, can := print.Args[0].(*ast.Constant)
	require.True(t, can)
	assert.Equal(t, "hi", c.StringValue)
}

// TestParser_DeclarationWithExpressionInit covers spec.md §8 scenario 3:
// `I HAS A X ITZ <expr>` populates InitExpr and leaves InitType/ParentIdent nil.
func TestParser_DeclarationWithExpressionInit(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		identTok("I"), tok(token.HAS_A), identTok("X"), tok(token.ITZ), intTok(5), tok(token.NEWLINE),
		tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	prog, ok := p.ParseProgram()
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)
	require.Len(t, prog.Root.Statements, 1)

	decl, can := prog.Root.Statements[0].(*ast.DeclarationStatement)
	require.True(t, can)
	assert.Equal(t, "I", decl.Scope.Name)
	assert.Equal(t, "X", decl.Target.Name)
	require.NotNil(t, decl.InitExpr)
	assert.Nil(t, decl.InitType)
	assert.Nil(t, decl.ParentIdent)
	c, can := decl.InitExpr.(*ast.Constant)
	require.True(t, can)
	assert.Equal(t, int64(5), c.IntValue)
}

// TestParser_IfElseIfElse covers spec.md §8 scenario 4.
func TestParser_IfElseIfElse(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		tok(token.O_RLY), tok(token.NEWLINE),
		tok(token.YA_RLY), tok(token.NEWLINE),
		tok(token.VISIBLE), strTok("yes"), tok(token.NEWLINE),
		tok(token.MEBBE), boolTok(true), tok(token.NEWLINE),
		tok(token.VISIBLE), strTok("maybe"), tok(token.NEWLINE),
		tok(token.NO_WAI), tok(token.NEWLINE),
		tok(token.VISIBLE), strTok("no"), tok(token.NEWLINE),
		tok(token.OIC), tok(token.NEWLINE),
		tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	prog, ok := p.ParseProgram()
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)
	require.Len(t, prog.Root.Statements, 1)

	ifStmt, can := prog.Root.Statements[0].(*ast.IfStatement)
	require.True(t, can)
	require.Len(t, ifStmt.Yes.Statements, 1)
	require.Len(t, ifStmt.ElseIfs, 1)
	require.NotNil(t, ifStmt.No)
	require.Len(t, ifStmt.No.Statements, 1)
}

// TestParser_LoopNameMismatch covers spec.md §8 scenario 5: the loop's
// closing name must match the opening name, or parsing fails with exactly
// one NameMismatch diagnostic.
func TestParser_LoopNameMismatch(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		tok(token.IM_IN_YR), identTok("LOOP"), tok(token.NEWLINE),
		tok(token.IM_OUTTA_YR), identTok("OTHER"), tok(token.NEWLINE),
		tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	_, ok := p.ParseProgram()
	require.False(t, ok)
	require.Len(t, sink.Diagnostics, 1)
	d := sink.Diagnostics[0]
	assert.Equal(t, diag.NameMismatch, d.Kind)
	assert.Equal(t, "LOOP", d.Expected)
	assert.Equal(t, "OTHER", d.Actual)
}

func TestParser_LoopNameMatch_Succeeds(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		tok(token.IM_IN_YR), identTok("LOOP"), tok(token.NEWLINE),
		tok(token.IM_OUTTA_YR), identTok("LOOP"), tok(token.NEWLINE),
		tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	_, ok := p.ParseProgram()
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)
}

// TestParser_NAryOperatorMissingMKAY covers spec.md §8 scenario 6: an
// n-ary operator without its MKAY terminator fails, since the operand
// loop never sees MKAY and instead tries to parse the NEWLINE as another
// operand, failing there.
func TestParser_NAryOperatorMissingMKAY(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		identTok("I"), tok(token.HAS_A), identTok("X"), tok(token.ITZ),
		tok(token.ALL_OF), boolTok(true), tok(token.AN), boolTok(false),
		tok(token.NEWLINE), tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	_, ok := p.ParseProgram()
	require.False(t, ok)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, diag.UnexpectedToken, sink.Diagnostics[0].Kind)
}

func TestParser_NAryOperatorWithMKAY_Succeeds(t *testing.T) {
	toks := withEOF(
		tok(token.HAI), strTokVersion("1.2"), tok(token.NEWLINE),
		identTok("I"), tok(token.HAS_A), identTok("X"), tok(token.ITZ),
		tok(token.ALL_OF), boolTok(true), tok(token.AN), boolTok(false), tok(token.MKAY),
		tok(token.NEWLINE), tok(token.KTHXBYE), tok(token.NEWLINE),
	)
	p, sink := newTestParser(toks)
	prog, ok := p.ParseProgram()
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)
	decl := prog.Root.Statements[0].(*ast.DeclarationStatement)
	opExpr, can := decl.InitExpr.(*ast.OperatorExpression)
	require.True(t, can)
	assert.Equal(t, ast.OpAllOf, opExpr.Op)
	assert.Len(t, opExpr.Operands, 2)
}

// TestParser_FailsOnceThenNoOps verifies spec.md §7: once failed, the
// Parser never reports a second diagnostic, and Diagnostic() keeps
// returning the first one.
func TestParser_FailsOnceThenNoOps(t *testing.T) {
	toks := withEOF(tok(token.KTHXBYE), tok(token.KTHXBYE))
	p, sink := newTestParser(toks)
	_, ok := p.ParseProgram()
	require.False(t, ok)
	require.Len(t, sink.Diagnostics, 1)

	// Calling another parse method after failure must not add diagnostics.
	p.parseStatement()
	p.parseExpression()
	assert.Len(t, sink.Diagnostics, 1)
	require.NotNil(t, p.Diagnostic())
}
