/*
File: parser/parser_statements.go

Statement dispatch and block parsing (spec.md §4.4). parseBlockEOF is the
shared loop backing both parseBlock (nested constructs, where EOF before
a terminator is an UnclosedConstruct) and parseTopLevelBlock (the program
assembler, where EOF stands in for an omitted KTHXBYE). It stops at a
caller-supplied set of terminator kinds, skipping blank lines in between
statements.
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/token"
)

// parseBlock parses statements until the current token is one of
// terminators (left unconsumed, for the caller to require). Every caller
// except the program assembler names a construct that must be explicitly
// closed (OIC, IM OUTTA YR, IF U SAY SO, KTHX), so reaching EOF first is
// itself the fatal condition spec.md §7 calls UnclosedConstruct, not a
// quiet end of input. Blank lines between statements are skipped rather
// than producing empty statement nodes.
func (p *Parser) parseBlock(terminators ...token.Kind) *ast.Block {
	return p.parseBlockEOF(false, terminators...)
}

// parseTopLevelBlock is parseBlock for the program assembler specifically:
// KTHXBYE is optional (spec.md §4.5), so EOF is a legitimate way for the
// root block to end, not an UnclosedConstruct.
func (p *Parser) parseTopLevelBlock(terminators ...token.Kind) *ast.Block {
	return p.parseBlockEOF(true, terminators...)
}

func (p *Parser) parseBlockEOF(eofAllowed bool, terminators ...token.Kind) *ast.Block {
	block := &ast.Block{}
	for {
		if p.failed {
			return block
		}
		for p.accept(token.NEWLINE) {
		}
		cur := p.cur.current()
		if cur.Kind == token.EOF {
			if !eofAllowed {
				p.fail(diagUnclosed(cur, terminators))
			}
			return block
		}
		for _, t := range terminators {
			if cur.Kind == t {
				return block
			}
		}

		stmt := p.parseStatement()
		if p.failed {
			return block
		}
		block.Statements = append(block.Statements, stmt)

		if !p.accept(token.NEWLINE) {
			cur := p.cur.current()
			if cur.Kind == token.EOF {
				if !eofAllowed {
					p.fail(diagUnclosed(cur, terminators))
				}
				return block
			}
			terminated := false
			for _, t := range terminators {
				if cur.Kind == t {
					terminated = true
					break
				}
			}
			if !terminated {
				p.failExpected("end of line", cur)
				return block
			}
			return block
		}
	}
}

// parseStatement dispatches on the leading keyword. Constructs with a
// dedicated leading keyword (VISIBLE, GIMMEH, O RLY?, WTF?, GTFO, FOUND
// YR, IM IN YR, HOW IZ, O HAI IM) go straight to their own parser;
// everything else is identifier-led or an arbitrary expression used in
// statement position, handled by parseIdentifierLedStatement /
// parseExpressionStatement.
func (p *Parser) parseStatement() ast.Statement {
	if p.failed {
		return nil
	}
	tok := p.cur.current()
	switch tok.Kind {
	case token.VISIBLE:
		return p.parsePrint()
	case token.GIMMEH:
		return p.parseInput()
	case token.O_RLY:
		return p.parseIf()
	case token.WTF:
		return p.parseSwitch()
	case token.GTFO:
		p.cur.advance()
		return &ast.BreakStatement{}
	case token.FOUND:
		return p.parseReturn()
	case token.IM_IN_YR:
		return p.parseLoop()
	case token.HOW_IZ:
		return p.parseFunctionDef()
	case token.O_HAI_IM:
		return p.parseAltArrayDef()
	case token.IDENT, token.SRS:
		return p.parseIdentifierLedStatement()
	default:
		expr := p.parseExpression()
		if p.failed {
			return nil
		}
		return &ast.ExpressionStatement{Expr: expr}
	}
}

// parseIdentifierLedStatement parses one identifier, then resolves the
// six-way ambiguity (cast / declaration / deallocation / assignment /
// call-as-expression-statement / plain-identifier-expression-statement)
// with one token of lookahead — the same pattern parseExpression uses for
// the call-vs-identifier ambiguity (spec.md §9 Design Notes).
func (p *Parser) parseIdentifierLedStatement() ast.Statement {
	id := p.parseIdentifier()
	if p.failed {
		return nil
	}

	switch {
	case p.accept(token.IS):
		if _, ok := p.require(token.NOW); !ok {
			return nil
		}
		if _, ok := p.require(token.A); !ok {
			return nil
		}
		tt, ok := p.parseTypeTag()
		if !ok {
			return nil
		}
		return &ast.CastStatement{Target: id, Type: tt}

	case p.accept(token.HAS_A):
		return p.parseDeclarationTail(id)

	case p.peek(token.R) || p.peek(token.R_NOOB):
		return p.parseAssignmentOrDeallocTail(id)

	case p.peek(token.IZ):
		expr := p.parseCallExpr(id)
		if p.failed {
			return nil
		}
		return &ast.ExpressionStatement{Expr: expr}

	default:
		return &ast.ExpressionStatement{Expr: id}
	}
}

// parseDeclarationTail parses the optional initializer after `<scope> HAS
// A <target>`. The tokenizer's longest-match discipline already resolves
// the three initializer spellings into three distinct keyword kinds —
// ITZ, ITZ A, and ITZ LIEK A are lexed as token.ITZ, token.ITZ_A, and
// token.ITZ_LIEK_A respectively (spec.md §9 Design Notes) — so the parser
// never re-merges tokens; it only switches on whichever single kind is
// present. That structurally guarantees declaration exclusivity (spec.md
// §8): at most one of InitExpr/InitType/ParentIdent is ever populated. A
// second initializer keyword after the first is reported as a
// MalformedConstruct.
func (p *Parser) parseDeclarationTail(scope *ast.Identifier) ast.Statement {
	target := p.parseIdentifier()
	if p.failed {
		return nil
	}
	decl := &ast.DeclarationStatement{Scope: scope, Target: target}

	switch {
	case p.accept(token.ITZ_A):
		tt, ok := p.parseTypeTag()
		if !ok {
			return nil
		}
		decl.InitType = &tt
	case p.accept(token.ITZ_LIEK_A):
		parent := p.parseIdentifier()
		if p.failed {
			return nil
		}
		decl.ParentIdent = parent
	case p.accept(token.ITZ):
		expr := p.parseExpression()
		if p.failed {
			return nil
		}
		decl.InitExpr = expr
	}
	if next := p.cur.current(); next.Kind == token.ITZ || next.Kind == token.ITZ_A || next.Kind == token.ITZ_LIEK_A {
		p.fail(diagMalformed(next, "at most one initializer"))
		return nil
	}
	return decl
}

// parseAssignmentOrDeallocTail resolves `<ident> R NOOB` (deallocation)
// against `<ident> R <expr>` (assignment) by accepting R_NOOB first and
// otherwise requiring R, since the tokenizer's longest-match discipline already merges "R NOOB" into the
// single R_NOOB kind (spec.md §9 Design Notes) — so this is really just a
// peek between two distinct token kinds, not backtracking.
func (p *Parser) parseAssignmentOrDeallocTail(target *ast.Identifier) ast.Statement {
	if p.accept(token.R_NOOB) {
		return &ast.DeallocationStatement{Target: target}
	}
	if _, ok := p.require(token.R); !ok {
		return nil
	}
	value := p.parseExpression()
	if p.failed {
		return nil
	}
	return &ast.AssignmentStatement{Target: target, Value: value}
}

// parsePrint parses `VISIBLE <expr> (<expr>)* [!]`.
func (p *Parser) parsePrint() ast.Statement {
	p.cur.advance() // VISIBLE
	stmt := &ast.PrintStatement{}
	first := p.parseExpression()
	if p.failed {
		return nil
	}
	stmt.Args = append(stmt.Args, first)
	for !p.peek(token.NEWLINE) && !p.peek(token.BANG) && !p.peek(token.EOF) {
		next := p.parseExpression()
		if p.failed {
			return nil
		}
		stmt.Args = append(stmt.Args, next)
	}
	if p.accept(token.BANG) {
		stmt.SuppressNewline = true
	}
	return stmt
}

// parseInput parses `GIMMEH <ident>`.
func (p *Parser) parseInput() ast.Statement {
	p.cur.advance() // GIMMEH
	target := p.parseIdentifier()
	if p.failed {
		return nil
	}
	return &ast.InputStatement{Target: target}
}

// parseReturn parses `FOUND YR <expr>` (FOUND and YR are lexed together as
// the single FOUND kind per the tokenizer's longest-match rule, spec.md
// §9 Design Notes, so there is no separate YR to require here).
func (p *Parser) parseReturn() ast.Statement {
	p.cur.advance() // FOUND YR
	value := p.parseExpression()
	if p.failed {
		return nil
	}
	return &ast.ReturnStatement{Value: value}
}
