/*
File: parser/parser_loops.go

Loop parsing (spec.md §4.4, §8 scenario 5): `IM IN YR <name> [<update> YR
<var>] [<guard> <expr>] NEWLINE <block> IM OUTTA YR <name>`. The closing
name must textually match the opening one; a mismatch is reported as
diag.NameMismatch rather than silently accepted or treated as a different
error kind, since the mismatch itself is the condition spec.md §8
exercises.
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/token"
)

func (p *Parser) parseLoop() ast.Statement {
	p.cur.advance() // IM IN YR
	name := p.parseIdentifier()
	if p.failed {
		return nil
	}

	stmt := &ast.LoopStatement{Name: name}

	if up, ok := p.parseLoopUpdate(); ok {
		stmt.Update = up
		updateVar := p.parseIdentifier()
		if p.failed {
			return nil
		}
		stmt.UpdateVar = updateVar
	}

	if guard, ok := p.parseLoopGuard(); ok {
		stmt.Guard = guard
	}

	if _, ok := p.require(token.NEWLINE); !ok {
		return nil
	}

	body := p.parseBlock(token.IM_OUTTA_YR)
	if p.failed {
		return nil
	}
	stmt.Body = body

	closeTok, ok := p.require(token.IM_OUTTA_YR)
	if !ok {
		return nil
	}
	closeName := p.parseIdentifier()
	if p.failed {
		return nil
	}
	if !identifierNamesEqual(name, closeName) {
		p.fail(diagNameMismatch(closeTok, identifierDisplayName(name), identifierDisplayName(closeName)))
		return nil
	}
	return stmt
}

// parseLoopUpdate parses the optional `UPPIN|NERFIN|<func> YR` clause.
// UPPIN/NERFIN are builtin update verbs; any other identifier preceding
// YR names a user-defined unary function, left unresolved for the
// evaluator since this parser carries no symbol table (spec.md §9 Open
// Questions).
func (p *Parser) parseLoopUpdate() (*ast.LoopUpdate, bool) {
	switch {
	case p.accept(token.UPPIN):
		if _, ok := p.require(token.YR); !ok {
			return nil, false
		}
		return &ast.LoopUpdate{Kind: ast.LoopUpdateUppin}, true
	case p.accept(token.NERFIN):
		if _, ok := p.require(token.YR); !ok {
			return nil, false
		}
		return &ast.LoopUpdate{Kind: ast.LoopUpdateNerfin}, true
	case p.peek(token.IDENT):
		fn := p.parseIdentifier()
		if p.failed {
			return nil, false
		}
		if _, ok := p.require(token.YR); !ok {
			return nil, false
		}
		return &ast.LoopUpdate{Kind: ast.LoopUpdateFunc, FuncName: fn}, true
	default:
		return nil, false
	}
}

// parseLoopGuard parses the optional `TIL <expr>` / `WILE <expr>` clause.
func (p *Parser) parseLoopGuard() (*ast.LoopGuard, bool) {
	switch {
	case p.accept(token.TIL):
		expr := p.parseExpression()
		if p.failed {
			return nil, false
		}
		return &ast.LoopGuard{Kind: ast.LoopGuardTil, Expr: expr}, true
	case p.accept(token.WILE):
		expr := p.parseExpression()
		if p.failed {
			return nil, false
		}
		return &ast.LoopGuard{Kind: ast.LoopGuardWile, Expr: expr}, true
	default:
		return nil, false
	}
}

// identifierDisplayName renders an identifier for a NameMismatch
// diagnostic's Expected/Actual phrases; non-direct forms render as a
// fixed placeholder since their real name isn't known without evaluation.
func identifierDisplayName(id *ast.Identifier) string {
	if id == nil {
		return "<unknown>"
	}
	if id.Kind == ast.DirectIdent && id.Slot == nil {
		return id.Name
	}
	return "<computed identifier>"
}
