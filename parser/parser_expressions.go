/*
File: parser/parser_expressions.go

Expression parsing (spec.md §4.3): casts, constants, the implicit IT
variable, identifiers (plain or as the scope of a function call), and
prefix operators of all three arities.
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/token"
)

// parseExpression dispatches on the leading token to one of: a cast
// (MAEK), a literal constant, the implicit variable (IT), an operator
// application, or an identifier — which may turn out to be a bare
// identifier expression or, if IZ immediately follows, the scope of a
// function call. The identifier/call ambiguity is resolved with exactly
// one token of lookahead after the identifier is fully parsed; no
// backtracking is needed (spec.md §9 Design Notes).
func (p *Parser) parseExpression() ast.Expression {
	if p.failed {
		return nil
	}
	tok := p.cur.current()

	switch {
	case tok.Kind == token.MAEK:
		return p.parseCastExpression()
	case tok.Kind == token.IT:
		p.cur.advance()
		return &ast.ImplicitExpression{File: tok.File, Line: tok.Line}
	case tok.Kind == token.INTEGER, tok.Kind == token.FLOAT,
		tok.Kind == token.STRING, tok.Kind == token.BOOLEAN:
		return p.parseConstant()
	case tok.Kind == token.IDENT, tok.Kind == token.SRS:
		id := p.parseIdentifier()
		if p.failed {
			return nil
		}
		if p.peek(token.IZ) {
			return p.parseCallExpr(id)
		}
		return id
	default:
		if _, isOp := operatorKindFromToken(tok.Kind); isOp {
			return p.parseOperatorExpression()
		}
		p.failExpected("an expression", tok)
		return nil
	}
}

// parseCastExpression parses `MAEK <expr> A <type>` (the pure form). The A
// keyword is required, per spec.md §4.3's component-design table ("parse
// expr, require A, parse type") and for symmetry with ITZ A / IS NOW A.
func (p *Parser) parseCastExpression() ast.Expression {
	tok := p.cur.advance() // MAEK
	expr := p.parseExpression()
	if p.failed {
		return nil
	}
	if _, ok := p.require(token.A); !ok {
		return nil
	}
	typeTok := p.cur.current()
	tt, ok := p.parseTypeTag()
	if !ok {
		return nil
	}
	if tt == ast.BUKKIT {
		p.failExpected("a primitive type", typeTok)
		return nil
	}
	return &ast.CastExpression{Expr: expr, Type: tt, File: tok.File, Line: tok.Line}
}

// parseCallExpr parses the `IZ <name> [YR <arg> (AN YR <arg>)*] MKAY` tail
// of a function call, given the already-parsed scope identifier.
func (p *Parser) parseCallExpr(scope *ast.Identifier) ast.Expression {
	izTok, ok := p.require(token.IZ)
	if !ok {
		return nil
	}
	name := p.parseIdentifier()
	if p.failed {
		return nil
	}

	var args []ast.Expression
	if p.accept(token.YR) {
		arg := p.parseExpression()
		if p.failed {
			return nil
		}
		args = append(args, arg)
		for p.accept(token.AN) {
			if _, ok := p.require(token.YR); !ok {
				return nil
			}
			arg := p.parseExpression()
			if p.failed {
				return nil
			}
			args = append(args, arg)
		}
	}

	if _, ok := p.require(token.MKAY); !ok {
		return nil
	}
	return &ast.CallExpression{Scope: scope, Name: name, Args: args, File: izTok.File, Line: izTok.Line}
}

// parseOperatorExpression parses a prefix operator application. The
// operand count and separator discipline are driven entirely by the
// operator's Arity (ast.OperatorKind.Arity): unary takes exactly one
// operand and no separators; binary takes exactly two, with an optional
// AN between them; n-ary takes one or more, with optional AN separators
// and a mandatory MKAY terminator (spec.md §4.3, §8 scenario 6).
func (p *Parser) parseOperatorExpression() ast.Expression {
	tok := p.cur.advance()
	kind, _ := operatorKindFromToken(tok.Kind)

	switch kind.Arity() {
	case ast.UnaryArity:
		operand := p.parseExpression()
		if p.failed {
			return nil
		}
		return &ast.OperatorExpression{Op: kind, Operands: []ast.Expression{operand}, File: tok.File, Line: tok.Line}

	case ast.BinaryArity:
		lhs := p.parseExpression()
		if p.failed {
			return nil
		}
		p.accept(token.AN)
		rhs := p.parseExpression()
		if p.failed {
			return nil
		}
		return &ast.OperatorExpression{Op: kind, Operands: []ast.Expression{lhs, rhs}, File: tok.File, Line: tok.Line}

	default: // NAryArity
		var operands []ast.Expression
		first := p.parseExpression()
		if p.failed {
			return nil
		}
		operands = append(operands, first)
		for !p.failed && !p.peek(token.MKAY) {
			p.accept(token.AN)
			next := p.parseExpression()
			if p.failed {
				return nil
			}
			operands = append(operands, next)
		}
		if _, ok := p.require(token.MKAY); !ok {
			return nil
		}
		return &ast.OperatorExpression{Op: kind, Operands: operands, File: tok.File, Line: tok.Line}
	}
}
