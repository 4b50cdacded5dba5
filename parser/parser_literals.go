/*
File: parser/parser_literals.go

Leaf parsers (spec.md §4.2): constants, type tags, and identifiers. These
are the only productions that never recurse into parseStatement — they
bottom out the grammar (identifiers recurse only into their own slot
chain, and the indirect SRS form recurses into parseExpression, but never
back into a statement).
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/token"
)

// parseConstant dispatches on the current token's kind to produce an
// integer, float, boolean, or string constant (spec.md §4.2). Integer
// literals are signed 64-bit; overflow is a lexical concern reported by
// the tokenizer, surfacing here only as an already-malformed token if it
// ever reaches the parser. Float literals are 32-bit. String literals are
// taken verbatim — escape processing already happened upstream.
func (p *Parser) parseConstant() *ast.Constant {
	if p.failed {
		return nil
	}
	tok := p.cur.current()
	switch tok.Kind {
	case token.INTEGER:
		p.cur.advance()
		return ast.NewIntegerConstant(tok.IntValue, tok.File, tok.Line)
	case token.FLOAT:
		p.cur.advance()
		return ast.NewFloatConstant(tok.FloatValue, tok.File, tok.Line)
	case token.BOOLEAN:
		p.cur.advance()
		return ast.NewBooleanConstant(tok.BoolValue, tok.File, tok.Line)
	case token.STRING:
		p.cur.advance()
		return ast.NewStringConstant(tok.Literal, tok.File, tok.Line)
	default:
		p.failExpected("a constant", tok)
		return nil
	}
}

// parseTypeTag accepts exactly one of the closed set of type keywords.
func (p *Parser) parseTypeTag() (ast.TypeTag, bool) {
	if p.failed {
		return 0, false
	}
	tok := p.cur.current()
	if tt, ok := ast.TypeTagFromKind(tok.Kind); ok {
		p.cur.advance()
		return tt, true
	}
	p.failExpected("a type", tok)
	return 0, false
}

// parseIdentifier parses a direct name token or an indirect `SRS <expr>`
// form, then — if the cursor sees 'Z — recursively parses another
// identifier as the slot and attaches it. Slot chains may nest
// arbitrarily (spec.md §4.2).
func (p *Parser) parseIdentifier() *ast.Identifier {
	if p.failed {
		return nil
	}
	tok := p.cur.current()

	var id *ast.Identifier
	switch tok.Kind {
	case token.IDENT:
		p.cur.advance()
		id = ast.NewDirectIdentifier(tok)
	case token.SRS:
		p.cur.advance()
		expr := p.parseExpression()
		if p.failed {
			return nil
		}
		id = ast.NewIndirectIdentifier(tok, expr)
	default:
		p.failExpected("an identifier", tok)
		return nil
	}

	if p.accept(token.SLOT_MARK) {
		slot := p.parseIdentifier()
		if p.failed {
			return nil
		}
		id.WithSlot(slot)
	}
	return id
}

// identifierNamesEqual implements the loop-name-balance comparison. Only two plain direct identifiers (no slot, no indirect
// form) can be compared textually without evaluating anything; any other
// shape is treated as unequal, since its "name" isn't known until
// runtime.
func identifierNamesEqual(a, b *ast.Identifier) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind != ast.DirectIdent || b.Kind != ast.DirectIdent {
		return false
	}
	if a.Slot != nil || b.Slot != nil {
		return false
	}
	return a.Name == b.Name
}
