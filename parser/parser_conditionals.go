/*
File: parser/parser_conditionals.go

If/then/else (O RLY?) and switch (WTF?) parsing (spec.md §4.4, §8 scenario
4). Both reify their parallel guard/block pairs as []ast.GuardedBlock
rather than twin arrays (ast.GuardedBlock doc comment).
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/token"
)

// parseIf parses `O RLY? NEWLINE YA RLY NEWLINE <block> (MEBBE <expr>
// NEWLINE <block>)* [NO WAI NEWLINE <block>] OIC`.
func (p *Parser) parseIf() ast.Statement {
	p.cur.advance() // O RLY?
	if _, ok := p.require(token.NEWLINE); !ok {
		return nil
	}
	if _, ok := p.require(token.YA_RLY); !ok {
		return nil
	}
	if _, ok := p.require(token.NEWLINE); !ok {
		return nil
	}

	yes := p.parseBlock(token.MEBBE, token.NO_WAI, token.OIC)
	if p.failed {
		return nil
	}

	stmt := &ast.IfStatement{Yes: yes}

	for p.peek(token.MEBBE) {
		p.cur.advance()
		guard := p.parseExpression()
		if p.failed {
			return nil
		}
		if _, ok := p.require(token.NEWLINE); !ok {
			return nil
		}
		body := p.parseBlock(token.MEBBE, token.NO_WAI, token.OIC)
		if p.failed {
			return nil
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ast.GuardedBlock{Guard: guard, Body: body})
	}

	if p.accept(token.NO_WAI) {
		if _, ok := p.require(token.NEWLINE); !ok {
			return nil
		}
		no := p.parseBlock(token.OIC)
		if p.failed {
			return nil
		}
		stmt.No = no
	}

	if _, ok := p.require(token.OIC); !ok {
		return nil
	}
	return stmt
}

// parseSwitch parses `WTF? NEWLINE (OMG <expr> NEWLINE <block>)+
// [OMGWTF NEWLINE <block>] OIC`. Each case guard is a full expression
// (spec.md §4.4), not just a literal constant. At least one OMG case is
// required; zero cases is a MalformedConstruct (spec.md §7, §8).
func (p *Parser) parseSwitch() ast.Statement {
	tok := p.cur.advance() // WTF?
	if _, ok := p.require(token.NEWLINE); !ok {
		return nil
	}

	stmt := &ast.SwitchStatement{}
	for p.peek(token.OMG) {
		p.cur.advance()
		guard := p.parseExpression()
		if p.failed {
			return nil
		}
		if _, ok := p.require(token.NEWLINE); !ok {
			return nil
		}
		body := p.parseBlock(token.OMG, token.OMGWTF, token.OIC)
		if p.failed {
			return nil
		}
		stmt.Cases = append(stmt.Cases, ast.GuardedBlock{Guard: guard, Body: body})
	}

	if len(stmt.Cases) == 0 {
		p.fail(diagMalformed(tok, "at least one OMG case"))
		return nil
	}

	if p.accept(token.OMGWTF) {
		if _, ok := p.require(token.NEWLINE); !ok {
			return nil
		}
		def := p.parseBlock(token.OIC)
		if p.failed {
			return nil
		}
		stmt.Default = def
	}

	if _, ok := p.require(token.OIC); !ok {
		return nil
	}
	return stmt
}
