/*
File: parser/parser_functions.go

Function definitions (`HOW IZ <scope> <name> [YR <arg> (AN YR <arg>)*]
NEWLINE <block> IF U SAY SO`) and alternate-array definitions (`O HAI IM
<name> [IM LIEK <parent>] NEWLINE <block> KTHX`), spec.md §4.4 and
SPEC_FULL §12.
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/token"
)

func (p *Parser) parseFunctionDef() ast.Statement {
	p.cur.advance() // HOW IZ
	scope := p.parseIdentifier()
	if p.failed {
		return nil
	}
	name := p.parseIdentifier()
	if p.failed {
		return nil
	}

	var params []*ast.Identifier
	if p.accept(token.YR) {
		param := p.parseIdentifier()
		if p.failed {
			return nil
		}
		params = append(params, param)
		for p.accept(token.AN) {
			if _, ok := p.require(token.YR); !ok {
				return nil
			}
			param := p.parseIdentifier()
			if p.failed {
				return nil
			}
			params = append(params, param)
		}
	}

	if _, ok := p.require(token.NEWLINE); !ok {
		return nil
	}

	body := p.parseBlock(token.IF_U_SAY_SO)
	if p.failed {
		return nil
	}

	if _, ok := p.require(token.IF_U_SAY_SO); !ok {
		return nil
	}

	return &ast.FunctionDefStatement{Scope: scope, Name: name, Params: params, Body: body}
}

func (p *Parser) parseAltArrayDef() ast.Statement {
	p.cur.advance() // O HAI IM
	name := p.parseIdentifier()
	if p.failed {
		return nil
	}

	def := &ast.AltArrayDefStatement{Name: name}
	if p.accept(token.IM_LIEK) {
		parent := p.parseIdentifier()
		if p.failed {
			return nil
		}
		def.Parent = parent
	}

	if _, ok := p.require(token.NEWLINE); !ok {
		return nil
	}

	body := p.parseBlock(token.KTHX)
	if p.failed {
		return nil
	}
	def.Body = body

	if _, ok := p.require(token.KTHX); !ok {
		return nil
	}
	return def
}
