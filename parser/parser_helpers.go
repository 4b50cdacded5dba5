package parser

import (
	"strings"

	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/diag"
	"github.com/lolc-toolchain/lolparse/token"
)

// diagMalformed builds a MalformedConstruct diagnostic anchored at tok,
// naming what the construct required and was missing (e.g. a switch with
// zero OMG cases, spec.md §7).
func diagMalformed(tok token.Token, required string) diag.Diagnostic {
	return diag.Diagnostic{
		Kind:     diag.MalformedConstruct,
		File:     tok.File,
		Line:     tok.Line,
		Expected: required,
		Actual:   tok.Kind.String(),
	}
}

// diagNameMismatch builds a NameMismatch diagnostic for a closing name
// that does not textually match its opening name (loop name balance,
// spec.md §8 scenario 5).
func diagNameMismatch(tok token.Token, opened, closed string) diag.Diagnostic {
	return diag.Diagnostic{
		Kind:     diag.NameMismatch,
		File:     tok.File,
		Line:     tok.Line,
		Expected: opened,
		Actual:   closed,
	}
}

// diagUnclosed builds an UnclosedConstruct diagnostic anchored at tok (the
// synthesized EOF token) when input runs out before any of terminators was
// seen (spec.md §7: "EOF reached while a block terminator was expected").
func diagUnclosed(tok token.Token, terminators []token.Kind) diag.Diagnostic {
	names := make([]string, len(terminators))
	for i, k := range terminators {
		names[i] = k.String()
	}
	return diag.Diagnostic{
		Kind:     diag.UnclosedConstruct,
		File:     tok.File,
		Line:     tok.Line,
		Expected: strings.Join(names, " or "),
		Actual:   tok.Kind.String(),
	}
}

// operatorTokenKinds maps each operator keyword token to its OperatorKind.
// It is the single source of truth the expression dispatcher consults, so
// adding a new operator never requires touching more than this table plus
// the ast package's Arity/String tables.
var operatorTokenKinds = map[token.Kind]ast.OperatorKind{
	token.SUM_OF:      ast.OpAdd,
	token.DIFF_OF:     ast.OpSub,
	token.PRODUKT_OF:  ast.OpMul,
	token.QUOSHUNT_OF: ast.OpDiv,
	token.MOD_OF:      ast.OpMod,
	token.BIGGR_OF:    ast.OpMax,
	token.SMALLR_OF:   ast.OpMin,
	token.BOTH_OF:     ast.OpAnd,
	token.EITHER_OF:   ast.OpOr,
	token.WON_OF:      ast.OpXor,
	token.NOT:         ast.OpNot,
	token.BOTH_SAEM:   ast.OpEq,
	token.DIFFRINT:    ast.OpNeq,
	token.ALL_OF:      ast.OpAllOf,
	token.ANY_OF:      ast.OpAnyOf,
	token.SMOOSH:      ast.OpConcat,
}

// operatorKindFromToken looks up the OperatorKind for a leading operator
// token, if any.
func operatorKindFromToken(k token.Kind) (ast.OperatorKind, bool) {
	ok, found := operatorTokenKinds[k]
	return ok, found
}
