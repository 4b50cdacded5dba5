/*
Package parser implements a recursive-descent parser for LOLCODE.

The parser converts a token stream (produced by an external tokenizer —
see package token for the contract) into an Abstract Syntax Tree (package
ast). It handles:
  - Leaf productions (constants, type tags, identifiers)
  - Expressions (casts, constants, identifiers, calls, prefix operators)
  - Statements (all fourteen variants described in SPEC_FULL.md §3)
  - Nested blocks opened by O RLY?, WTF?, IM IN YR, HOW IZ, O HAI IM

Key properties (spec.md §5, §7):
  - Single-threaded and synchronous: no goroutines, no shared state across
    Parser instances, so two parsers can run concurrently on disjoint
    token streams with no coordination.
  - Fatal on first error: any require() mismatch aborts the parse with
    exactly one diagnostic, routed through an injected diag.Sink rather
    than a hardcoded stream (spec.md §9 Design Notes).
  - Pure: expression construction never evaluates or folds constants;
    that is the evaluator's job, out of scope here (spec.md §1).
*/
package parser

import (
	"github.com/lolc-toolchain/lolparse/ast"
	"github.com/lolc-toolchain/lolparse/diag"
	"github.com/lolc-toolchain/lolparse/token"
)

// Parser holds the token cursor, the injected diagnostic sink, and the
// first (and only) diagnostic recorded for this parse, if any.
type Parser struct {
	cur  *cursor
	sink diag.Sink

	failed     bool
	diagnostic *diag.Diagnostic
}

// New creates a Parser over tokens, reporting through sink. sink must not
// be nil; pass diag.NewWriterSink(os.Stderr) for the source's original
// direct-to-stderr behavior, or a diag.RecordingSink in tests.
func New(tokens []token.Token, sink diag.Sink) *Parser {
	return &Parser{cur: newCursor(tokens), sink: sink}
}

// Failed reports whether parsing has aborted. Once true, every further
// parse* call is a no-op that returns nil (a block parse returns an empty
// block).
func (p *Parser) Failed() bool { return p.failed }

// Diagnostic returns the single diagnostic that aborted the parse, or nil
// if parsing has not failed.
func (p *Parser) Diagnostic() *diag.Diagnostic { return p.diagnostic }

// ParseProgram is the program-assembler entry point (spec.md §4.5):
// requires HAI, a version token (accepted and recorded, never validated),
// and NEWLINE; parses a block until KTHXBYE or EOF; returns the root.
//
// Returns (root, true) on success. On failure, returns (nil, false); the
// caller observes the reported diagnostic via Diagnostic().
func (p *Parser) ParseProgram() (*ast.Program, bool) {
	if _, ok := p.require(token.HAI); !ok {
		return nil, false
	}
	version := p.cur.advance().Text()
	if _, ok := p.require(token.NEWLINE); !ok {
		return nil, false
	}

	block := p.parseTopLevelBlock(token.KTHXBYE)
	if p.failed {
		return nil, false
	}

	if p.accept(token.KTHXBYE) {
		if _, ok := p.require(token.NEWLINE); !ok {
			return nil, false
		}
	}
	if p.failed {
		return nil, false
	}

	return &ast.Program{Version: version, Root: block}, true
}

// peek reports whether the current token has kind k, without advancing.
func (p *Parser) peek(k token.Kind) bool {
	return p.cur.current().Kind == k
}

// accept advances and returns true iff the current token has kind k.
func (p *Parser) accept(k token.Kind) bool {
	if p.failed {
		return false
	}
	if p.cur.current().Kind == k {
		p.cur.advance()
		return true
	}
	return false
}

// require is accept, but reports an UnexpectedToken diagnostic and aborts
// the parse on mismatch. The diagnostic's "expected" phrase is k's
// canonical keyword spelling (token.Kind.String()).
func (p *Parser) require(k token.Kind) (token.Token, bool) {
	if p.failed {
		return token.Token{}, false
	}
	cur := p.cur.current()
	if cur.Kind != k {
		p.failExpected(k.String(), cur)
		return token.Token{}, false
	}
	return p.cur.advance(), true
}

// failExpected reports an UnexpectedToken diagnostic naming a free-form
// expected phrase (a keyword spelling, or "an identifier", "an
// expression", "a type") against the offending token.
func (p *Parser) failExpected(expected string, actual token.Token) {
	p.fail(diag.Diagnostic{
		Kind:     diag.UnexpectedToken,
		File:     actual.File,
		Line:     actual.Line,
		Expected: expected,
		Actual:   actual.Text(),
	})
}

// fail records d as the parse's single diagnostic and reports it through
// the sink. Only the first call has any effect — spec.md §7: "All four
// kinds are fatal... There is no partial result" — so later callers in an
// already-failed parse silently no-op rather than emitting a second
// diagnostic for a location reached only because the first one fired.
func (p *Parser) fail(d diag.Diagnostic) {
	if p.failed {
		return
	}
	p.failed = true
	cp := d
	p.diagnostic = &cp
	p.sink.Report(d)
}
