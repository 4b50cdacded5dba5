package parser

import (
	"github.com/lolc-toolchain/lolparse/diag"
	"github.com/lolc-toolchain/lolparse/token"
)

// tok builds a structural (no-payload) token at a fixed test file/line, to
// keep table-driven test cases readable.
func tok(k token.Kind) token.Token {
	return token.New(k, "t.lol", 1)
}

func identTok(name string) token.Token {
	return token.NewIdent(name, "t.lol", 1)
}

func intTok(v int64) token.Token {
	return token.NewInt(v, "t.lol", 1)
}

func floatTok(v float32) token.Token {
	return token.NewFloat(v, "t.lol", 1)
}

func strTok(s string) token.Token {
	return token.NewString(s, "t.lol", 1)
}

func boolTok(b bool) token.Token {
	return token.NewBool(b, "t.lol", 1)
}

// newTestParser wraps tokens with a diag.RecordingSink so tests can assert
// on the structured diagnostic without parsing any rendered text.
func newTestParser(toks []token.Token) (*Parser, *diag.RecordingSink) {
	sink := &diag.RecordingSink{}
	return New(toks, sink), sink
}

// withEOF appends nothing — EOF is synthesized by the cursor automatically.
// Kept as a readability marker at call sites that rely on that behavior.
func withEOF(toks ...token.Token) []token.Token { return toks }
