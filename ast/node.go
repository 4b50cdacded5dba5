// Package ast defines the parser's output: a tree of tagged node variants
// with no shared sub-trees and no cycles. Every non-leaf node owns its
// children exclusively; Go's garbage collector retires the source
// specification's manual "free the whole tree post-order" discipline, so
// there is no explicit Free/Destroy step here (see DESIGN.md).
//
// Nodes are built once, during a single post-order parse, and never
// mutated after their parent accepts them. Traversal is by type switch
// (see Print in printer.go) rather than a visitor interface: the parser
// core has no evaluator to double-dispatch into, so a type switch is the
// idiomatic, lower-ceremony choice for the one consumer this package does
// ship (the canonical-source printer used by round-trip tests).
package ast

import "github.com/lolc-toolchain/lolparse/token"

// Statement is implemented by every statement-node variant in spec.md §3.
type Statement interface {
	stmtNode()
}

// Expression is implemented by every expression-node variant in spec.md §3.
// Expressions are also statements: an expression followed by NEWLINE is a
// valid (expression-)statement that updates IT.
type Expression interface {
	Statement
	exprNode()
}

// Block is an ordered sequence of statements. It may be empty and always
// appears inside a statement variant or the program root.
type Block struct {
	Statements []Statement
}

// Program is the parse root: the opening HAI banner plus the top-level
// block, terminated by KTHXBYE or EOF. It exists exactly once per parse.
type Program struct {
	// Version is the banner token's literal text, recorded but never
	// validated against any value set (spec.md §4.5, §9 Open Questions).
	Version string
	Root    *Block
}

// TypeTag is one of the five primitive type keywords, plus BUKKIT (the
// sixth, non-primitive tag for the array family — SPEC_FULL §12). The
// primitive five remain a closed set for cast-expression purposes.
type TypeTag int

const (
	NOOB TypeTag = iota
	TROOF
	NUMBR
	NUMBAR
	YARN
	BUKKIT
)

func (t TypeTag) String() string {
	switch t {
	case NOOB:
		return "NOOB"
	case TROOF:
		return "TROOF"
	case NUMBR:
		return "NUMBR"
	case NUMBAR:
		return "NUMBAR"
	case YARN:
		return "YARN"
	case BUKKIT:
		return "BUKKIT"
	default:
		return "UNKNOWN"
	}
}

// TypeTagFromKind maps a token kind to its TypeTag, or ok=false if the
// token is not one of the type keywords.
func TypeTagFromKind(k token.Kind) (TypeTag, bool) {
	switch k {
	case token.TYPE_NOOB:
		return NOOB, true
	case token.TYPE_TROOF:
		return TROOF, true
	case token.TYPE_NUMBR:
		return NUMBR, true
	case token.TYPE_NUMBAR:
		return NUMBAR, true
	case token.TYPE_YARN:
		return YARN, true
	case token.TYPE_BUKKIT:
		return BUKKIT, true
	default:
		return 0, false
	}
}
