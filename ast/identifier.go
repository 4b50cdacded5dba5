package ast

import "github.com/lolc-toolchain/lolparse/token"

// IdentKind distinguishes a direct name from an indirect (SRS) identifier.
type IdentKind int

const (
	DirectIdent IdentKind = iota
	IndirectIdent
)

// Identifier is either a direct name token or an indirect SRS <expr> form,
// optionally followed by a 'Z slot suffix naming a member access. Slot
// chains are a singly linked chain (never a cycle) owned head-to-tail:
// `a'Z b'Z c` parses as Identifier{a, Slot: Identifier{b, Slot: Identifier{c}}}.
//
// File and Line record the position of the identifier's first token, for
// diagnostics and the "line fidelity" testable property (spec.md §8).
type Identifier struct {
	Kind IdentKind

	// Name holds the direct identifier's name when Kind == DirectIdent.
	Name string
	// Indirect holds the SRS sub-expression when Kind == IndirectIdent.
	Indirect Expression

	// Slot is the optional 'Z-qualified sub-identifier; nil when absent.
	Slot *Identifier

	File string
	Line int
}

func (id *Identifier) exprNode() {}
func (id *Identifier) stmtNode() {}

// NewDirectIdentifier builds a direct identifier from its source token.
func NewDirectIdentifier(tok token.Token) *Identifier {
	return &Identifier{Kind: DirectIdent, Name: tok.Literal, File: tok.File, Line: tok.Line}
}

// NewIndirectIdentifier builds an SRS <expr> indirect identifier; srsTok is
// the SRS keyword token whose position is recorded for diagnostics.
func NewIndirectIdentifier(srsTok token.Token, expr Expression) *Identifier {
	return &Identifier{Kind: IndirectIdent, Indirect: expr, File: srsTok.File, Line: srsTok.Line}
}

// WithSlot attaches (or replaces) the slot chain and returns id for chaining.
func (id *Identifier) WithSlot(slot *Identifier) *Identifier {
	id.Slot = slot
	return id
}
