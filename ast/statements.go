package ast

// CastStatement is `<ident> IS NOW A <type>`: mutates the named variable's
// value/type in place (contrast CastExpression, which is a pure cast).
type CastStatement struct {
	Target *Identifier
	Type   TypeTag
}

func (n *CastStatement) stmtNode() {}

// PrintStatement is `VISIBLE <expr> (<expr>)* [!]`. SuppressNewline is true
// when the trailing bang is present.
type PrintStatement struct {
	Args            []Expression
	SuppressNewline bool
}

func (n *PrintStatement) stmtNode() {}

// InputStatement is `GIMMEH <ident>`.
type InputStatement struct {
	Target *Identifier
}

func (n *InputStatement) stmtNode() {}

// AssignmentStatement is `<ident> R <expr>`.
type AssignmentStatement struct {
	Target *Identifier
	Value  Expression
}

func (n *AssignmentStatement) stmtNode() {}

// DeclarationStatement is `<scope> HAS A <target> [init]`. At most one of
// InitExpr, InitType, ParentIdent is populated, none when the declaration
// has no initializer (declaration exclusivity,
// spec.md §8); the parser rejects any syntax that would populate more than
// one rather than leaving that possibility latent in the struct (spec.md §9
// Open Questions).
type DeclarationStatement struct {
	Scope  *Identifier
	Target *Identifier

	InitExpr    Expression  // `ITZ <expr>`
	InitType    *TypeTag    // `ITZ A <type>`
	ParentIdent *Identifier // `ITZ LIEK A <parent>`
}

func (n *DeclarationStatement) stmtNode() {}

// GuardedBlock pairs one elseif/case guard expression with its block,
// reifying the source's parallel guards[]/blocks[] arrays (spec.md §9
// Design Notes) as a single ordered sequence of pairs, so the equal-length
// invariant is structural rather than asserted.
type GuardedBlock struct {
	Guard Expression
	Body  *Block
}

// IfStatement is the O RLY?/YA RLY/MEBBE/NO WAI/OIC construct. Yes always
// exists; ElseIfs holds zero or more MEBBE guard+block pairs in source
// order; No is nil when NO WAI is absent.
type IfStatement struct {
	Yes     *Block
	ElseIfs []GuardedBlock
	No      *Block
}

func (n *IfStatement) stmtNode() {}

// SwitchStatement is the WTF?/OMG/OMGWTF/OIC construct. Cases holds one or
// more OMG guard+block pairs; Default is nil when OMGWTF is absent.
type SwitchStatement struct {
	Cases   []GuardedBlock
	Default *Block
}

func (n *SwitchStatement) stmtNode() {}

// BreakStatement is `GTFO`.
type BreakStatement struct{}

func (n *BreakStatement) stmtNode() {}

// ReturnStatement is `FOUND YR <expr>`.
type ReturnStatement struct {
	Value Expression
}

func (n *ReturnStatement) stmtNode() {}

// LoopUpdateKind distinguishes the two builtin update verbs from a
// user-function update operator.
type LoopUpdateKind int

const (
	LoopUpdateNone LoopUpdateKind = iota
	LoopUpdateUppin
	LoopUpdateNerfin
	LoopUpdateFunc
)

// LoopUpdate is the loop header's optional `<op> YR <var>` clause. When
// Kind == LoopUpdateFunc, FuncName names a previously defined unary
// function; the parser accepts any identifier here and leaves arity
// checking to the evaluator (spec.md §9 Open Questions), since the parser
// has no symbol table.
type LoopUpdate struct {
	Kind     LoopUpdateKind
	FuncName *Identifier // populated when Kind == LoopUpdateFunc
}

// LoopGuardKind distinguishes TIL from WILE.
type LoopGuardKind int

const (
	LoopGuardNone LoopGuardKind = iota
	LoopGuardTil
	LoopGuardWile
)

// LoopGuard is the loop header's optional `TIL <expr>` / `WILE <expr>`.
type LoopGuard struct {
	Kind LoopGuardKind
	Expr Expression
}

// LoopStatement is `IM IN YR <name> [update] [guard] ... IM OUTTA YR
// <name>`. The closing name must textually equal Name (loop-name balance,
// spec.md §8); the parser checks this and reports a name-mismatch
// diagnostic rather than encoding it as a tree invariant, since the
// mismatch is itself the condition under test.
type LoopStatement struct {
	Name      *Identifier
	UpdateVar *Identifier // identifier the update operator advances, if any
	Update    *LoopUpdate
	Guard     *LoopGuard
	Body      *Block
}

func (n *LoopStatement) stmtNode() {}

// DeallocationStatement is `<ident> R NOOB`.
type DeallocationStatement struct {
	Target *Identifier
}

func (n *DeallocationStatement) stmtNode() {}

// FunctionDefStatement is `HOW IZ <scope> <name> [YR <arg> (AN YR <arg>)*]
// ... IF U SAY SO`.
type FunctionDefStatement struct {
	Scope  *Identifier
	Name   *Identifier
	Params []*Identifier
	Body   *Block
}

func (n *FunctionDefStatement) stmtNode() {}

// AltArrayDefStatement is `O HAI IM <name> [IM LIEK <parent>] ... KTHX`.
type AltArrayDefStatement struct {
	Name   *Identifier
	Parent *Identifier // nil when IM LIEK is absent
	Body   *Block
}

func (n *AltArrayDefStatement) stmtNode() {}
