package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a Program back to canonical LOLCODE source text. It is
// used by the round-trip testable property (spec.md §8): a constructed
// AST, printed and re-parsed, must yield the same tree modulo line
// numbers. Print never needs a diagnostic sink — a well-formed AST always
// has a canonical textual form.
func Print(p *Program) string {
	var sb strings.Builder
	version := p.Version
	if version == "" {
		version = "1.2"
	}
	fmt.Fprintf(&sb, "HAI %s\n", version)
	printBlock(&sb, p.Root, 0)
	sb.WriteString("KTHXBYE\n")
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("    ", depth))
}

func printBlock(sb *strings.Builder, b *Block, depth int) {
	if b == nil {
		return
	}
	for _, stmt := range b.Statements {
		printStatement(sb, stmt, depth)
	}
}

func printStatement(sb *strings.Builder, stmt Statement, depth int) {
	indent(sb, depth)
	switch n := stmt.(type) {
	case *CastStatement:
		fmt.Fprintf(sb, "%s IS NOW A %s\n", printIdentifier(n.Target), n.Type)
	case *PrintStatement:
		sb.WriteString("VISIBLE")
		for _, a := range n.Args {
			sb.WriteString(" ")
			sb.WriteString(printExpression(a))
		}
		if n.SuppressNewline {
			sb.WriteString(" !")
		}
		sb.WriteString("\n")
	case *InputStatement:
		fmt.Fprintf(sb, "GIMMEH %s\n", printIdentifier(n.Target))
	case *AssignmentStatement:
		fmt.Fprintf(sb, "%s R %s\n", printIdentifier(n.Target), printExpression(n.Value))
	case *DeclarationStatement:
		sb.WriteString(printIdentifier(n.Scope))
		sb.WriteString(" HAS A ")
		sb.WriteString(printIdentifier(n.Target))
		switch {
		case n.InitExpr != nil:
			sb.WriteString(" ITZ ")
			sb.WriteString(printExpression(n.InitExpr))
		case n.InitType != nil:
			sb.WriteString(" ITZ A ")
			sb.WriteString(n.InitType.String())
		case n.ParentIdent != nil:
			sb.WriteString(" ITZ LIEK A ")
			sb.WriteString(printIdentifier(n.ParentIdent))
		}
		sb.WriteString("\n")
	case *IfStatement:
		sb.WriteString("O RLY?\n")
		indent(sb, depth)
		sb.WriteString("YA RLY\n")
		printBlock(sb, n.Yes, depth+1)
		for _, ei := range n.ElseIfs {
			indent(sb, depth)
			fmt.Fprintf(sb, "MEBBE %s\n", printExpression(ei.Guard))
			printBlock(sb, ei.Body, depth+1)
		}
		if n.No != nil {
			indent(sb, depth)
			sb.WriteString("NO WAI\n")
			printBlock(sb, n.No, depth+1)
		}
		indent(sb, depth)
		sb.WriteString("OIC\n")
	case *SwitchStatement:
		sb.WriteString("WTF?\n")
		for _, c := range n.Cases {
			indent(sb, depth)
			fmt.Fprintf(sb, "OMG %s\n", printExpression(c.Guard))
			printBlock(sb, c.Body, depth+1)
		}
		if n.Default != nil {
			indent(sb, depth)
			sb.WriteString("OMGWTF\n")
			printBlock(sb, n.Default, depth+1)
		}
		indent(sb, depth)
		sb.WriteString("OIC\n")
	case *BreakStatement:
		sb.WriteString("GTFO\n")
	case *ReturnStatement:
		fmt.Fprintf(sb, "FOUND YR %s\n", printExpression(n.Value))
	case *LoopStatement:
		sb.WriteString("IM IN YR ")
		sb.WriteString(printIdentifier(n.Name))
		if n.Update != nil && n.Update.Kind != LoopUpdateNone {
			switch n.Update.Kind {
			case LoopUpdateUppin:
				sb.WriteString(" UPPIN")
			case LoopUpdateNerfin:
				sb.WriteString(" NERFIN")
			case LoopUpdateFunc:
				sb.WriteString(" ")
				sb.WriteString(printIdentifier(n.Update.FuncName))
			}
			fmt.Fprintf(sb, " YR %s", printIdentifier(n.UpdateVar))
		}
		if n.Guard != nil && n.Guard.Kind != LoopGuardNone {
			switch n.Guard.Kind {
			case LoopGuardTil:
				sb.WriteString(" TIL ")
			case LoopGuardWile:
				sb.WriteString(" WILE ")
			}
			sb.WriteString(printExpression(n.Guard.Expr))
		}
		sb.WriteString("\n")
		printBlock(sb, n.Body, depth+1)
		indent(sb, depth)
		fmt.Fprintf(sb, "IM OUTTA YR %s\n", printIdentifier(n.Name))
	case *DeallocationStatement:
		fmt.Fprintf(sb, "%s R NOOB\n", printIdentifier(n.Target))
	case *FunctionDefStatement:
		sb.WriteString("HOW IZ ")
		sb.WriteString(printIdentifier(n.Scope))
		sb.WriteString(" ")
		sb.WriteString(printIdentifier(n.Name))
		for i, p := range n.Params {
			if i == 0 {
				sb.WriteString(" YR ")
			} else {
				sb.WriteString(" AN YR ")
			}
			sb.WriteString(printIdentifier(p))
		}
		sb.WriteString("\n")
		printBlock(sb, n.Body, depth+1)
		indent(sb, depth)
		sb.WriteString("IF U SAY SO\n")
	case *AltArrayDefStatement:
		sb.WriteString("O HAI IM ")
		sb.WriteString(printIdentifier(n.Name))
		if n.Parent != nil {
			sb.WriteString(" IM LIEK ")
			sb.WriteString(printIdentifier(n.Parent))
		}
		sb.WriteString("\n")
		printBlock(sb, n.Body, depth+1)
		indent(sb, depth)
		sb.WriteString("KTHX\n")
	case *ExpressionStatement:
		sb.WriteString(printExpression(n.Expr))
		sb.WriteString("\n")
	default:
		sb.WriteString("\n")
	}
}

func printIdentifier(id *Identifier) string {
	if id == nil {
		return ""
	}
	var base string
	if id.Kind == DirectIdent {
		base = id.Name
	} else {
		base = "SRS " + printExpression(id.Indirect)
	}
	if id.Slot != nil {
		return base + "'Z " + printIdentifier(id.Slot)
	}
	return base
}

func printExpression(e Expression) string {
	switch n := e.(type) {
	case *Constant:
		return printConstant(n)
	case *Identifier:
		return printIdentifier(n)
	case *CastExpression:
		return "MAEK " + printExpression(n.Expr) + " A " + n.Type.String()
	case *CallExpression:
		var sb strings.Builder
		sb.WriteString(printIdentifier(n.Scope))
		sb.WriteString(" IZ ")
		sb.WriteString(printIdentifier(n.Name))
		for i, a := range n.Args {
			if i == 0 {
				sb.WriteString(" YR ")
			} else {
				sb.WriteString(" AN YR ")
			}
			sb.WriteString(printExpression(a))
		}
		sb.WriteString(" MKAY")
		return sb.String()
	case *OperatorExpression:
		return printOperator(n)
	case *ImplicitExpression:
		return "IT"
	default:
		return ""
	}
}

func printConstant(c *Constant) string {
	switch c.Kind {
	case IntegerConstant:
		return strconv.FormatInt(c.IntValue, 10)
	case FloatConstant:
		return strconv.FormatFloat(float64(c.FloatValue), 'f', -1, 32)
	case BooleanConstant:
		if c.BoolValue {
			return "WIN"
		}
		return "FAIL"
	case StringConstant:
		return strconv.Quote(c.StringValue)
	case NilConstant:
		return "NOOB"
	case ArrayConstant:
		return "BUKKIT"
	default:
		return ""
	}
}

func printOperator(n *OperatorExpression) string {
	var sb strings.Builder
	sb.WriteString(n.Op.String())
	switch n.Op.Arity() {
	case UnaryArity:
		sb.WriteString(" ")
		sb.WriteString(printExpression(n.Operands[0]))
	case BinaryArity:
		sb.WriteString(" ")
		sb.WriteString(printExpression(n.Operands[0]))
		sb.WriteString(" AN ")
		sb.WriteString(printExpression(n.Operands[1]))
	case NAryArity:
		for i, op := range n.Operands {
			if i == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(" AN ")
			}
			sb.WriteString(printExpression(op))
		}
		sb.WriteString(" MKAY")
	}
	return sb.String()
}
