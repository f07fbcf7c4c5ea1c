package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a Module back to source text using 4-space indentation.
// It is deliberately simple: it exists to drive the fixed-point compare in
// the optimize package and to emit the CLI's `_optimized` sibling file, not
// to preserve the original program's formatting.
func Print(m *Module) string {
	var b strings.Builder
	printBlock(&b, m.Body, 0)
	return b.String()
}

// Normalize strips blank lines and leading/trailing whitespace per line, so
// that two trees differing only in incidental whitespace compare equal.
// The fixed-point driver's termination guarantee depends on this: see the
// design note in §9.
func Normalize(source string) string {
	lines := strings.Split(source, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

func indent(n int) string { return strings.Repeat("    ", n) }

func printBlock(b *strings.Builder, block Block, depth int) {
	if len(block) == 0 {
		b.WriteString(indent(depth))
		b.WriteString("pass\n")
		return
	}
	for _, stmt := range block {
		printStmt(b, stmt, depth)
	}
}

func printStmt(b *strings.Builder, s StmtNode, depth int) {
	pad := indent(depth)
	switch n := s.(type) {
	case *Module:
		printBlock(b, n.Body, depth)
	case *Pass:
		b.WriteString(pad)
		b.WriteString("pass\n")
	case *Assign:
		b.WriteString(pad)
		parts := make([]string, len(n.Targets))
		for i, t := range n.Targets {
			parts[i] = printExpr(t)
		}
		parts = append(parts, printExpr(n.Value))
		b.WriteString(strings.Join(parts, " = "))
		b.WriteString("\n")
	case *AugAssign:
		fmt.Fprintf(b, "%s%s %s= %s\n", pad, printExpr(n.Target), n.Op, printExpr(n.Value))
	case *ExprStmt:
		b.WriteString(pad)
		b.WriteString(printExpr(n.Value))
		b.WriteString("\n")
	case *If:
		fmt.Fprintf(b, "%sif %s:\n", pad, printExpr(n.Test))
		printBlock(b, n.Body, depth+1)
		if len(n.Orelse) > 0 {
			fmt.Fprintf(b, "%selse:\n", pad)
			printBlock(b, n.Orelse, depth+1)
		}
	case *For:
		fmt.Fprintf(b, "%sfor %s in %s:\n", pad, printExpr(n.Target), printExpr(n.Iter))
		printBlock(b, n.Body, depth+1)
		if len(n.Orelse) > 0 {
			fmt.Fprintf(b, "%selse:\n", pad)
			printBlock(b, n.Orelse, depth+1)
		}
	case *While:
		fmt.Fprintf(b, "%swhile %s:\n", pad, printExpr(n.Test))
		printBlock(b, n.Body, depth+1)
		if len(n.Orelse) > 0 {
			fmt.Fprintf(b, "%selse:\n", pad)
			printBlock(b, n.Orelse, depth+1)
		}
	case *Return:
		if n.Value == nil {
			fmt.Fprintf(b, "%sreturn\n", pad)
		} else {
			fmt.Fprintf(b, "%sreturn %s\n", pad, printExpr(n.Value))
		}
	case *FunctionDef:
		fmt.Fprintf(b, "%sdef %s(%s):\n", pad, n.Name, strings.Join(n.Args, ", "))
		printBlock(b, n.Body, depth+1)
	case *Try:
		fmt.Fprintf(b, "%stry:\n", pad)
		printBlock(b, n.Body, depth+1)
		for _, h := range n.Handlers {
			fmt.Fprintf(b, "%sexcept %s:\n", pad, h.ExceptionType)
			printBlock(b, h.Body, depth+1)
		}
		if len(n.Orelse) > 0 {
			fmt.Fprintf(b, "%selse:\n", pad)
			printBlock(b, n.Orelse, depth+1)
		}
		if len(n.Finalbody) > 0 {
			fmt.Fprintf(b, "%sfinally:\n", pad)
			printBlock(b, n.Finalbody, depth+1)
		}
	default:
		b.WriteString(pad)
		b.WriteString("<unknown-stmt>\n")
	}
}

func printExpr(e ExprNode) string {
	switch n := e.(type) {
	case nil:
		return ""
	case *Name:
		return n.ID
	case *Constant:
		return printLiteral(n.Value)
	case *BinOp:
		return fmt.Sprintf("%s %s %s", printExpr(n.Left), n.Op, printExpr(n.Right))
	case *UnaryOp:
		if n.Op == "not" {
			return fmt.Sprintf("not %s", printExpr(n.Operand))
		}
		return fmt.Sprintf("%s%s", n.Op, printExpr(n.Operand))
	case *Compare:
		var b strings.Builder
		b.WriteString(printExpr(n.Left))
		for i, op := range n.Ops {
			fmt.Fprintf(&b, " %s %s", op, printExpr(n.Comparators[i]))
		}
		return b.String()
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = printExpr(a)
		}
		if n.IsDotted() {
			return fmt.Sprintf("%s.%s(%s)", n.DottedValue, n.DottedFunc, strings.Join(args, ", "))
		}
		return fmt.Sprintf("%s(%s)", n.Func, strings.Join(args, ", "))
	case *Subscript:
		return fmt.Sprintf("%s[%s]", n.Value.ID, printExpr(n.Slice))
	case *NamedExpr:
		return fmt.Sprintf("(%s := %s)", n.Target.ID, printExpr(n.Value))
	case *ListComp:
		var b strings.Builder
		b.WriteString("[")
		b.WriteString(printExpr(n.Elt))
		for _, gen := range n.Generators {
			fmt.Fprintf(&b, " for %s in %s", gen.Target.ID, printExpr(gen.Iter))
			for _, cond := range gen.Ifs {
				fmt.Fprintf(&b, " if %s", printExpr(cond))
			}
		}
		b.WriteString("]")
		return b.String()
	default:
		return "<unknown-expr>"
	}
}

func printLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return strconv.Quote(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
