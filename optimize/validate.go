package optimize

import (
	"fmt"

	"github.com/optctl/optctl/ast"
)

// malformedError reports the §7 "malformed AST" failure: a Call whose
// callee is not a bare name (i.e. neither Func nor the DottedValue/
// DottedFunc pair is set). The driver fails fast rather than silently
// treating it as an unsupported construct, since a Call is otherwise
// expected to always carry one shape or the other.
type malformedError struct {
	location ast.SourceLocation
	reason   string
}

func (e *malformedError) Error() string {
	return fmt.Sprintf("%s:%d: malformed AST: %s", e.location.File, e.location.Line, e.reason)
}

// validate walks module looking for Call nodes that are neither a plain
// call nor a dotted call, aborting the whole invocation per §7's "a pass
// either completes or aborts" policy.
func validate(module *ast.Module) error {
	var err error
	visitExprs(module.Body, func(e ast.ExprNode) {
		if err != nil {
			return
		}
		call, ok := e.(*ast.Call)
		if !ok {
			return
		}
		if call.Func == "" && call.DottedFunc == "" {
			err = &malformedError{location: call.Location, reason: "Call has neither a bare callee nor a dotted callee"}
		}
	})
	return err
}

func visitExprs(block ast.Block, visit func(ast.ExprNode)) {
	for _, stmt := range block {
		visitStmtExprs(stmt, visit)
	}
}

func visitStmtExprs(stmt ast.StmtNode, visit func(ast.ExprNode)) {
	switch s := stmt.(type) {
	case *ast.Assign:
		for _, t := range s.Targets {
			visitExprTree(t, visit)
		}
		visitExprTree(s.Value, visit)
	case *ast.AugAssign:
		visitExprTree(s.Target, visit)
		visitExprTree(s.Value, visit)
	case *ast.ExprStmt:
		visitExprTree(s.Value, visit)
	case *ast.If:
		visitExprTree(s.Test, visit)
		visitExprs(s.Body, visit)
		visitExprs(s.Orelse, visit)
	case *ast.For:
		visitExprTree(s.Iter, visit)
		visitExprs(s.Body, visit)
		visitExprs(s.Orelse, visit)
	case *ast.While:
		visitExprTree(s.Test, visit)
		visitExprs(s.Body, visit)
		visitExprs(s.Orelse, visit)
	case *ast.Return:
		visitExprTree(s.Value, visit)
	case *ast.FunctionDef:
		visitExprs(s.Body, visit)
	case *ast.Try:
		visitExprs(s.Body, visit)
		for _, h := range s.Handlers {
			visitExprs(h.Body, visit)
		}
		visitExprs(s.Orelse, visit)
		visitExprs(s.Finalbody, visit)
	}
}

func visitExprTree(e ast.ExprNode, visit func(ast.ExprNode)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *ast.BinOp:
		visitExprTree(n.Left, visit)
		visitExprTree(n.Right, visit)
	case *ast.UnaryOp:
		visitExprTree(n.Operand, visit)
	case *ast.Compare:
		visitExprTree(n.Left, visit)
		for _, c := range n.Comparators {
			visitExprTree(c, visit)
		}
	case *ast.Call:
		for _, a := range n.Args {
			visitExprTree(a, visit)
		}
	case *ast.Subscript:
		visitExprTree(n.Slice, visit)
	case *ast.NamedExpr:
		visitExprTree(n.Value, visit)
	case *ast.ListComp:
		visitExprTree(n.Elt, visit)
		for _, gen := range n.Generators {
			visitExprTree(gen.Iter, visit)
			for _, cond := range gen.Ifs {
				visitExprTree(cond, visit)
			}
		}
	}
}
