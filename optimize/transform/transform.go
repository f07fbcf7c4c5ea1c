// Package transform implements the single-pass node transformer of §4.2:
// the "sweep" half of dead-statement mark-and-sweep. It returns the block
// that results from a mode and a live-set, without recursing into
// expressions to edit them — that work belongs to the mark phase in
// package deadcode.
package transform

import (
	"github.com/optctl/optctl/ast"
	"github.com/optctl/optctl/purity"
)

// Mode selects how Sweep treats each statement in a block. The structural
// post-passes in package deadcode do not call Sweep; they edit their blocks
// directly.
type Mode int

const (
	// ModeNone returns the block unchanged.
	ModeNone Mode = iota
	// ModeByLiveness drops statements whose effect is unobservable given
	// the live-set, per the rules below.
	ModeByLiveness
	// ModeDropAll deletes every statement in the block.
	ModeDropAll
)

// Sweep rewrites block according to mode and returns the resulting block.
// It never mutates the statements themselves, only which ones survive.
func Sweep(block ast.Block, mode Mode, live ast.VarSet) ast.Block {
	switch mode {
	case ModeNone:
		return block
	case ModeDropAll:
		return nil
	case ModeByLiveness:
		return sweepByLiveness(block, live)
	default:
		return block
	}
}

func sweepByLiveness(block ast.Block, live ast.VarSet) ast.Block {
	out := make(ast.Block, 0, len(block))
	for _, stmt := range block {
		if keepStatement(stmt, live) {
			out = append(out, stmt)
		}
	}
	return out
}

// keepStatement applies the BY-LIVENESS rule for a single statement.
func keepStatement(stmt ast.StmtNode, live ast.VarSet) bool {
	switch s := stmt.(type) {
	case *ast.Assign:
		for _, t := range s.Targets {
			if live.Has(ast.TargetName(t)) {
				return true
			}
		}
		return false
	case *ast.AugAssign:
		return live.Has(ast.TargetName(s.Target))
	case *ast.ExprStmt:
		return keepExprStmt(s.Value, live)
	case *ast.Pass:
		return true
	default:
		// Structural statements (If, For, While, Try, FunctionDef,
		// Return, Module, nested blocks) are left to their own recursion;
		// the sweep transformer only prunes standalone effect statements.
		return true
	}
}

func keepExprStmt(value ast.ExprNode, live ast.VarSet) bool {
	switch v := value.(type) {
	case *ast.Call:
		if !purity.IsPureCall(v) {
			return true
		}
		for _, arg := range v.Args {
			if name, ok := arg.(*ast.Name); ok && live.Has(name.ID) {
				return true
			}
		}
		return false
	case *ast.NamedExpr:
		return live.Has(v.Target.ID)
	case *ast.ListComp:
		return keepListComp(v, live)
	default:
		return false
	}
}

func keepListComp(lc *ast.ListComp, live ast.VarSet) bool {
	if call, ok := lc.Elt.(*ast.Call); ok {
		callee := call.CalleeName()
		return !purity.IsPureCall(call) || live.Has(callee)
	}
	free := ast.FreeVars(lc.Elt)
	for name := range free {
		if live.Has(name) {
			return true
		}
	}
	return false
}
