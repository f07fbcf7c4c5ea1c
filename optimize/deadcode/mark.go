// Package deadcode implements the dead-statement elimination pass of §4.3:
// a backward mark-and-sweep walker plus the three structural post-passes
// (unreachable-after-pass pruning, empty-loop removal, conditional
// normalisation).
package deadcode

import (
	"github.com/optctl/optctl/ast"
	"github.com/optctl/optctl/optimize/transform"
	"github.com/optctl/optctl/purity"
)

// direction controls whether markBlock visits a block's statements from
// first to last or last to first before sweeping it.
type direction int

const (
	forward direction = iota
	backward
)

// markBlock marks block's statements in each direction listed (applied in
// order, without sweeping in between — see While, which marks forward then
// backward against the same live-set), then sweeps the block exactly once
// against the resulting live-set, per §4.3's "after recursing into any
// statement or block" contract.
func markBlock(block ast.Block, live ast.VarSet, dirs ...direction) ast.Block {
	for _, dir := range dirs {
		if dir == forward {
			for _, stmt := range block {
				markStmt(stmt, live)
			}
		} else {
			for i := len(block) - 1; i >= 0; i-- {
				markStmt(block[i], live)
			}
		}
	}
	return transform.Sweep(block, transform.ModeByLiveness, live)
}

func markStmt(stmt ast.StmtNode, live ast.VarSet) {
	switch s := stmt.(type) {
	case *ast.Assign:
		markAssign(s, live)
	case *ast.AugAssign:
		markAugAssign(s, live)
	case *ast.ExprStmt:
		markExprStmt(s, live)
	case *ast.Return:
		if s.Value != nil {
			markFreeVars(s.Value, live)
		}
	case *ast.If:
		markIf(s, live)
	case *ast.For:
		markFor(s, live)
	case *ast.While:
		markWhile(s, live)
	case *ast.FunctionDef:
		markFunctionDef(s, live)
	case *ast.Try:
		markTry(s, live)
	case *ast.Pass:
		// no-op
	default:
		// unrecognised/unsupported construct: leave it untouched, per the
		// "never delete what is not understood" policy in §7.
	}
}

// markAssign implements the Assign rule of §4.3.
func markAssign(s *ast.Assign, live ast.VarSet) {
	if ast.ContainsNamedExpr(s.Value) && anyFreeVarLive(s.Value, live) {
		for _, t := range s.Targets {
			live.Add(ast.TargetName(t))
		}
		markFreeVars(s.Value, live)
		return
	}
	if call, ok := s.Value.(*ast.Call); ok && call.IsDotted() {
		// Conservatively treat a method/attribute call as impure: the
		// target becomes live regardless of whether it was needed later.
		for _, t := range s.Targets {
			live.Add(ast.TargetName(t))
		}
		markFreeVars(s.Value, live)
		return
	}
	anyTargetLive := false
	for _, t := range s.Targets {
		if live.Has(ast.TargetName(t)) {
			anyTargetLive = true
			break
		}
	}
	if anyTargetLive {
		markFreeVars(s.Value, live)
	}
}

// markAugAssign implements the AugAssign rule of §4.3.
func markAugAssign(s *ast.AugAssign, live ast.VarSet) {
	if live.Has(ast.TargetName(s.Target)) {
		markFreeVars(s.Value, live)
	}
}

// markExprStmt implements the three Expr(...) rules plus the bare-Call
// statement rule of §4.3.
func markExprStmt(s *ast.ExprStmt, live ast.VarSet) {
	switch v := s.Value.(type) {
	case *ast.Call:
		if !purity.IsPureCall(v) {
			live.Add(v.CalleeName())
			for _, a := range v.Args {
				markFreeVars(a, live)
			}
		}
	case *ast.NamedExpr:
		if live.Has(v.Target.ID) {
			markFreeVars(v.Value, live)
		}
	case *ast.ListComp:
		if listCompIsLive(v, live) {
			markFreeVars(v.Elt, live)
		}
	}
}

func listCompIsLive(lc *ast.ListComp, live ast.VarSet) bool {
	if call, ok := lc.Elt.(*ast.Call); ok {
		return !purity.IsPureCall(call) || live.Has(call.CalleeName())
	}
	for name := range ast.FreeVars(lc.Elt) {
		if live.Has(name) {
			return true
		}
	}
	return false
}

// markIf implements the If rule of §4.3.
func markIf(s *ast.If, live ast.VarSet) {
	s.Body = markBlock(s.Body, live, backward)
	s.Orelse = markBlock(s.Orelse, live, backward)
	if len(s.Body) > 0 || len(s.Orelse) > 0 {
		markFreeVars(s.Test, live)
	}
}

// markFor implements the For rule of §4.3. The iterator expression is
// marked live like While's test — the bullet list doesn't call this out
// explicitly, but omitting it would let the elimination pass delete the
// statements that produce the iterable.
func markFor(s *ast.For, live ast.VarSet) {
	markFreeVars(s.Iter, live)
	s.Body = markBlock(s.Body, live, forward)
}

// markWhile implements the While rule of §4.3: the test's variables become
// live, then the body is marked both forwards and backwards against the
// same live-set before a single final sweep.
func markWhile(s *ast.While, live ast.VarSet) {
	markFreeVars(s.Test, live)
	s.Body = markBlock(s.Body, live, forward, backward)
}

// markFunctionDef implements the FunctionDef rule of §4.3. Parameters seed
// a fresh live-set for the function's own body; any name the body still
// references that isn't one of its own parameters is conservatively folded
// back into the enclosing live-set, per the scoping design note in §9.
func markFunctionDef(s *ast.FunctionDef, outerLive ast.VarSet) {
	inner := ast.NewVarSet()
	for _, p := range s.Args {
		inner.Add(p)
	}
	s.Body = markBlock(s.Body, inner, backward)
	isParam := make(map[string]bool, len(s.Args))
	for _, p := range s.Args {
		isParam[p] = true
	}
	for name := range inner {
		if !isParam[name] {
			outerLive.Add(name)
		}
	}
}

// markTry has no explicit rule in §4.3; Try is processed conservatively by
// marking each sub-block in the reverse of its execution order (finally,
// else, handlers, body), threading one shared live-set through all of
// them — see DESIGN.md's open-question resolution.
func markTry(s *ast.Try, live ast.VarSet) {
	s.Finalbody = markBlock(s.Finalbody, live, backward)
	s.Orelse = markBlock(s.Orelse, live, backward)
	for _, h := range s.Handlers {
		h.Body = markBlock(h.Body, live, backward)
	}
	s.Body = markBlock(s.Body, live, backward)
}

func anyFreeVarLive(e ast.ExprNode, live ast.VarSet) bool {
	for name := range ast.FreeVars(e) {
		if live.Has(name) {
			return true
		}
	}
	return false
}

// markFreeVars is the generic expression-recursion used while marking: it
// matches ast.CollectFreeVars except for ListComp, where §4.3 restricts
// recursion to the element expression only (the generators are not
// traversed during marking, unlike general free-variable collection).
func markFreeVars(e ast.ExprNode, live ast.VarSet) {
	switch expr := e.(type) {
	case nil:
		return
	case *ast.Name:
		live.Add(expr.ID)
	case *ast.Constant:
		// no variables
	case *ast.BinOp:
		markFreeVars(expr.Left, live)
		markFreeVars(expr.Right, live)
	case *ast.UnaryOp:
		markFreeVars(expr.Operand, live)
	case *ast.Compare:
		markFreeVars(expr.Left, live)
		for _, c := range expr.Comparators {
			markFreeVars(c, live)
		}
	case *ast.Call:
		if expr.IsDotted() {
			live.Add(expr.DottedValue)
		} else {
			live.Add(expr.Func)
		}
		for _, a := range expr.Args {
			markFreeVars(a, live)
		}
	case *ast.Subscript:
		live.Add(expr.Value.ID)
		markFreeVars(expr.Slice, live)
	case *ast.NamedExpr:
		live.Add(expr.Target.ID)
		markFreeVars(expr.Value, live)
	case *ast.ListComp:
		markFreeVars(expr.Elt, live)
	}
}
