package hoist

import "github.com/optctl/optctl/ast"

func isNameExpr(e ast.ExprNode) bool {
	_, ok := e.(*ast.Name)
	return ok
}

func targetsMention(targets []ast.TargetExpr, name string) bool {
	for _, t := range targets {
		if targetMentions(t, name) {
			return true
		}
	}
	return false
}

func targetMentions(t ast.TargetExpr, name string) bool {
	switch tt := t.(type) {
	case *ast.Name:
		return tt.ID == name
	case *ast.Subscript:
		if tt.Value.ID == name {
			return true
		}
		return ast.FreeVars(tt.Slice).Has(name)
	}
	return false
}

func anyTargetIn(targets []ast.TargetExpr, set ast.VarSet) bool {
	for _, t := range targets {
		if set.Has(ast.TargetName(t)) {
			return true
		}
	}
	return false
}

func disjoint(a, b ast.VarSet) bool {
	for name := range a {
		if b.Has(name) {
			return false
		}
	}
	return true
}

func intersects(a, b ast.VarSet) bool {
	return !disjoint(a, b)
}
