package deadcode

import "github.com/optctl/optctl/ast"

// pruneUnreachableAfterPass implements the unreachable-after-pass
// post-pass: within any block that contains a Pass, delete every statement
// strictly after the first one.
func pruneUnreachableAfterPass(m *ast.Module) {
	visitBlocksBFS(m, func(b blockRef) {
		for i, stmt := range *b {
			if _, ok := stmt.(*ast.Pass); ok {
				*b = (*b)[:i+1]
				return
			}
		}
	})
}

// removeEmptyLoops implements empty-loop elimination: any For whose body
// is empty is removed from its enclosing block. While with an empty body
// is deliberately left alone — see the asymmetry noted in §9.
func removeEmptyLoops(m *ast.Module) {
	visitBlocksBFS(m, func(b blockRef) {
		out := make(ast.Block, 0, len(*b))
		for _, stmt := range *b {
			if forStmt, ok := stmt.(*ast.For); ok && len(forStmt.Body) == 0 {
				continue
			}
			out = append(out, stmt)
		}
		*b = out
	})
}

// normalizeConditionals implements conditional normalisation: an If whose
// body is empty and orelse is not gets its test negated and its orelse
// promoted into body. It also backfills the invariant that FunctionDef and
// Try bodies are never empty.
func normalizeConditionals(m *ast.Module) {
	for _, stmt := range m.Body {
		normalizeStmt(stmt)
	}
}

func normalizeStmt(stmt ast.StmtNode) {
	switch s := stmt.(type) {
	case *ast.If:
		normalizeBlock(s.Body)
		normalizeBlock(s.Orelse)
		if len(s.Body) == 0 && len(s.Orelse) != 0 {
			s.Test = ast.NewUnaryOp("not", s.Test, s.Test.GetLocation())
			s.Body = s.Orelse
			s.Orelse = nil
		}
	case *ast.For:
		normalizeBlock(s.Body)
		normalizeBlock(s.Orelse)
	case *ast.While:
		normalizeBlock(s.Body)
		normalizeBlock(s.Orelse)
	case *ast.FunctionDef:
		normalizeBlock(s.Body)
		if len(s.Body) == 0 {
			s.Body = ast.Block{ast.NewPass(s.Location)}
		}
	case *ast.Try:
		normalizeBlock(s.Body)
		normalizeBlock(s.Orelse)
		normalizeBlock(s.Finalbody)
		for _, h := range s.Handlers {
			normalizeBlock(h.Body)
		}
		if len(s.Body) == 0 {
			s.Body = ast.Block{ast.NewPass(s.Location)}
			for _, h := range s.Handlers {
				h.Body = ast.Block{ast.NewPass(s.Location)}
			}
		}
	}
}

func normalizeBlock(block ast.Block) {
	for _, stmt := range block {
		normalizeStmt(stmt)
	}
}
