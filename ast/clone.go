package ast

// CloneModule deep-copies a Module so callers of the fixed-point driver can
// keep their input untouched; see the resource-ownership note in §5 — the
// driver clones internally only for its own before/after diff, but any
// caller that wants to retain the pre-optimization tree must clone first.
func CloneModule(m *Module) *Module {
	if m == nil {
		return nil
	}
	return &Module{Body: cloneBlock(m.Body), Location: m.Location}
}

func cloneBlock(b Block) Block {
	if b == nil {
		return nil
	}
	out := make(Block, len(b))
	for i, s := range b {
		out[i] = CloneStmt(s)
	}
	return out
}

func cloneHandlers(hs []*ExceptHandler) []*ExceptHandler {
	if hs == nil {
		return nil
	}
	out := make([]*ExceptHandler, len(hs))
	for i, h := range hs {
		out[i] = &ExceptHandler{ExceptionType: h.ExceptionType, Body: cloneBlock(h.Body)}
	}
	return out
}

// CloneStmt deep-copies a single statement node and everything beneath it.
func CloneStmt(s StmtNode) StmtNode {
	switch n := s.(type) {
	case *Module:
		return &Module{Body: cloneBlock(n.Body), Location: n.Location}
	case *Assign:
		targets := make([]TargetExpr, len(n.Targets))
		for i, t := range n.Targets {
			targets[i] = CloneExpr(t).(TargetExpr)
		}
		return &Assign{Targets: targets, Value: CloneExpr(n.Value), Location: n.Location}
	case *AugAssign:
		return &AugAssign{
			Target:   CloneExpr(n.Target).(TargetExpr),
			Op:       n.Op,
			Value:    CloneExpr(n.Value),
			Location: n.Location,
		}
	case *ExprStmt:
		return &ExprStmt{Value: CloneExpr(n.Value), Location: n.Location}
	case *If:
		return &If{
			Test:     CloneExpr(n.Test),
			Body:     cloneBlock(n.Body),
			Orelse:   cloneBlock(n.Orelse),
			Location: n.Location,
		}
	case *For:
		var target *Name
		if n.Target != nil {
			target = CloneExpr(n.Target).(*Name)
		}
		return &For{
			Target:   target,
			Iter:     CloneExpr(n.Iter),
			Body:     cloneBlock(n.Body),
			Orelse:   cloneBlock(n.Orelse),
			Location: n.Location,
		}
	case *While:
		return &While{
			Test:     CloneExpr(n.Test),
			Body:     cloneBlock(n.Body),
			Orelse:   cloneBlock(n.Orelse),
			Location: n.Location,
		}
	case *Return:
		return &Return{Value: CloneExpr(n.Value), Location: n.Location}
	case *FunctionDef:
		args := append([]string(nil), n.Args...)
		return &FunctionDef{Name: n.Name, Args: args, Body: cloneBlock(n.Body), Location: n.Location}
	case *Try:
		return &Try{
			Body:      cloneBlock(n.Body),
			Handlers:  cloneHandlers(n.Handlers),
			Orelse:    cloneBlock(n.Orelse),
			Finalbody: cloneBlock(n.Finalbody),
			Location:  n.Location,
		}
	case *Pass:
		return &Pass{Location: n.Location}
	default:
		return nil
	}
}

// CloneExpr deep-copies a single expression node and everything beneath it.
func CloneExpr(e ExprNode) ExprNode {
	switch n := e.(type) {
	case nil:
		return nil
	case *Name:
		return &Name{ID: n.ID, Location: n.Location}
	case *Constant:
		return &Constant{Value: n.Value, Location: n.Location}
	case *BinOp:
		return &BinOp{Left: CloneExpr(n.Left), Op: n.Op, Right: CloneExpr(n.Right), Location: n.Location}
	case *UnaryOp:
		return &UnaryOp{Op: n.Op, Operand: CloneExpr(n.Operand), Location: n.Location}
	case *Compare:
		comparators := make([]ExprNode, len(n.Comparators))
		for i, c := range n.Comparators {
			comparators[i] = CloneExpr(c)
		}
		return &Compare{
			Left:        CloneExpr(n.Left),
			Ops:         append([]string(nil), n.Ops...),
			Comparators: comparators,
			Location:    n.Location,
		}
	case *Call:
		args := make([]ExprNode, len(n.Args))
		for i, a := range n.Args {
			args[i] = CloneExpr(a)
		}
		return &Call{
			Func:        n.Func,
			DottedValue: n.DottedValue,
			DottedFunc:  n.DottedFunc,
			Args:        args,
			Location:    n.Location,
		}
	case *Subscript:
		return &Subscript{Value: CloneExpr(n.Value).(*Name), Slice: CloneExpr(n.Slice), Location: n.Location}
	case *NamedExpr:
		return &NamedExpr{Target: CloneExpr(n.Target).(*Name), Value: CloneExpr(n.Value), Location: n.Location}
	case *ListComp:
		gens := make([]*Comprehension, len(n.Generators))
		for i, g := range n.Generators {
			ifs := make([]ExprNode, len(g.Ifs))
			for j, c := range g.Ifs {
				ifs[j] = CloneExpr(c)
			}
			gens[i] = &Comprehension{Target: CloneExpr(g.Target).(*Name), Iter: CloneExpr(g.Iter), Ifs: ifs}
		}
		return &ListComp{Elt: CloneExpr(n.Elt), Generators: gens, Location: n.Location}
	default:
		return nil
	}
}
