package ast

// VarSet is the live-set / free-variable-set representation threaded
// through the optimizer passes. It is always an explicit value owned by the
// caller; see the "no process-wide storage" design note.
type VarSet map[string]struct{}

func NewVarSet() VarSet { return make(VarSet) }

func (s VarSet) Add(name string) {
	if name != "" {
		s[name] = struct{}{}
	}
}

func (s VarSet) AddAll(other VarSet) {
	for name := range other {
		s.Add(name)
	}
}

func (s VarSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s VarSet) Clone() VarSet {
	out := make(VarSet, len(s))
	out.AddAll(s)
	return out
}

// FreeVars collects every Name referenced anywhere inside expr, including
// names that are themselves assignment targets of a nested NamedExpr (the
// walrus form both reads its value and contributes its own target name,
// matching the way Assign treats a NamedExpr-bearing value in §4.3).
func FreeVars(expr ExprNode) VarSet {
	set := NewVarSet()
	CollectFreeVars(expr, set)
	return set
}

// CollectFreeVars walks expr and adds every referenced variable name into set.
func CollectFreeVars(expr ExprNode, set VarSet) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *Name:
		set.Add(e.ID)
	case *Constant:
		// no variables
	case *BinOp:
		CollectFreeVars(e.Left, set)
		CollectFreeVars(e.Right, set)
	case *UnaryOp:
		CollectFreeVars(e.Operand, set)
	case *Compare:
		CollectFreeVars(e.Left, set)
		for _, c := range e.Comparators {
			CollectFreeVars(c, set)
		}
	case *Call:
		if e.IsDotted() {
			set.Add(e.DottedValue)
		} else {
			set.Add(e.Func)
		}
		for _, a := range e.Args {
			CollectFreeVars(a, set)
		}
	case *Subscript:
		set.Add(e.Value.ID)
		CollectFreeVars(e.Slice, set)
	case *NamedExpr:
		set.Add(e.Target.ID)
		CollectFreeVars(e.Value, set)
	case *ListComp:
		CollectFreeVars(e.Elt, set)
		for _, gen := range e.Generators {
			CollectFreeVars(gen.Iter, set)
			for _, cond := range gen.Ifs {
				CollectFreeVars(cond, set)
			}
		}
	}
}

// ContainsNamedExpr reports whether expr contains a NamedExpr anywhere in
// its subtree — used by the elimination pass's Assign rule (§4.3).
func ContainsNamedExpr(expr ExprNode) bool {
	found := false
	var walk func(ExprNode)
	walk = func(e ExprNode) {
		if found || e == nil {
			return
		}
		switch ee := e.(type) {
		case *NamedExpr:
			found = true
		case *BinOp:
			walk(ee.Left)
			walk(ee.Right)
		case *UnaryOp:
			walk(ee.Operand)
		case *Compare:
			walk(ee.Left)
			for _, c := range ee.Comparators {
				walk(c)
			}
		case *Call:
			for _, a := range ee.Args {
				walk(a)
			}
		case *Subscript:
			walk(ee.Slice)
		case *ListComp:
			walk(ee.Elt)
			for _, gen := range ee.Generators {
				walk(gen.Iter)
				for _, cond := range gen.Ifs {
					walk(cond)
				}
			}
		}
	}
	walk(expr)
	return found
}

// IsDottedCall reports whether expr is a Call with a value.attribute(...)
// shape, the "method/attribute call" detection used by §4.3's Assign rule.
func IsDottedCall(expr ExprNode) (*Call, bool) {
	call, ok := expr.(*Call)
	if !ok || !call.IsDotted() {
		return nil, false
	}
	return call, true
}
