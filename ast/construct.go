package ast

// Constructor helpers. Mirrors the teacher's New* convention: every variant
// gets a plain constructor taking its fields plus a location.

func NewModule(body Block, loc SourceLocation) *Module {
	return &Module{Body: body, Location: loc}
}

func NewAssign(targets []TargetExpr, value ExprNode, loc SourceLocation) *Assign {
	return &Assign{Targets: targets, Value: value, Location: loc}
}

func NewAugAssign(target TargetExpr, op string, value ExprNode, loc SourceLocation) *AugAssign {
	return &AugAssign{Target: target, Op: op, Value: value, Location: loc}
}

func NewExprStmt(value ExprNode, loc SourceLocation) *ExprStmt {
	return &ExprStmt{Value: value, Location: loc}
}

func NewIf(test ExprNode, body, orelse Block, loc SourceLocation) *If {
	return &If{Test: test, Body: body, Orelse: orelse, Location: loc}
}

func NewFor(target *Name, iter ExprNode, body, orelse Block, loc SourceLocation) *For {
	return &For{Target: target, Iter: iter, Body: body, Orelse: orelse, Location: loc}
}

func NewWhile(test ExprNode, body, orelse Block, loc SourceLocation) *While {
	return &While{Test: test, Body: body, Orelse: orelse, Location: loc}
}

func NewReturn(value ExprNode, loc SourceLocation) *Return {
	return &Return{Value: value, Location: loc}
}

func NewFunctionDef(name string, args []string, body Block, loc SourceLocation) *FunctionDef {
	return &FunctionDef{Name: name, Args: args, Body: body, Location: loc}
}

func NewTry(body Block, handlers []*ExceptHandler, orelse, finalbody Block, loc SourceLocation) *Try {
	return &Try{Body: body, Handlers: handlers, Orelse: orelse, Finalbody: finalbody, Location: loc}
}

func NewPass(loc SourceLocation) *Pass {
	return &Pass{Location: loc}
}

func NewName(id string, loc SourceLocation) *Name {
	return &Name{ID: id, Location: loc}
}

func NewConstant(value interface{}, loc SourceLocation) *Constant {
	return &Constant{Value: value, Location: loc}
}

func NewBinOp(left ExprNode, op string, right ExprNode, loc SourceLocation) *BinOp {
	return &BinOp{Left: left, Op: op, Right: right, Location: loc}
}

func NewUnaryOp(op string, operand ExprNode, loc SourceLocation) *UnaryOp {
	return &UnaryOp{Op: op, Operand: operand, Location: loc}
}

func NewCompare(left ExprNode, ops []string, comparators []ExprNode, loc SourceLocation) *Compare {
	return &Compare{Left: left, Ops: ops, Comparators: comparators, Location: loc}
}

// NewCall builds a plain call, e.g. range(10).
func NewCall(fn string, args []ExprNode, loc SourceLocation) *Call {
	return &Call{Func: fn, Args: args, Location: loc}
}

// NewDottedCall builds a value.attribute(...) call, e.g. m.append(x).
func NewDottedCall(value, fn string, args []ExprNode, loc SourceLocation) *Call {
	return &Call{DottedValue: value, DottedFunc: fn, Args: args, Location: loc}
}

func NewSubscript(value *Name, slice ExprNode, loc SourceLocation) *Subscript {
	return &Subscript{Value: value, Slice: slice, Location: loc}
}

func NewNamedExpr(target *Name, value ExprNode, loc SourceLocation) *NamedExpr {
	return &NamedExpr{Target: target, Value: value, Location: loc}
}

func NewListComp(elt ExprNode, generators []*Comprehension, loc SourceLocation) *ListComp {
	return &ListComp{Elt: elt, Generators: generators, Location: loc}
}

// TargetName returns the variable name a target-expr ultimately assigns:
// Name.ID for a bare name, Subscript.Value.ID for a subscript target.
func TargetName(t TargetExpr) string {
	switch tt := t.(type) {
	case *Name:
		return tt.ID
	case *Subscript:
		return tt.Value.ID
	default:
		return ""
	}
}
