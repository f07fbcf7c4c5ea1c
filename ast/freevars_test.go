package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeVars_BinOpUnionsBothSides(t *testing.T) {
	expr := NewBinOp(NewName("x", loc(1)), "+", NewName("y", loc(1)), loc(1))
	set := FreeVars(expr)
	assert.True(t, set.Has("x"))
	assert.True(t, set.Has("y"))
	assert.Len(t, set, 2)
}

func TestFreeVars_CallAddsCalleeName(t *testing.T) {
	plain := NewCall("len", []ExprNode{NewName("a", loc(1))}, loc(1))
	set := FreeVars(plain)
	assert.True(t, set.Has("len"))
	assert.True(t, set.Has("a"))

	dotted := NewDottedCall("m", "append", []ExprNode{NewName("x", loc(1))}, loc(1))
	set = FreeVars(dotted)
	assert.True(t, set.Has("m"))
	assert.True(t, set.Has("x"))
	assert.False(t, set.Has("append"), "the attribute name itself is not a variable reference")
}

func TestFreeVars_NamedExprAddsTargetAndValue(t *testing.T) {
	ne := NewNamedExpr(NewName("y", loc(1)), NewBinOp(NewName("x", loc(1)), "+", NewConstant(int64(1), loc(1)), loc(1)), loc(1))
	set := FreeVars(ne)
	assert.True(t, set.Has("y"))
	assert.True(t, set.Has("x"))
}

func TestFreeVars_ListCompWalksGeneratorsAndFilters(t *testing.T) {
	lc := NewListComp(
		NewName("x", loc(1)),
		[]*Comprehension{{
			Target: NewName("x", loc(1)),
			Iter:   NewName("xs", loc(1)),
			Ifs:    []ExprNode{NewCompare(NewName("x", loc(1)), []string{">"}, []ExprNode{NewConstant(int64(0), loc(1))}, loc(1))},
		}},
		loc(1),
	)
	set := FreeVars(lc)
	assert.True(t, set.Has("x"))
	assert.True(t, set.Has("xs"))
}

func TestFreeVars_NilExprIsEmpty(t *testing.T) {
	assert.Empty(t, FreeVars(nil))
}

func TestVarSet_CloneIsIndependent(t *testing.T) {
	s := NewVarSet()
	s.Add("a")
	clone := s.Clone()
	clone.Add("b")
	assert.False(t, s.Has("b"))
	assert.True(t, clone.Has("b"))
}

func TestContainsNamedExpr(t *testing.T) {
	plain := NewBinOp(NewName("x", loc(1)), "+", NewConstant(int64(1), loc(1)), loc(1))
	assert.False(t, ContainsNamedExpr(plain))

	withWalrus := NewBinOp(
		NewNamedExpr(NewName("y", loc(1)), NewConstant(int64(1), loc(1)), loc(1)),
		"+",
		NewConstant(int64(1), loc(1)),
		loc(1),
	)
	assert.True(t, ContainsNamedExpr(withWalrus))
}

func TestIsDottedCall(t *testing.T) {
	_, ok := IsDottedCall(NewCall("len", nil, loc(1)))
	assert.False(t, ok)

	call, ok := IsDottedCall(NewDottedCall("m", "append", nil, loc(1)))
	assert.True(t, ok)
	assert.Equal(t, "append", call.DottedFunc)
}
