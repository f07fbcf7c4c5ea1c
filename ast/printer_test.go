package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint_AssignAndReturn(t *testing.T) {
	m := NewModule(Block{
		NewAssign([]TargetExpr{NewName("x", loc(1))}, NewConstant(int64(10), loc(1)), loc(1)),
		NewReturn(NewName("x", loc(2)), loc(2)),
	}, loc(0))

	assert.Equal(t, "x = 10\nreturn x\n", Print(m))
}

func TestPrint_ChainedAssignAndAugAssign(t *testing.T) {
	m := NewModule(Block{
		NewAssign([]TargetExpr{NewName("a", loc(1)), NewName("b", loc(1))}, NewConstant(int64(1), loc(1)), loc(1)),
		NewAugAssign(NewName("a", loc(2)), "+", NewConstant(int64(1), loc(2)), loc(2)),
	}, loc(0))

	assert.Equal(t, "a = b = 1\na += 1\n", Print(m))
}

func TestPrint_IfElseIndentation(t *testing.T) {
	m := NewModule(Block{
		NewIf(
			NewName("x", loc(1)),
			Block{NewReturn(NewConstant(int64(1), loc(2)), loc(2))},
			Block{NewReturn(NewConstant(int64(2), loc(3)), loc(3))},
			loc(1),
		),
	}, loc(0))

	want := "if x:\n    return 1\nelse:\n    return 2\n"
	assert.Equal(t, want, Print(m))
}

func TestPrint_EmptyBlockRendersPass(t *testing.T) {
	m := NewModule(Block{
		NewFor(NewName("i", loc(1)), NewCall("range", []ExprNode{NewConstant(int64(3), loc(1))}, loc(1)), nil, nil, loc(1)),
	}, loc(0))

	assert.Equal(t, "for i in range(3):\n    pass\n", Print(m))
}

func TestPrint_Literals(t *testing.T) {
	m := NewModule(Block{
		NewExprStmt(NewConstant(nil, loc(1)), loc(1)),
		NewExprStmt(NewConstant(true, loc(2)), loc(2)),
		NewExprStmt(NewConstant("hi", loc(3)), loc(3)),
	}, loc(0))

	assert.Equal(t, "none\ntrue\n\"hi\"\n", Print(m))
}

func TestPrint_DottedCallAndSubscript(t *testing.T) {
	m := NewModule(Block{
		NewExprStmt(NewDottedCall("m", "append", []ExprNode{NewName("x", loc(1))}, loc(1)), loc(1)),
		NewAssign([]TargetExpr{NewSubscript(NewName("a", loc(2)), NewName("i", loc(2)), loc(2))}, NewName("v", loc(2)), loc(2)),
	}, loc(0))

	assert.Equal(t, "m.append(x)\na[i] = v\n", Print(m))
}

func TestNormalize_StripsBlankLinesAndWhitespace(t *testing.T) {
	src := "x = 1\n\n   \n  y = 2  \n"
	assert.Equal(t, "x = 1\ny = 2", Normalize(src))
}

func TestNormalize_EquatesDifferingIndentation(t *testing.T) {
	a := "if x:\n    return 1\n"
	b := "if x:\n        return 1\n"
	assert.Equal(t, Normalize(a), Normalize(b))
}
