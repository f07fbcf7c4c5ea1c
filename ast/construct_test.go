package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func loc(line int) SourceLocation { return SourceLocation{File: "t.opt", Line: line} }

func TestNewAssign_Targets(t *testing.T) {
	x := NewName("x", loc(1))
	val := NewConstant(int64(1), loc(1))
	a := NewAssign([]TargetExpr{x}, val, loc(1))
	assert.Equal(t, "x", TargetName(a.Targets[0]))
	assert.Equal(t, int64(1), a.Value.(*Constant).Value)
}

func TestTargetName_SubscriptResolvesToBaseName(t *testing.T) {
	sub := NewSubscript(NewName("a", loc(2)), NewName("i", loc(2)), loc(2))
	assert.Equal(t, "a", TargetName(sub))
}

func TestTargetName_NonTargetReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", TargetName(nil))
}

func TestNewCall_PlainVsDotted(t *testing.T) {
	plain := NewCall("len", []ExprNode{NewName("a", loc(1))}, loc(1))
	assert.False(t, plain.IsDotted())
	assert.Equal(t, "len", plain.CalleeName())

	dotted := NewDottedCall("m", "append", []ExprNode{NewName("x", loc(1))}, loc(1))
	assert.True(t, dotted.IsDotted())
	assert.Equal(t, "append", dotted.CalleeName())
}
