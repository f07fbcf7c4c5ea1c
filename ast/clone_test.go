package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneModule_Nil(t *testing.T) {
	assert.Nil(t, CloneModule(nil))
}

func TestCloneModule_DeepCopyIsIndependent(t *testing.T) {
	original := NewModule(Block{
		NewAssign([]TargetExpr{NewName("x", loc(1))}, NewConstant(int64(1), loc(1)), loc(1)),
		NewIf(
			NewName("x", loc(2)),
			Block{NewReturn(NewName("x", loc(3)), loc(3))},
			nil,
			loc(2),
		),
	}, loc(1))

	clone := CloneModule(original)
	require.Len(t, clone.Body, 2)

	// Mutating the clone must not affect the original.
	clone.Body[0].(*Assign).Targets[0].(*Name).ID = "y"
	clone.Body = append(clone.Body, NewPass(loc(4)))

	assert.Equal(t, "x", original.Body[0].(*Assign).Targets[0].(*Name).ID)
	assert.Len(t, original.Body, 2)
}

func TestCloneStmt_ForPreservesNilTarget(t *testing.T) {
	forStmt := NewFor(nil, NewCall("range", nil, loc(1)), Block{NewPass(loc(2))}, nil, loc(1))
	cloned := CloneStmt(forStmt).(*For)
	assert.Nil(t, cloned.Target)
}

func TestCloneExpr_Nil(t *testing.T) {
	assert.Nil(t, CloneExpr(nil))
}

func TestCloneExpr_ListCompIndependent(t *testing.T) {
	lc := NewListComp(
		NewName("x", loc(1)),
		[]*Comprehension{{Target: NewName("x", loc(1)), Iter: NewName("xs", loc(1)), Ifs: []ExprNode{NewName("x", loc(1))}}},
		loc(1),
	)
	clone := CloneExpr(lc).(*ListComp)
	clone.Generators[0].Target.ID = "y"
	assert.Equal(t, "x", lc.Generators[0].Target.ID)
}
