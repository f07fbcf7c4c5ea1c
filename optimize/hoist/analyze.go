package hoist

import (
	"fmt"

	"github.com/optctl/optctl/ast"
)

// instruction is one entry of the lift plan produced by analyzeFor/While,
// consumed by applyInsertion against the enclosing block.
type instruction struct {
	loopIndex   int
	asTemporary bool
	sourceLine  int
	location    ast.SourceLocation
	rhs         ast.ExprNode  // original RHS, for as_temporary == true
	stmt        ast.StmtNode  // whole statement, for as_temporary == false
	tmpName     string
}

// decision is an undoable lift candidate found during analysis, before the
// removal half of the transaction has touched the loop body.
type decision struct {
	bodyIndex   int
	asTemporary bool
	assign      *ast.Assign
}

// analyzeFor implements the For half of §4.4: A/R computed over the single
// iteration variable, candidates decided against the finished sets, then
// applied against the loop's own body.
func analyzeFor(loop *ast.For, loopIndex int) []instruction {
	variable := loop.Target.ID
	A, R := computeAR(variable, loop.Body)

	var decisions []decision
	for i, stmt := range loop.Body {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			continue
		}
		rhsFree := ast.FreeVars(assign.Value)
		lhsMentions := targetsMention(assign.Targets, variable)
		iOnlyOnLHS := lhsMentions && !rhsFree.Has(variable)
		iNowhere := !lhsMentions && !rhsFree.Has(variable)
		switch {
		case iOnlyOnLHS && !isNameExpr(assign.Value) && disjoint(rhsFree, A):
			decisions = append(decisions, decision{i, true, assign})
		case iNowhere && !anyTargetIn(assign.Targets, R):
			decisions = append(decisions, decision{i, false, assign})
		}
	}
	return applyLoopDecisions(&loop.Body, loopIndex, decisions)
}

// analyzeWhile implements the While half of §4.4: C is the free-variable
// set of the test, A and R are unions over computeAR for each name in C.
func analyzeWhile(loop *ast.While, loopIndex int) []instruction {
	C := ast.FreeVars(loop.Test)
	A := ast.NewVarSet()
	R := ast.NewVarSet()
	for c := range C {
		Ac, Rc := computeAR(c, loop.Body)
		A.AddAll(Ac)
		R.AddAll(Rc)
	}

	var decisions []decision
	for i, stmt := range loop.Body {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			continue
		}
		rhsFree := ast.FreeVars(assign.Value)
		targetInC := anyTargetIn(assign.Targets, C)
		rhsRefC := intersects(rhsFree, C)
		if rhsRefC {
			continue
		}
		if targetInC {
			if !isNameExpr(assign.Value) && disjoint(rhsFree, A) {
				decisions = append(decisions, decision{i, true, assign})
			}
		} else if !anyTargetIn(assign.Targets, R) {
			decisions = append(decisions, decision{i, false, assign})
		}
	}
	return applyLoopDecisions(&loop.Body, loopIndex, decisions)
}

// computeAR is the forward pass shared by the For and While rules of §4.4:
// A collects the names assigned by statements whose RHS never mentions
// variable; R collects the names read by statements whose LHS does mention
// variable, excluding whatever is already in A at that point.
func computeAR(variable string, body ast.Block) (ast.VarSet, ast.VarSet) {
	A := ast.NewVarSet()
	R := ast.NewVarSet()
	for _, stmt := range body {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			continue
		}
		rhsFree := ast.FreeVars(assign.Value)
		if targetsMention(assign.Targets, variable) {
			for name := range rhsFree {
				if !A.Has(name) {
					R.Add(name)
				}
			}
		}
		if !rhsFree.Has(variable) {
			for _, t := range assign.Targets {
				A.Add(ast.TargetName(t))
			}
		}
	}
	return A, R
}

// applyLoopDecisions is the removal half of the two-phase transaction: it
// mutates bodyPtr in place, either rewriting an assignment's RHS to a fresh
// temporary name or deleting the statement outright, tracking the running
// adjust counter described in §4.4.
func applyLoopDecisions(bodyPtr *ast.Block, loopIndex int, decisions []decision) []instruction {
	instrs := make([]instruction, 0, len(decisions))
	adjust := 0
	body := *bodyPtr
	for _, d := range decisions {
		line := d.assign.Location.Line
		if d.asTemporary {
			tmp := fmt.Sprintf("__o_tmp_%d", line)
			instrs = append(instrs, instruction{
				loopIndex:   loopIndex,
				asTemporary: true,
				sourceLine:  line,
				location:    d.assign.Location,
				rhs:         d.assign.Value,
				tmpName:     tmp,
			})
			d.assign.Value = ast.NewName(tmp, d.assign.Location)
			continue
		}
		idx := d.bodyIndex - adjust
		instrs = append(instrs, instruction{
			loopIndex:   loopIndex,
			asTemporary: false,
			sourceLine:  line,
			location:    d.assign.Location,
			stmt:        d.assign,
		})
		body = append(body[:idx], body[idx+1:]...)
		adjust++
	}
	*bodyPtr = body
	return instrs
}
