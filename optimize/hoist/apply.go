package hoist

import "github.com/optctl/optctl/ast"

// applyInsertion is the insertion half of the two-phase transaction: scan
// the combined instruction list in order with a fresh adjust counter,
// inserting each lifted statement into block at the position its owning
// loop now occupies.
func applyInsertion(block ast.Block, instrs []instruction) ast.Block {
	adjust := 0
	for _, ins := range instrs {
		pos := ins.loopIndex + adjust
		var newStmt ast.StmtNode
		if ins.asTemporary {
			target := ast.NewName(ins.tmpName, ins.location)
			newStmt = ast.NewAssign([]ast.TargetExpr{target}, ins.rhs, ins.location)
		} else {
			newStmt = ins.stmt
		}
		block = insertAt(block, pos, newStmt)
		adjust++
	}
	return block
}

func insertAt(block ast.Block, pos int, stmt ast.StmtNode) ast.Block {
	out := make(ast.Block, 0, len(block)+1)
	out = append(out, block[:pos]...)
	out = append(out, stmt)
	out = append(out, block[pos:]...)
	return out
}
