// Package hoist implements the loop-invariant code motion pass of §4.4: a
// breadth-first walk of the tree that, per block, analyzes each child
// For/While loop for liftable statements and applies the lifts as a
// two-phase removal/insertion transaction against that block.
package hoist

import "github.com/optctl/optctl/ast"

type blockRef = *ast.Block

// HoistInvariants runs the pass once over module and returns it, mutated
// in place.
func HoistInvariants(module *ast.Module) *ast.Module {
	queue := []blockRef{&module.Body}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		hoistBlock(b)
		for _, stmt := range *b {
			queue = append(queue, childBlocks(stmt)...)
		}
	}
	return module
}

func childBlocks(stmt ast.StmtNode) []blockRef {
	switch s := stmt.(type) {
	case *ast.If:
		return []blockRef{&s.Body, &s.Orelse}
	case *ast.For:
		return []blockRef{&s.Body, &s.Orelse}
	case *ast.While:
		return []blockRef{&s.Body, &s.Orelse}
	case *ast.FunctionDef:
		return []blockRef{&s.Body}
	case *ast.Try:
		out := []blockRef{&s.Body, &s.Orelse, &s.Finalbody}
		for _, h := range s.Handlers {
			out = append(out, &h.Body)
		}
		return out
	default:
		return nil
	}
}

// hoistBlock collects lift instructions from every direct child For/While
// of block, then applies the insertion half of the transaction. The
// removal half runs eagerly inside each loop's own analysis, since it only
// ever touches that loop's own body.
func hoistBlock(b blockRef) {
	block := *b
	var instrs []instruction
	for idx, stmt := range block {
		switch loop := stmt.(type) {
		case *ast.For:
			instrs = append(instrs, analyzeFor(loop, idx)...)
		case *ast.While:
			instrs = append(instrs, analyzeWhile(loop, idx)...)
		}
	}
	if len(instrs) == 0 {
		return
	}
	*b = applyInsertion(block, instrs)
}
