package deadcode

import "github.com/optctl/optctl/ast"

// blockRef is a mutable reference to a block living inside some node's
// field, letting the structural post-passes rewrite it in place.
type blockRef = *ast.Block

// visitBlocksBFS walks every block reachable from module, breadth first,
// calling visit once per block before the blocks nested under its
// statements are enqueued. Used by the two post-passes that operate on
// whichever block they happen to see, independent of tree depth.
func visitBlocksBFS(module *ast.Module, visit func(blockRef)) {
	queue := []blockRef{&module.Body}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		visit(b)
		for _, stmt := range *b {
			queue = append(queue, childBlocks(stmt)...)
		}
	}
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
