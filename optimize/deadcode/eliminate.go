package deadcode

import "github.com/optctl/optctl/ast"

// Eliminate runs the backward mark-and-sweep walker over module, then the
// three structural post-passes, and returns module (mutated in place).
func Eliminate(module *ast.Module) *ast.Module {
	live := ast.NewVarSet()
	module.Body = markBlock(module.Body, live, backward)
	pruneUnreachableAfterPass(module)
	removeEmptyLoops(module)
	normalizeConditionals(module)
	return module
}
