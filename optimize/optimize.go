// Package optimize composes the dead-statement elimination and
// loop-invariant hoisting passes behind the three public operations of
// §6: RemoveUseless, HoistInvariants, and the fixed-point driver Optimize.
package optimize

import (
	"github.com/optctl/optctl/ast"
	"github.com/optctl/optctl/optimize/deadcode"
	"github.com/optctl/optctl/optimize/hoist"
)

// RemoveUseless runs the dead-statement elimination pass of §4.3 and its
// three structural post-passes. Idempotent on trees already reduced.
func RemoveUseless(m *ast.Module) *ast.Module {
	return deadcode.Eliminate(m)
}

// HoistInvariants runs the loop-invariant hoisting pass of §4.4 once. Not
// idempotent in general: a hoist can expose a further one on a subsequent
// run, which is why Optimize iterates.
func HoistInvariants(m *ast.Module) *ast.Module {
	return hoist.HoistInvariants(m)
}

// Optimize runs the fixed-point driver of §4.5: clone the tree for a
// before/after diff, run elimination then hoisting, and compare the two
// under the whitespace-normalising printer. It iterates until the text is
// unchanged, then returns. The loop terminates on well-formed input
// because elimination only deletes and hoisting only relocates existing
// nodes, introducing temporaries whose names are fixed by source line.
func Optimize(m *ast.Module) (*ast.Module, error) {
	if err := validate(m); err != nil {
		return nil, err
	}
	for {
		before := ast.Normalize(ast.Print(ast.CloneModule(m)))
		m = RemoveUseless(m)
		m = HoistInvariants(m)
		if err := validate(m); err != nil {
			return nil, err
		}
		after := ast.Normalize(ast.Print(m))
		if before == after {
			return m, nil
		}
	}
}
