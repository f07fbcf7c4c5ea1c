// Package unparse renders an optimized *ast.Module back to source text. It
// is a thin wrapper around the ast package's own printer/normalizer, kept as
// a separate package because the front-end glue treats unparsing as a
// distinct pipeline stage from optimization itself.
package unparse

import "github.com/optctl/optctl/ast"

// Source renders m using the same printer the fixed-point driver uses
// internally for its textual stability check; the driver compares the
// ast.Normalize form of this text, while Source returns it unnormalised.
func Source(m *ast.Module) string {
	return ast.Print(m)
}

// Diff renders both trees and reports whether optimization changed the
// program's normalised printed form at all. The CLI's --diff flag does
// not call it; it prints its own before/after listing.
func Diff(before, after *ast.Module) (beforeSrc, afterSrc string, changed bool) {
	beforeSrc = ast.Print(before)
	afterSrc = ast.Print(after)
	changed = ast.Normalize(beforeSrc) != ast.Normalize(afterSrc)
	return beforeSrc, afterSrc, changed
}
