// Package purity implements the static purity oracle of §4.1: a fixed
// table of built-in names known to be free of observable side effects.
// Any name not in the table is conservatively treated as impure.
package purity

import "github.com/optctl/optctl/ast"

// pureBuiltins is the over-approximation of side-effect-free built-ins:
// numeric conversions, introspection, container constructors, iterators,
// and formatting. It intentionally lists `print` alongside the rest —
// IsPure carves it back out below, since output is never pure regardless
// of what table it appears in.
var pureBuiltins = map[string]struct{}{
	// numeric conversions
	"int":   {},
	"float": {},
	"str":   {},
	"bool":  {},
	"abs":   {},
	"round": {},
	// introspection
	"len":    {},
	"type":   {},
	"isinstance": {},
	"id":     {},
	"hash":   {},
	// container constructors
	"list": {},
	"dict": {},
	"set":  {},
	"tuple": {},
	// iterators
	"range":   {},
	"enumerate": {},
	"zip":     {},
	"sorted":  {},
	"reversed": {},
	"map":     {},
	"filter":  {},
	"min":     {},
	"max":     {},
	"sum":     {},
	// formatting
	"format": {},
	"repr":   {},
	"print":  {}, // listed here, but see IsPure: output is always impure
}

// impureOutputName is the one built-in that appears in the pure table but
// is never actually pure, because it produces observable output.
const impureOutputName = "print"

// IsPure reports whether calling the built-in named by callee is free of
// observable side effects. A name outside the fixed table is conservatively
// treated as impure (retained by the elimination pass) rather than assumed
// safe to drop.
func IsPure(callee string) bool {
	if callee == impureOutputName {
		return false
	}
	_, ok := pureBuiltins[callee]
	return ok
}

// IsPureCall reports whether a whole Call node is pure. A dotted
// (method/attribute) call such as m.append(x) is always conservatively
// impure regardless of whether its attribute name happens to collide with
// an entry in the builtin table; only a bare-name call is looked up.
func IsPureCall(call *ast.Call) bool {
	if call.IsDotted() {
		return false
	}
	return IsPure(call.Func)
}
