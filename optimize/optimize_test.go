package optimize_test

import (
	"strings"
	"testing"

	"github.com/optctl/optctl/ast"
	"github.com/optctl/optctl/lang/lexer"
	"github.com/optctl/optctl/lang/parser"
	"github.com/optctl/optctl/optimize"
)

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	lx := lexer.New(src, "t.opt")
	tokens, lexErrs := lx.ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	p := parser.New(tokens, "t.opt")
	mod, errs := p.Parse()
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return mod
}

// printed canonicalizes a module through the same print+normalize pipeline
// the fixed-point driver itself relies on for comparison.
func printed(m *ast.Module) string {
	return ast.Normalize(ast.Print(m))
}

func expect(t *testing.T, got *ast.Module, wantSrc string) {
	t.Helper()
	want := printed(mustParse(t, wantSrc))
	if g := printed(got); g != want {
		t.Fatalf("mismatch:\n got:\n%s\nwant:\n%s", g, want)
	}
}

// Scenario (a): a single loop-invariant RHS lifted to a temporary.
func TestScenario_HoistSingleAssign(t *testing.T) {
	mod := mustParse(t, "def foo(a, x, y):\n"+
		"    for i in range(len(a)):\n"+
		"        a[i] = x + y\n")
	out := optimize.HoistInvariants(mod)
	expect(t, out, "def foo(a, x, y):\n"+
		"    __o_tmp_3 = x + y\n"+
		"    for i in range(len(a)):\n"+
		"        a[i] = __o_tmp_3\n")
}

// Scenario (b): a dead assignment inside the loop body is pruned, then the
// now loop-invariant survivor is lifted out and the emptied loop removed.
func TestScenario_OptimizeCollapsesLoop(t *testing.T) {
	mod := mustParse(t, "def foo(x):\n"+
		"    for i in range(10):\n"+
		"        y = 10 + x\n"+
		"        z = i\n"+
		"    return y\n")
	out, err := optimize.Optimize(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expect(t, out, "def foo(x):\n"+
		"    y = 10 + x\n"+
		"    return y\n")
}

// Scenario (c): dead-branch pruning followed by then/else flip.
func TestScenario_RemoveUselessFlipsConditional(t *testing.T) {
	mod := mustParse(t, "def foo():\n"+
		"    a = 10\n"+
		"    if a:\n"+
		"        c = 1\n"+
		"    else:\n"+
		"        b = 2\n"+
		"    c = b + 10\n"+
		"    return b\n")
	out := optimize.RemoveUseless(mod)
	expect(t, out, "def foo():\n"+
		"    a = 10\n"+
		"    if not a:\n"+
		"        b = 2\n"+
		"    return b\n")
}

// Scenario (d): a while loop's invariant right-hand side lifted above it.
func TestScenario_HoistWhileInvariant(t *testing.T) {
	mod := mustParse(t, "def foo(a, b, s, u):\n"+
		"    while a > b:\n"+
		"        b = s + u\n"+
		"        a = a + 1\n"+
		"    return a\n")
	out := optimize.HoistInvariants(mod)
	expect(t, out, "def foo(a, b, s, u):\n"+
		"    __o_tmp_3 = s + u\n"+
		"    while a > b:\n"+
		"        b = __o_tmp_3\n"+
		"        a = a + 1\n"+
		"    return a\n")
}

// Scenario (e): a nested for-loop whose inner loop assigns through a live
// walrus. The whole-statement lift of `z = x + (y := ...)` must still land
// before the as-temporary lift of the statement that reads y, since the A/R
// sets computed for the inner loop's own iteration variable keep them
// disjoint from each other despite the shared name.
func TestScenario_HoistNestedLoopWithWalrus(t *testing.T) {
	mod := mustParse(t, "def foo():\n"+
		"    x = y = z = 5\n"+
		"    a = []\n"+
		"    for j in range(10):\n"+
		"        a[j] = x + z\n"+
		"        for i in range(10):\n"+
		"            z = x + (y := 10)\n"+
		"            a[i] = x + y\n")
	out := optimize.HoistInvariants(mod)
	expect(t, out, "def foo():\n"+
		"    x = y = z = 5\n"+
		"    a = []\n"+
		"    __o_tmp_5 = x + z\n"+
		"    for j in range(10):\n"+
		"        a[j] = __o_tmp_5\n"+
		"        z = x + (y := 10)\n"+
		"        __o_tmp_8 = x + y\n"+
		"        for i in range(10):\n"+
		"            a[i] = __o_tmp_8\n")
}

// Scenario (f): full optimize collapses two nested dead loops down to the
// bare return, the most aggressive end-to-end case in §8.
func TestScenario_OptimizeCollapsesNestedLoops(t *testing.T) {
	mod := mustParse(t, "def foo(a):\n"+
		"    x = y = z = 5\n"+
		"    for i in range(a):\n"+
		"        for j in range(a):\n"+
		"            x = y + z\n"+
		"    return a\n")
	out, err := optimize.Optimize(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expect(t, out, "def foo(a):\n"+
		"    return a\n")
}

// --- Quantified invariants (§8) ---

func countStatements(block ast.Block) int {
	n := 0
	for _, stmt := range block {
		n++
		for _, b := range childBlocksForCount(stmt) {
			n += countStatements(b)
		}
	}
	return n
}

func childBlocksForCount(stmt ast.StmtNode) []ast.Block {
	switch s := stmt.(type) {
	case *ast.If:
		return []ast.Block{s.Body, s.Orelse}
	case *ast.For:
		return []ast.Block{s.Body, s.Orelse}
	case *ast.While:
		return []ast.Block{s.Body, s.Orelse}
	case *ast.FunctionDef:
		return []ast.Block{s.Body}
	case *ast.Try:
		out := []ast.Block{s.Body, s.Orelse, s.Finalbody}
		for _, h := range s.Handlers {
			out = append(out, h.Body)
		}
		return out
	}
	return nil
}

func TestInvariant_DriverIsStable(t *testing.T) {
	mod := mustParse(t, "def foo(a):\n"+
		"    x = y = z = 5\n"+
		"    for i in range(a):\n"+
		"        for j in range(a):\n"+
		"            x = y + z\n"+
		"    return a\n")
	once, err := optimize.Optimize(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	onceStr := printed(once)

	again, err := optimize.Optimize(ast.CloneModule(once))
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}
	if printed(again) != onceStr {
		t.Fatalf("optimize(optimize(T)) != optimize(T):\nfirst:\n%s\nsecond:\n%s", onceStr, printed(again))
	}
}

func TestInvariant_MonotoneDeletion(t *testing.T) {
	mod := mustParse(t, "def foo():\n"+
		"    a = 10\n"+
		"    if a:\n"+
		"        c = 1\n"+
		"    else:\n"+
		"        b = 2\n"+
		"    c = b + 10\n"+
		"    return b\n")
	before := countStatements(mod.Body)
	out := optimize.RemoveUseless(ast.CloneModule(mod))
	after := countStatements(out.Body)
	if after > before {
		t.Fatalf("remove_useless increased statement count: %d -> %d", before, after)
	}
}

func TestInvariant_TemporaryHygiene(t *testing.T) {
	mod := mustParse(t, "def foo(a, x, y):\n"+
		"    for i in range(len(a)):\n"+
		"        a[i] = x + y\n")
	out := optimize.HoistInvariants(mod)
	fn := out.Body[0].(*ast.FunctionDef)
	tmp, ok := fn.Body[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected a lifted temporary assignment, got %T", fn.Body[0])
	}
	name := ast.TargetName(tmp.Targets[0])
	if !strings.HasPrefix(name, "__o_tmp_") {
		t.Fatalf("expected name with __o_tmp_ prefix, got %s", name)
	}
	if name != "__o_tmp_3" {
		t.Fatalf("expected __o_tmp_3 (the source line of the lifted statement), got %s", name)
	}
}

func TestInvariant_UnreachableAfterPass(t *testing.T) {
	mod := mustParse(t, "def foo():\n"+
		"    pass\n"+
		"    x = 1\n")
	out := optimize.RemoveUseless(mod)
	fn := out.Body[0].(*ast.FunctionDef)
	if len(fn.Body) != 1 {
		t.Fatalf("expected only the leading pass to survive, got %d statements", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ast.Pass); !ok {
		t.Fatalf("expected *ast.Pass, got %T", fn.Body[0])
	}
}

func TestInvariant_NoEmptyThenNonEmptyElse(t *testing.T) {
	mod := mustParse(t, "def foo():\n"+
		"    a = 10\n"+
		"    if a:\n"+
		"        c = 1\n"+
		"    else:\n"+
		"        b = 2\n"+
		"    c = b + 10\n"+
		"    return b\n")
	out := optimize.RemoveUseless(mod)
	fn := out.Body[0].(*ast.FunctionDef)
	for _, stmt := range fn.Body {
		ifStmt, ok := stmt.(*ast.If)
		if !ok {
			continue
		}
		if len(ifStmt.Body) == 0 && len(ifStmt.Orelse) != 0 {
			t.Fatalf("found an If with an empty then-branch and a non-empty else-branch")
		}
	}
}
