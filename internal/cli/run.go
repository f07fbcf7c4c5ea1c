package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/optctl/optctl/ast"
	diagnostics "github.com/optctl/optctl/diagnostics"
	"github.com/optctl/optctl/lang/lexer"
	"github.com/optctl/optctl/lang/parser"
	"github.com/optctl/optctl/lang/unparse"
	"github.com/optctl/optctl/optimize"
)

var errMutuallyExclusive = errors.New("--remove-useless, --hoist-invariants, --optimize, and --passthrough are mutually exclusive")

// Run executes one invocation of the optimizer pipeline against opts.Path
// and returns the process exit code per §6: 0 on success, non-zero on
// unparseable input or I/O failure.
func Run(opts Options) int {
	invocationID := uuid.New()
	logger := newLogger(opts.Verbose)
	defer logger.Sync()
	logger.Debug("starting invocation", zap.String("id", invocationID.String()), zap.String("path", opts.Path))

	mode, err := opts.resolveMode()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	source, err := os.ReadFile(opts.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read %s: %v\n", opts.Path, err)
		return 1
	}
	logger.Debug("read source", zap.Int("bytes", len(source)))

	module, diagErrs := parseModule(string(source), opts.Path)
	if len(diagErrs) > 0 {
		reportDiagnostics(diagErrs, string(source), opts.JSON)
		return 1
	}

	before := ast.Print(module)

	var result *ast.Module
	switch mode {
	case ModePassthrough:
		result = module
	case ModeRemoveUseless:
		result = optimize.RemoveUseless(module)
	case ModeHoistInvariants:
		result = optimize.HoistInvariants(module)
	default:
		result, err = optimize.Optimize(module)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	logger.Debug("pipeline complete", zap.String("mode", modeName(mode)))

	after := ast.Print(result)
	output := unparse.Source(result)

	if opts.Diff {
		printDiff(before, after)
	}

	if opts.Stdout {
		fmt.Print(output)
		return 0
	}

	outPath := outputPath(opts.Path)
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot write %s: %v\n", outPath, err)
		return 1
	}
	if !opts.JSON {
		fmt.Printf("wrote %s\n", outPath)
	}
	return 0
}

func parseModule(source, path string) (*ast.Module, []diagnostics.CompilerError) {
	lx := lexer.New(source, path)
	tokens, lexErrs := lx.ScanTokens()
	if len(lexErrs) > 0 {
		var out []diagnostics.CompilerError
		for _, le := range lexErrs {
			loc := diagnostics.SourceLocation{File: le.File, Line: le.Line, Column: le.Column}
			out = append(out, diagnostics.NewCompilerError("lexer", diagnostics.ErrInvalidCharacter, le.Message, loc, diagnostics.Error))
		}
		return nil, out
	}
	p := parser.New(tokens, path)
	module, parseErrs := p.Parse()
	if len(parseErrs) > 0 {
		return nil, parseErrs
	}
	return module, nil
}

func reportDiagnostics(errs []diagnostics.CompilerError, source string, asJSON bool) {
	recovery := diagnostics.NewErrorRecovery()
	for _, e := range errs {
		recovery.Recover(diagnostics.EnrichError(e, source))
	}
	if asJSON {
		out, _ := recovery.FormatAsJSON()
		fmt.Println(out)
		return
	}
	fmt.Fprint(os.Stderr, recovery.FormatForTerminal())
}

// newLogger follows the development/nop fallback an embedded JSON-RPC
// server in the pack uses for its own --verbose-equivalent switch.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func modeName(m Mode) string {
	switch m {
	case ModeRemoveUseless:
		return "remove_useless"
	case ModeHoistInvariants:
		return "hoist_invariants"
	case ModePassthrough:
		return "passthrough"
	default:
		return "optimize"
	}
}

// outputPath appends "_optimized" to the input's stem, keeping its suffix,
// per §6.
func outputPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return stem + "_optimized" + ext
}

func printDiff(before, after string) {
	if before == after {
		fmt.Println("(no change)")
		return
	}
	fmt.Println("--- before")
	fmt.Println("+++ after")
	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")
	for _, l := range beforeLines {
		fmt.Printf("-%s\n", l)
	}
	for _, l := range afterLines {
		fmt.Printf("+%s\n", l)
	}
}
