package errors_test

import (
	"fmt"

	errors "github.com/optctl/optctl/diagnostics"
)

// ExampleCompilerError_FormatForTerminal demonstrates terminal formatting
func ExampleCompilerError_FormatForTerminal() {
	sourceContent := `def f(a, x, y):
    for i in range(len(a)):
        a[i] = x + y
`

	loc := errors.SourceLocation{
		File:   "app.opt",
		Line:   3,
		Column: 9,
		Length: 12,
	}

	err := errors.NewCompilerError(
		"optimizer",
		errors.ErrMalformedCall,
		"malformed call node",
		loc,
		errors.Error,
	)

	err = errors.EnrichError(err, sourceContent)

	output := err.FormatForTerminal()
	fmt.Println(errors.StripColors(output))

	// Output includes error, location, context, and suggestion
}

// ExampleErrorRecovery demonstrates collecting multiple errors
func ExampleErrorRecovery() {
	recovery := errors.NewErrorRecovery()

	for i := 1; i <= 3; i++ {
		loc := errors.SourceLocation{
			File:   "app.opt",
			Line:   i,
			Column: 1,
		}
		err := errors.NewCompilerError(
			"parser",
			errors.ErrUnexpectedToken,
			fmt.Sprintf("unexpected token at line %d", i),
			loc,
			errors.Error,
		)
		recovery.Recover(err)
	}

	fmt.Printf("Collected %d errors\n", recovery.ErrorCount())
	fmt.Println(recovery.Summary())

	// Output:
	// Collected 3 errors
	// Found 3 error(s)
}

// ExampleFormatErrorsAsJSON demonstrates JSON output
func ExampleFormatErrorsAsJSON() {
	loc := errors.SourceLocation{
		File:   "app.opt",
		Line:   5,
		Column: 10,
	}

	err := errors.NewCompilerError(
		"lexer",
		errors.ErrBadIndentation,
		"unindent does not match any outer indentation level",
		loc,
		errors.Error,
	)

	jsonOutput, _ := err.FormatAsJSON()
	fmt.Println("JSON output available")
	_ = jsonOutput

	// Output:
	// JSON output available
}
