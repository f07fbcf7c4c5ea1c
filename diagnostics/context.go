package errors

import (
	"os"
	"strings"
)

// EnrichError attaches surrounding source and, where one applies, an
// auto-fix suggestion to a bare CompilerError produced by the lexer, the
// parser, or the optimizer's own tree-validation pass.
func EnrichError(err CompilerError, sourceContent string) CompilerError {
	err = err.WithContext(extractSourceContext(err.Location, err.Phase, sourceContent))

	if suggestion := suggestFix(err); suggestion != nil {
		err = err.WithSuggestion(*suggestion)
	}

	return err
}

// contextWindow returns how many lines of source to show on each side of an
// error for the given phase. A lexer error (a bad character, an unterminated
// string) is confined to one token, so one line of lead-in is enough to
// place it; a parser error — a missing ':', a dedent that doesn't match any
// enclosing level — is easier to fix with the rest of the block in view, so
// those get the wider window.
func contextWindow(phase string) int {
	if phase == "lexer" {
		return 1
	}
	return 3
}

// extractSourceContext pulls the lines around location out of sourceContent,
// sized by contextWindow(phase), and records where within that slice the
// error itself falls.
func extractSourceContext(location SourceLocation, phase string, sourceContent string) ErrorContext {
	lines := strings.Split(strings.TrimSuffix(sourceContent, "\n"), "\n")

	if location.Line < 1 || location.Line > len(lines) {
		return ErrorContext{}
	}

	window := contextWindow(phase)
	errorLineIndex := location.Line - 1
	startLine := max(0, errorLineIndex-window)
	endLine := min(len(lines), errorLineIndex+window+1)

	contextLines := make([]string, 0, endLine-startLine)
	for i := startLine; i < endLine; i++ {
		contextLines = append(contextLines, lines[i])
	}

	errorLineInContext := errorLineIndex - startLine

	start := location.Column - 1
	end := start + location.Length
	if location.Length == 0 {
		end = start + 1
	}

	return ErrorContext{
		SourceLines: contextLines,
		Highlight: Highlight{
			Line:  errorLineInContext,
			Start: start,
			End:   end,
		},
	}
}

// ReadSourceFile reads a source file and returns its contents.
func ReadSourceFile(filepath string) (string, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// EnrichErrorFromFile reads err's source file off disk and enriches it,
// leaving err untouched if the file can no longer be read (it may have been
// moved or deleted between the parse and the report).
func EnrichErrorFromFile(err CompilerError) CompilerError {
	content, readErr := ReadSourceFile(err.Location.File)
	if readErr != nil {
		return err
	}
	return EnrichError(err, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
