package errors

import (
	"strings"
)

// suggestFix generates auto-fix suggestions based on error code
func suggestFix(err CompilerError) *FixSuggestion {
	switch err.Code {
	case ErrUnterminatedString:
		return suggestCloseString(err)
	case ErrInvalidEscape:
		return suggestValidEscape(err)
	case ErrBadIndentation:
		return suggestIndentation(err)
	case ErrExpectedColon:
		return suggestColon(err)
	case ErrExpectedParen:
		return suggestParen(err)
	case ErrExpectedBracket:
		return suggestBracket(err)
	case ErrExpectedIndent:
		return suggestIndent(err)
	case ErrUnsupportedConstruct:
		return suggestSupportedSubset(err)
	case ErrMalformedCall:
		return suggestCallCallee(err)
	default:
		return nil
	}
}

// suggestCloseString suggests closing an unterminated string
func suggestCloseString(err CompilerError) *FixSuggestion {
	if len(err.Context.SourceLines) == 0 {
		return nil
	}

	errorLine := err.Context.SourceLines[err.Context.Highlight.Line]

	return &FixSuggestion{
		Description: "Add a closing quote",
		OldCode:     strings.TrimSpace(errorLine),
		NewCode:     strings.TrimSpace(errorLine) + `"`,
		Confidence:  0.90,
	}
}

// suggestValidEscape suggests valid escape sequences
func suggestValidEscape(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "Use a supported escape sequence: \\n, \\t, \\r, \\\\, \\\", \\'",
		OldCode:     "Invalid escape",
		NewCode:     "Use a standard escape sequence",
		Confidence:  0.85,
	}
}

// suggestIndentation suggests realigning to an enclosing indentation level
func suggestIndentation(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "Align this line with one of the enclosing block's indentation levels",
		OldCode:     "Mismatched indentation",
		NewCode:     "Use the same number of leading spaces as the block it belongs to",
		Confidence:  0.70,
	}
}

// suggestColon suggests adding a missing trailing colon
func suggestColon(err CompilerError) *FixSuggestion {
	if len(err.Context.SourceLines) == 0 {
		return &FixSuggestion{
			Description: "Block headers end with ':'",
			OldCode:     "if cond",
			NewCode:     "if cond:",
			Confidence:  0.85,
		}
	}

	errorLine := err.Context.SourceLines[err.Context.Highlight.Line]
	return &FixSuggestion{
		Description: "Add the missing ':'",
		OldCode:     strings.TrimSpace(errorLine),
		NewCode:     strings.TrimSpace(errorLine) + ":",
		Confidence:  0.85,
	}
}

// suggestParen suggests balancing parentheses
func suggestParen(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "Check parentheses balance",
		OldCode:     "",
		NewCode:     "Ensure every '(' has a matching ')'",
		Confidence:  0.75,
	}
}

// suggestBracket suggests balancing brackets
func suggestBracket(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "Check bracket balance",
		OldCode:     "",
		NewCode:     "Ensure every '[' has a matching ']'",
		Confidence:  0.75,
	}
}

// suggestIndent suggests adding a missing indented block
func suggestIndent(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "A block header must be followed by an indented body",
		OldCode:     "if cond:\npass",
		NewCode:     "if cond:\n    pass",
		Confidence:  0.80,
	}
}

// suggestSupportedSubset points at the supported grammar
func suggestSupportedSubset(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "Only def/for/while/if-else/return/pass/try-except-finally and list comprehensions are accepted",
		OldCode:     "Unsupported construct",
		NewCode:     "Rewrite using the supported statement and expression forms",
		Confidence:  0.60,
	}
}

// suggestCallCallee suggests repairing a malformed call node
func suggestCallCallee(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "A call must name either a bare function or a dotted method",
		OldCode:     "Call()",
		NewCode:     "name(...) or receiver.name(...)",
		Confidence:  0.70,
	}
}
