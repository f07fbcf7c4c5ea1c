package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	severityInfo    = color.New(color.FgBlue, color.Bold)
	severityWarning = color.New(color.FgYellow, color.Bold)
	severityError   = color.New(color.FgRed, color.Bold)
	severityFatal   = color.New(color.FgRed, color.Bold, color.Underline)
	gutterColor     = color.New(color.FgBlue)
	lineNumColor    = color.New(color.FgHiBlack)
	highlightColor  = color.New(color.FgRed, color.Bold)
	helpColor       = color.New(color.FgCyan, color.Bold)
)

// fatih/color turns colors off when stdout is not a terminal; the terminal
// format always carries its ANSI codes, and StripColors removes them.
func init() {
	for _, c := range []*color.Color{severityInfo, severityWarning, severityError, severityFatal,
		gutterColor, lineNumColor, highlightColor, helpColor} {
		c.EnableColor()
	}
}

// FormatForTerminal formats a CompilerError for terminal output with ANSI colors
func (e CompilerError) FormatForTerminal() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", severityFor(e.Severity).Sprint(strings.Title(e.Severity.String())), e.Message))

	sb.WriteString(fmt.Sprintf("  %s %s:%d:%d\n",
		gutterColor.Sprint("-->"),
		e.Location.File,
		e.Location.Line,
		e.Location.Column))

	if len(e.Context.SourceLines) > 0 {
		sb.WriteString(formatSourceContext(e.Context))
	}

	if e.Suggestion != nil {
		sb.WriteString(formatSuggestion(*e.Suggestion))
	}

	return sb.String()
}

// formatSourceContext formats the source code context with highlighting
func formatSourceContext(ctx ErrorContext) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("   %s\n", gutterColor.Sprint("|")))

	for i, line := range ctx.SourceLines {
		lineNum := i + 1
		isErrorLine := i == ctx.Highlight.Line

		if isErrorLine {
			sb.WriteString(fmt.Sprintf("%s %s %s\n",
				lineNumColor.Sprintf("%2d", lineNum),
				gutterColor.Sprint("|"),
				line))

			sb.WriteString(fmt.Sprintf("   %s ", gutterColor.Sprint("|")))

			for j := 0; j < ctx.Highlight.Start; j++ {
				sb.WriteString(" ")
			}

			highlightLength := ctx.Highlight.End - ctx.Highlight.Start
			if highlightLength <= 0 {
				highlightLength = 1
			}
			sb.WriteString(highlightColor.Sprint(strings.Repeat("^", highlightLength)))
			sb.WriteString("\n")
		} else {
			sb.WriteString(fmt.Sprintf("%s %s %s\n",
				lineNumColor.Sprintf("%2d", lineNum),
				gutterColor.Sprint("|"),
				line))
		}
	}

	sb.WriteString(fmt.Sprintf("   %s\n", gutterColor.Sprint("|")))

	return sb.String()
}

// formatSuggestion formats a fix suggestion
func formatSuggestion(suggestion FixSuggestion) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s %s\n", helpColor.Sprint("Help:"), suggestion.Description))

	if suggestion.NewCode != "" {
		sb.WriteString(fmt.Sprintf("%s\n", helpColor.Sprint("Suggestion:")))

		lines := strings.Split(suggestion.NewCode, "\n")
		for _, line := range lines {
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}

		if suggestion.Confidence < 1.0 {
			confidencePercent := int(suggestion.Confidence * 100)
			sb.WriteString(lineNumColor.Sprintf("(Confidence: %d%%)\n", confidencePercent))
		}
	}

	return sb.String()
}

// severityFor returns the color set used for a severity level
func severityFor(severity Severity) *color.Color {
	switch severity {
	case Info:
		return severityInfo
	case Warning:
		return severityWarning
	case Error:
		return severityError
	case Fatal:
		return severityFatal
	default:
		return color.New()
	}
}

// FormatSummary formats a summary of errors and warnings
func FormatSummary(errorCount, warningCount int) string {
	var parts []string

	if errorCount > 0 {
		parts = append(parts, severityError.Sprintf("%d error(s)", errorCount))
	}

	if warningCount > 0 {
		parts = append(parts, severityWarning.Sprintf("%d warning(s)", warningCount))
	}

	if len(parts) == 0 {
		return severityInfo.Sprint("No errors or warnings") + "\n"
	}

	return fmt.Sprintf("\nOptimization failed with %s\n", strings.Join(parts, " and "))
}

// StripColors removes ANSI color codes from a string (useful for testing)
func StripColors(s string) string {
	result := s
	for strings.Contains(result, "\033[") {
		start := strings.Index(result, "\033[")
		end := strings.Index(result[start:], "m")
		if end == -1 {
			break
		}
		result = result[:start] + result[start+end+1:]
	}
	return result
}
