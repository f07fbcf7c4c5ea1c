package errors

import (
	"encoding/json"
)

// JSONOutput is the CLI's --json report for one invocation: every
// diagnostic the lexer, parser, or optimizer validation raised against a
// single script, split by severity and tallied by phase.
type JSONOutput struct {
	Status   string          `json:"status"`
	Errors   []CompilerError `json:"errors"`
	Warnings []CompilerError `json:"warnings"`
	Summary  Summary         `json:"summary"`
}

// Summary counts diagnostics overall and per phase, so a caller can tell at
// a glance whether a run failed at the lexer (bad characters, indentation)
// or the parser (unsupported grammar) without scanning every entry.
type Summary struct {
	ErrorCount   int            `json:"error_count"`
	WarningCount int            `json:"warning_count"`
	TotalCount   int            `json:"total_count"`
	ByPhase      map[string]int `json:"by_phase"`
}

// FormatAsJSON formats a single CompilerError as JSON.
func (e CompilerError) FormatAsJSON() (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatAsJSONCompact formats a single CompilerError as compact JSON.
func (e CompilerError) FormatAsJSONCompact() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatErrorsAsJSON formats a full diagnostic set as JSON.
func FormatErrorsAsJSON(diags []CompilerError) (string, error) {
	output := buildJSONOutput(diags)
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatErrorsAsJSONCompact formats a full diagnostic set as compact JSON.
func FormatErrorsAsJSONCompact(diags []CompilerError) (string, error) {
	output := buildJSONOutput(diags)
	data, err := json.Marshal(output)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func buildJSONOutput(diags []CompilerError) JSONOutput {
	var errorList, warningList []CompilerError
	byPhase := make(map[string]int)

	for _, d := range diags {
		byPhase[d.Phase]++
		switch {
		case d.IsError():
			errorList = append(errorList, d)
		case d.IsWarning():
			warningList = append(warningList, d)
		}
	}

	status := "success"
	switch {
	case len(errorList) > 0:
		status = "error"
	case len(warningList) > 0:
		status = "warning"
	}

	return JSONOutput{
		Status:   status,
		Errors:   errorList,
		Warnings: warningList,
		Summary: Summary{
			ErrorCount:   len(errorList),
			WarningCount: len(warningList),
			TotalCount:   len(diags),
			ByPhase:      byPhase,
		},
	}
}
