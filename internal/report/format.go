package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText renders the report for terminals: one line per finding with
// rule, severity, message, and location, then a summary line.
func FormatText(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", r.File)
	for _, f := range r.Findings {
		loc := f.Location.Path
		if f.Location.Page != "" {
			loc += fmt.Sprintf(" (page %s)", f.Location.Page)
		}
		fmt.Fprintf(&b, "  [%s] %s: %s at %s\n", f.Rule, f.Severity, f.Message, loc)
	}
	fmt.Fprintf(&b, "\n%d errors, %d warnings\n", r.Summary.ErrorCount, r.Summary.WarningCount)
	return b.String()
}

// FormatJSON renders the report as indented JSON.
func FormatJSON(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
