// Package report defines the finding model for directive diagnostics
// and the per-journal report used to collect and present lint results.
package report

// Severity classifies a finding. Errors make the run fail; warnings only
// fail it under strict mode.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Location identifies where in a journal document a finding occurred.
type Location struct {
	File   string `json:"file"`
	Path   string `json:"path"`             // JSON path like "$.pages[0].text.content"
	Page   string `json:"page,omitempty"`   // page id, when the finding is inside a page
	Offset int    `json:"offset,omitempty"` // byte offset of the directive in the text field
}

// Finding is a single diagnostic: a rule that fired, where, and why.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// NewError creates an error-severity Finding.
func NewError(rule string, message string, loc Location) Finding {
	return Finding{Rule: rule, Severity: SeverityError, Message: message, Location: loc}
}

// NewWarning creates a warning-severity Finding.
func NewWarning(rule string, message string, loc Location) Finding {
	return Finding{Rule: rule, Severity: SeverityWarning, Message: message, Location: loc}
}

// Summary holds aggregate counts for a report.
type Summary struct {
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
}

// Report collects the findings for a single journal file. Findings keep
// the order the lint rules produced them, which follows page order, so
// text output reads top to bottom through the document.
type Report struct {
	File        string    `json:"file"`
	SchemaValid bool      `json:"schema_valid"`
	Findings    []Finding `json:"findings"`
	Summary     Summary   `json:"summary"`
}

// NewReport creates an empty Report for the given file.
func NewReport(file string) *Report {
	return &Report{File: file, Findings: []Finding{}}
}

// AddFinding appends a finding and updates the summary counts. Any
// severity other than warning counts as an error.
func (r *Report) AddFinding(f Finding) {
	if f.Severity == SeverityWarning {
		r.Summary.WarningCount++
	} else {
		r.Summary.ErrorCount++
	}
	r.Findings = append(r.Findings, f)
}

// HasErrors reports whether any error-severity finding was added.
func (r *Report) HasErrors() bool {
	return r.Summary.ErrorCount > 0
}

// HasWarnings reports whether any warning-severity finding was added.
func (r *Report) HasWarnings() bool {
	return r.Summary.WarningCount > 0
}
