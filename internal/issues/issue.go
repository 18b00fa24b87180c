// Package issues provides a unified issue type for problems found during
// code generation.
package issues

import (
	"fmt"

	"github.com/typesmith/typesmith/internal/severity"
)

// Issue represents a single problem or notable choice made during generation.
type Issue struct {
	// TypeName is the generated type the issue relates to (empty for run-level issues)
	TypeName string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "ℹ"
	}
	if i.TypeName != "" {
		return fmt.Sprintf("%s [%s] %s", symbol, i.TypeName, i.Message)
	}
	return fmt.Sprintf("%s %s", symbol, i.Message)
}
