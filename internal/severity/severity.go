// Package severity provides severity level constants for issues reported
// by the generator package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of an issue found during code generation.
type Severity int

const (
	// SeverityInfo indicates informational messages about generation choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo Severity = iota

	// SeverityWarning indicates permissive fallbacks taken for ambiguous or
	// underspecified schema nodes. Output is produced but may be looser than
	// the author intended.
	SeverityWarning

	// SeverityCritical indicates features that cannot be generated.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
