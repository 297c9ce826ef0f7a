package httperror

// Severity indicates how urgent an error is.
// It is purely descriptive: severities carry no ordering and are never compared
// beyond equality.
type Severity string

const (
	// SeverityInfo marks an error that is expected and informational.
	SeverityInfo Severity = "INFO"

	// SeverityWarn marks an error that deserves attention but is not a failure of the service.
	SeverityWarn Severity = "WARN"

	// SeverityError marks a regular error. This is the default for ad-hoc errors.
	SeverityError Severity = "ERROR"

	// SeverityCritical marks an error that requires immediate attention.
	SeverityCritical Severity = "CRITICAL"

	// SeverityDebug marks an error only relevant while debugging.
	SeverityDebug Severity = "DEBUG"
)

// defaultSeverity is used when neither an option nor a preset supplies a severity.
const defaultSeverity = SeverityError

// Severities returns every known severity in declaration order.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityWarn, SeverityError, SeverityCritical, SeverityDebug}
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityError, SeverityCritical, SeverityDebug:
		return true
	}
	return false
}

// String returns the severity tag.
func (s Severity) String() string {
	return string(s)
}
