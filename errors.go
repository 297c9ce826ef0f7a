package httperror

// SerializableError extends the standard error interface with the structured
// information needed to answer an HTTP request.
//
// SerializableError provides a status code, a machine-readable type/code pair,
// a severity, a human message, field-level details, and a JSON projection of
// all of it. *HTTPError is the only implementation shipped by this package.
type SerializableError interface {
	error

	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Type returns the error type, e.g. "RESOURCE" or "CLIENT".
	Type() string

	// Code returns the machine-readable error code, e.g. "NOT_FOUND".
	Code() string

	// Severity returns the severity tag.
	Severity() Severity

	// Message returns the human-readable error message.
	Message() string

	// Details returns a copy of the attached field-level details.
	Details() []Detail

	// ToJSON returns the JSON projection of the error.
	// Debug fields are only populated when includeDebugInfo is true.
	ToJSON(includeDebugInfo bool) *ErrorJSON
}
