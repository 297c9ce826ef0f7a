package httperror

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// asSerializable returns the outermost SerializableError in err's chain.
// A nil *HTTPError stored in an error counts as absent.
func asSerializable(err error) (SerializableError, bool) {
	if err == nil {
		return nil, false
	}
	var serr SerializableError
	if !stderrors.As(err, &serr) {
		return nil, false
	}
	if herr, ok := serr.(*HTTPError); ok && herr == nil {
		return nil, false
	}
	return serr, true
}

// GetStatus extracts the HTTP status code from an error.
// Returns StatusInternalServerError if the error is nil or not a SerializableError.
//
// Example:
//
//	w.WriteHeader(httperror.GetStatus(err))
func GetStatus(err error) int {
	if serr, ok := asSerializable(err); ok {
		return serr.StatusCode()
	}
	return StatusInternalServerError
}

// GetCode extracts the error code from an error.
// Returns the INTERNAL_SERVER_ERROR code if the error is nil or not a SerializableError.
func GetCode(err error) string {
	if serr, ok := asSerializable(err); ok {
		return serr.Code()
	}
	return presets[PresetInternalServerError].Code
}

// GetType extracts the error type from an error.
// Returns the INTERNAL_SERVER_ERROR type if the error is nil or not a SerializableError.
func GetType(err error) string {
	if serr, ok := asSerializable(err); ok {
		return serr.Type()
	}
	return presets[PresetInternalServerError].Type
}

// GetSeverity extracts the severity from an error.
// Returns SeverityError if the error is nil or not a SerializableError.
func GetSeverity(err error) Severity {
	if serr, ok := asSerializable(err); ok {
		return serr.Severity()
	}
	return defaultSeverity
}
