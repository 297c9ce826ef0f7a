package httperror

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// HTTPError is the concrete SerializableError.
//
// Status code, type, code and severity are fixed at construction. The message
// can be replaced with SetMessage, details only grow, and a cause can be
// attached at any time. The mutating methods return the receiver so calls can
// be chained. An HTTPError is not safe for concurrent mutation.
type HTTPError struct {
	statusCode int
	errType    string
	code       string
	severity   Severity
	message    string
	details    []Detail

	cause      any
	causeJSON  string
	hasCause   bool
	causeLoops bool

	stack errors.StackTrace
}

// compile-time guarantee that *HTTPError implements SerializableError
var _ SerializableError = (*HTTPError)(nil)

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if the cause is an error.
func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if err := e.Unwrap(); err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, err)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Unwrap returns the cause when it is an error, for errors.Is and errors.As.
// A cause whose own chain leads back to e is not exposed.
func (e *HTTPError) Unwrap() error {
	if e == nil || e.causeLoops {
		return nil
	}
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// Format implements fmt.Formatter. The %+v verb prints the error followed by
// the stack captured at construction.
func (e *HTTPError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			if e != nil {
				e.stack.Format(s, verb)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.statusCode
}

// Type returns the error type.
func (e *HTTPError) Type() string {
	if e == nil {
		return ""
	}
	return e.errType
}

// Code returns the error code.
func (e *HTTPError) Code() string {
	if e == nil {
		return ""
	}
	return e.code
}

// Severity returns the severity tag.
func (e *HTTPError) Severity() Severity {
	if e == nil {
		return ""
	}
	return e.severity
}

// Message returns the error message.
func (e *HTTPError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Details returns a copy of the details in insertion order.
func (e *HTTPError) Details() []Detail {
	if e == nil {
		return []Detail{}
	}
	out := make([]Detail, len(e.details))
	copy(out, e.details)
	return out
}

// Cause returns the attached cause and whether one was attached.
func (e *HTTPError) Cause() (any, bool) {
	if e == nil {
		return nil, false
	}
	return e.cause, e.hasCause
}

// CauseJSON returns the text rendered for the cause when it was attached.
func (e *HTTPError) CauseJSON() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.causeJSON, e.hasCause
}

// Stack returns the call stack captured at construction, one frame per
// function/file pair.
func (e *HTTPError) Stack() string {
	if e == nil {
		return ""
	}
	return formatStack(e.stack)
}
