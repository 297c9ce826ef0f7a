package httperror

import (
	"encoding/json"
)

// ErrorJSON is the JSON shape of an HTTPError.
//
// Type, Code, Message and Details are always present. The remaining fields
// form the debug view and are left empty unless debug info is requested.
// Trace holds the raw cause and TraceJSON its rendered text; Stack holds the
// call stack captured at construction.
//
// When encoded, the debug view always carries level, status and stack, even
// when they are zero; trace and traceJSON only appear when a cause was attached.
type ErrorJSON struct {
	Type    string   `json:"type"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []Detail `json:"details"`

	Level     Severity `json:"level"`
	Status    int      `json:"status"`
	Trace     any      `json:"trace"`
	TraceJSON string   `json:"traceJSON"`
	Stack     string   `json:"stack"`

	debug    bool
	hasCause bool
}

type clientView struct {
	Type    string   `json:"type"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []Detail `json:"details"`
}

type debugView struct {
	clientView
	Level  Severity `json:"level"`
	Status int      `json:"status"`
	Stack  string   `json:"stack"`
}

type debugCauseView struct {
	debugView
	Trace     any    `json:"trace"`
	TraceJSON string `json:"traceJSON"`
}

// MarshalJSON encodes the client view, or the debug view when the value was
// produced with debug info.
func (r ErrorJSON) MarshalJSON() ([]byte, error) {
	details := r.Details
	if details == nil {
		details = []Detail{}
	}
	client := clientView{Type: r.Type, Code: r.Code, Message: r.Message, Details: details}

	if !r.debug {
		return json.Marshal(client)
	}

	debug := debugView{clientView: client, Level: r.Level, Status: r.Status, Stack: r.Stack}
	if !r.hasCause {
		return json.Marshal(debug)
	}
	return json.Marshal(debugCauseView{debugView: debug, Trace: r.Trace, TraceJSON: r.TraceJSON})
}

// ToJSON returns the JSON projection of the error. It does not modify the
// receiver, and the returned details are a copy.
//
// The raw cause in Trace is passed through as-is; a cause that cannot be
// encoded will make encoding the debug view fail, while TraceJSON always
// holds a printable form. A nil receiver yields nil.
func (e *HTTPError) ToJSON(includeDebugInfo bool) *ErrorJSON {
	if e == nil {
		return nil
	}

	out := &ErrorJSON{
		Type:    e.errType,
		Code:    e.code,
		Message: e.message,
		Details: e.Details(),
	}

	if !includeDebugInfo {
		return out
	}

	out.debug = true
	out.Level = e.severity
	out.Status = e.statusCode
	out.Stack = e.Stack()
	if e.hasCause {
		out.hasCause = true
		out.Trace = e.cause
		out.TraceJSON = e.causeJSON
	}
	return out
}

// MarshalJSON implements json.Marshaler using the client-facing view.
//
// Example:
//
//	err := httperror.FromPreset(httperror.PresetNotFound)
//	data, _ := json.Marshal(err)
//	// {"type":"RESOURCE","code":"NOT_FOUND","message":"The requested resource could not be found.","details":[]}
func (e *HTTPError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.ToJSON(false))
	if err != nil {
		return nil, Wrap(err, PresetInternalServerError, WithMessage("failed to marshal error response"))
	}
	return data, nil
}

// ToJSON converts any error to an ErrorJSON. Returns nil if err is nil.
//
// The first SerializableError in the chain projects itself. Any other error
// is reported through the INTERNAL_SERVER_ERROR preset with err attached as
// the cause, so its text is only visible in the debug view.
//
// Example:
//
//	func writeError(w http.ResponseWriter, err error) {
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(httperror.GetStatus(err))
//	    json.NewEncoder(w).Encode(httperror.ToJSON(err, false))
//	}
func ToJSON(err error, includeDebugInfo bool) *ErrorJSON {
	if err == nil {
		return nil
	}
	if herr, ok := err.(*HTTPError); ok && herr == nil {
		return nil
	}

	if serr, ok := asSerializable(err); ok {
		return serr.ToJSON(includeDebugInfo)
	}

	return Wrap(err, PresetInternalServerError).ToJSON(includeDebugInfo)
}
