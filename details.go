package httperror

// AddDetail appends a detail and returns the receiver for chaining.
// Details with the same param are kept; nothing is deduplicated.
//
// Example:
//
//	err := httperror.FromPreset(httperror.PresetBadRequest).
//	    AddDetail("email", "required").
//	    AddDetail("age", "must be positive")
func (e *HTTPError) AddDetail(param string, message any) *HTTPError {
	if e == nil {
		return nil
	}
	e.details = append(e.details, Detail{Param: param, Message: message})
	return e
}

// AddDetails appends each detail in order and returns the receiver.
func (e *HTTPError) AddDetails(details []Detail) *HTTPError {
	if e == nil {
		return nil
	}
	for _, d := range details {
		e.AddDetail(d.Param, d.Message)
	}
	return e
}

// SetMessage replaces the message and returns the receiver.
// It is the only way to change the message after construction.
func (e *HTTPError) SetMessage(message string) *HTTPError {
	if e == nil {
		return nil
	}
	e.message = message
	return e
}

// AttachCause records the value that originally triggered the error and
// renders it immediately: as indented JSON when possible, otherwise as flat
// text. Rendering never fails. A previously attached cause is replaced.
//
// A cause whose error chain leads back to e, such as e itself, is still
// recorded but is neither unwrapped nor printed by Error.
func (e *HTTPError) AttachCause(cause any) *HTTPError {
	if e == nil {
		return nil
	}
	e.cause = cause
	e.hasCause = true
	e.causeLoops = chainReaches(cause, e)
	e.causeJSON = renderCause(cause)
	return e
}
