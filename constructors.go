package httperror

// FromPreset creates an HTTPError from the preset registered under key.
// Options override the preset's message and severity and may add details
// and a cause.
//
// An unknown key is not an error: the zero Preset is used and the resulting
// HTTPError carries empty fields.
//
// Example:
//
//	err := httperror.FromPreset(httperror.PresetNotFound)
//	err := httperror.FromPreset(httperror.PresetBadRequest,
//	    httperror.WithDetail("email", "required"),
//	)
func FromPreset(key string, opts ...Option) *HTTPError {
	preset, _ := LookupPreset(key)
	return newHTTPError(preset, collectParams(opts))
}

// NewFromPreset creates an HTTPError from an ad-hoc preset that does not need
// to be registered in the catalog. The preset is used verbatim.
func NewFromPreset(preset Preset, opts ...Option) *HTTPError {
	return newHTTPError(preset, collectParams(opts))
}

// New creates an HTTPError from raw fields.
// Without WithMessage the message is the catalog message for statusCode;
// without WithSeverity the severity is SeverityError.
//
// Example:
//
//	err := httperror.New("BILLING", "CARD_DECLINED", httperror.StatusPaymentRequired)
func New(errType, code string, statusCode int, opts ...Option) *HTTPError {
	preset := Preset{
		Type:    errType,
		Code:    code,
		Status:  statusCode,
		Level:   defaultSeverity,
		Message: StatusMessage(statusCode),
	}
	return newHTTPError(preset, collectParams(opts))
}

// newHTTPError builds the error in a fixed order: preset fields, overrides,
// details, cause, stack. Public constructors must call it directly so the
// captured stack starts at their caller.
func newHTTPError(preset Preset, p params) *HTTPError {
	e := &HTTPError{
		statusCode: preset.Status,
		errType:    preset.Type,
		code:       preset.Code,
		severity:   preset.Level,
		message:    preset.Message,
		details:    []Detail{},
	}

	if p.message != "" {
		e.message = p.message
	}
	if p.severity != "" {
		e.severity = p.severity
	}

	e.AddDetails(p.details)

	if p.hasCause {
		e.AttachCause(p.cause)
	}

	e.stack = captureStack()
	return e
}
