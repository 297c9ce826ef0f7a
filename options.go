package httperror

// Option customizes an HTTPError at construction time.
type Option func(*params)

// params collects the options passed to a constructor.
// Empty strings and nil causes count as "not supplied".
type params struct {
	message  string
	severity Severity
	details  []Detail
	cause    any
	hasCause bool
}

// WithMessage overrides the default message of the preset.
func WithMessage(message string) Option {
	return func(p *params) {
		p.message = message
	}
}

// WithSeverity overrides the default severity of the preset.
func WithSeverity(severity Severity) Option {
	return func(p *params) {
		p.severity = severity
	}
}

// WithDetail adds a single detail. Details are appended in the order the options are given.
func WithDetail(param string, message any) Option {
	return func(p *params) {
		p.details = append(p.details, Detail{Param: param, Message: message})
	}
}

// WithDetails adds several details, preserving their order.
func WithDetails(details ...Detail) Option {
	return func(p *params) {
		p.details = append(p.details, details...)
	}
}

// WithCause attaches the value that originally triggered the error.
// A nil cause is ignored.
func WithCause(cause any) Option {
	return func(p *params) {
		if cause == nil {
			return
		}
		p.cause = cause
		p.hasCause = true
	}
}

func collectParams(opts []Option) params {
	var p params
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}
