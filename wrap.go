package httperror

// Wrap creates an HTTPError from the preset registered under key with err
// attached as its cause. The wrapped error stays reachable through errors.Is
// and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	user, err := repo.Get(ctx, id)
//	if err != nil {
//	    return httperror.Wrap(err, httperror.PresetNotFound, httperror.WithDetail("id", id))
//	}
func Wrap(err error, key string, opts ...Option) SerializableError {
	if err == nil {
		return nil
	}

	preset, _ := LookupPreset(key)
	p := collectParams(opts)
	p.cause = err
	p.hasCause = true

	return newHTTPError(preset, p)
}
