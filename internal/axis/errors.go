package axis

// ConfigurationError reports a transform built from missing or malformed
// rectangle bounds. Construction never yields a partial transform alongside
// one of these.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

// InputError reports an invalid coordinate argument passed to a mapping
// call. The transform itself is unaffected; later calls with valid
// arguments still succeed.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }
