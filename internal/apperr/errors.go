package apperr

// ValidationError is a bad-input error: the caller sent something the
// service cannot act on.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ConfigError is a missing or unusable configuration value. Fatal: mains
// log it and exit nonzero, unlike runtime failures which are logged and
// swallowed.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(msg string) *ConfigError {
	return &ConfigError{Message: msg}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}
