package config

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by the error Load returns for a missing file.
var ErrNotFound = errors.New("config file not found")

// ConfigurationError reports a config file that cannot be read, parsed or
// accepted.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NumericFormatError reports a search key whose value is not an integer in
// the key's range.
type NumericFormatError struct {
	Path  string
	Key   string
	Value any
	Err   error
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("config %s: key %q: %v is not a valid number: %v", e.Path, e.Key, e.Value, e.Err)
}

func (e *NumericFormatError) Unwrap() error { return e.Err }
