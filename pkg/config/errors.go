package config

import "errors"

var (
	// ErrNilPointer is returned when Load is called with a nil target.
	ErrNilPointer = errors.New("config target must be a non-nil pointer")
	// ErrParsingConfig wraps environment parsing failures.
	ErrParsingConfig = errors.New("failed to parse config from environment")
)
