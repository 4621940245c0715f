package fingerprint

import "errors"

// Package-specific errors
var (
	// ErrNilRegistry is returned when a Generator is constructed without a registry.
	ErrNilRegistry = errors.New("fingerprint: nil signal registry")

	// ErrDuplicateSignal is returned when a signal name is registered twice.
	ErrDuplicateSignal = errors.New("fingerprint: signal already registered")

	// ErrEmptySignalName is returned when a collector is registered under an empty name.
	ErrEmptySignalName = errors.New("fingerprint: empty signal name")
)
