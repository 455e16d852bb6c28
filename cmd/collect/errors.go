package main

import "errors"

// Sentinel errors returned by collect commands.
var (
	// ErrReadInput is returned when the input file or stdin cannot be read.
	ErrReadInput = errors.New("collect: cannot read input")

	// ErrDecodeInput is returned when the input is not valid JSON.
	ErrDecodeInput = errors.New("collect: cannot decode input")

	// ErrInvalidLogLevel is returned for a log level slog does not know.
	ErrInvalidLogLevel = errors.New("collect: invalid log level")

	// ErrEmptyField is returned when a field argument is the empty string.
	ErrEmptyField = errors.New("collect: field name must not be empty")
)
