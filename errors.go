package gpm

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidLength indicates a non-positive password length.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrInvalidContext indicates a non-positive context width.
	ErrInvalidContext = errors.New("invalid context width")

	// ErrInvalidEmbedding indicates a non-positive embedding width.
	ErrInvalidEmbedding = errors.New("invalid embedding width")

	// ErrInvalidModulus indicates a non-positive feed modulus.
	ErrInvalidModulus = errors.New("invalid feed modulus")

	// ErrEmptyVocabulary indicates the output vocabulary composition is empty.
	ErrEmptyVocabulary = errors.New("empty output vocabulary")

	// ErrEmptySource indicates the entropy feed was given no source indices.
	ErrEmptySource = errors.New("empty entropy source")

	// ErrUnknownCharset indicates a charset name outside the known classes.
	ErrUnknownCharset = errors.New("unknown charset")
)

// ConfigError represents a derivation configuration error.
// It wraps a sentinel error with additional context about the field and value.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidLength, etc.)
	Field string // Configuration field that triggered the error
	Value string // Offending value, when one exists
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Value, e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for invalid configuration scenarios.
func newConfigError(sentinel error, field, value string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Value: value,
	}
}
