package types

import "errors"

// Sentinel errors for the kinfraglib library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).

// Sieve errors - Public API errors returned by the Sieve component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidCriteria is returned when a cutoff criteria symbol is not one
	// of the six supported comparison operators.
	ErrInvalidCriteria = errors.New("invalid cutoff criteria")

	// ErrLengthMismatch is returned when the value sequences do not align with
	// the fragment library: either the number of sequences differs from the
	// number of pockets, or an inner sequence differs from its pocket's row count.
	ErrLengthMismatch = errors.New("value sequence length mismatch")

	// ErrEmptyLibrary is returned when a fragment library with no pockets is
	// passed to an operation that requires at least one.
	ErrEmptyLibrary = errors.New("fragment library is empty")

	// ErrLibrarySourceRequired is returned when a library source is nil.
	ErrLibrarySourceRequired = errors.New("library source is required")

	// ErrValueProviderRequired is returned when a value provider is nil.
	ErrValueProviderRequired = errors.New("value provider is required")

	// ErrTableBuilderRequired is returned when a table builder is nil.
	ErrTableBuilderRequired = errors.New("table builder is required")
)
