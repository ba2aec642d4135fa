package kinfraglib

import "github.com/sonjaleo/kinfraglib/types"

// Sentinel errors returned by the Sieve.
//
// These alias the definitions in the types subpackage so that errors.Is
// works regardless of which package the caller imported.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidCriteria is returned when the cutoff criteria is not one of
	// the six supported comparison operators.
	ErrInvalidCriteria = types.ErrInvalidCriteria

	// ErrLengthMismatch is returned when value sequences do not align with
	// the fragment library.
	ErrLengthMismatch = types.ErrLengthMismatch

	// ErrEmptyLibrary is returned when the fragment library has no pockets.
	ErrEmptyLibrary = types.ErrEmptyLibrary

	// ErrLibrarySourceRequired is returned when a library source is nil.
	ErrLibrarySourceRequired = types.ErrLibrarySourceRequired

	// ErrValueProviderRequired is returned when a value provider is nil.
	ErrValueProviderRequired = types.ErrValueProviderRequired

	// ErrTableBuilderRequired is returned when a table builder is nil.
	ErrTableBuilderRequired = types.ErrTableBuilderRequired
)
