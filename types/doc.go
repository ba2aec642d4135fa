// Package types contains the core data model and collaborator interfaces for
// the kinfraglib fragment filter.
//
// The root kinfraglib package re-exports the most commonly used definitions
// via type aliases, so most callers never import this package directly. It
// exists so that subpackages (source, builder, metrics, internal/logging) can
// share the model without depending on the root package.
package types
