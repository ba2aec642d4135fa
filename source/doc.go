// Package source provides built-in library source and value provider
// implementations.
//
// A types.LibrarySource supplies the fragment library to be filtered and a
// types.ValueProvider supplies the per-row numeric values the cutoff is
// applied to. The implementations here cover the in-memory cases: a fixed
// library (Static), precomputed value sequences (StaticValues), values
// derived by a property function (FuncValues), and a concurrent registry of
// named libraries (Registry). Anything involving real chemistry tooling or
// file parsing belongs to the caller.
package source
