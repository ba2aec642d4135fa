package kinfraglib

import "github.com/sonjaleo/kinfraglib/types"

// Re-export types from the types subpackage.
//
// This file provides a stable, convenient public API for the library's core
// types and interfaces. It uses type aliases to re-export definitions from
// the `types` subpackage, which contains the actual implementations.
//
// This pattern lets subpackages (source, builder, metrics) depend on `types`
// without depending on the root package, while still offering users
// `kinfraglib.Fragment`, `kinfraglib.Library`, etc.
type (
	Fragment = types.Fragment
	Table    = types.Table
	Library  = types.Library
	Series   = types.Series
	Criteria = types.Criteria
	Cutoff   = types.Cutoff
)

// Re-export interfaces from the types subpackage for convenience.
type (
	LibrarySource    = types.LibrarySource
	ValueProvider    = types.ValueProvider
	TableBuilder     = types.TableBuilder
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Criteria constants from the types subpackage.
const (
	CriteriaLess         = types.CriteriaLess
	CriteriaGreater      = types.CriteriaGreater
	CriteriaLessEqual    = types.CriteriaLessEqual
	CriteriaGreaterEqual = types.CriteriaGreaterEqual
	CriteriaEqual        = types.CriteriaEqual
	CriteriaNotEqual     = types.CriteriaNotEqual
)

// NewLibrary creates an empty fragment library. See types.NewLibrary.
func NewLibrary() *Library {
	return types.NewLibrary()
}

// NewTable creates a table from the given rows. See types.NewTable.
func NewTable(rows ...Fragment) Table {
	return types.NewTable(rows...)
}

// ParseCriteria converts an operator symbol into a Criteria.
// See types.ParseCriteria.
func ParseCriteria(s string) (Criteria, error) {
	return types.ParseCriteria(s)
}
