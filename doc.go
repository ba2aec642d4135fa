// Package kinfraglib provides a Go library for filtering pocket-organized
// chemical fragment libraries against numeric property cutoffs.
//
// A fragment library groups fragment records by binding subpocket; each
// pocket carries a table of rows and an aligned sequence of computed property
// values. The Sieve partitions every row into an accepted and a rejected
// library and reports the flat sequence of decisions in traversal order.
//
// # Quick Start
//
// Basic usage with default settings (reject values below zero):
//
//	import "github.com/sonjaleo/kinfraglib"
//
//	cfg := kinfraglib.Config{
//	    CutoffValue:    0.6,
//	    CutoffCriteria: kinfraglib.CriteriaLess,
//	}
//
//	sieve, err := kinfraglib.NewSieve(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sieve.Partition(library, values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	accepted, rejected := result.Accepted, result.Rejected
//
// # Cutoff Semantics
//
// The cutoff criteria names the REJECT condition, not the accept condition:
// with CriteriaLess and cutoff 0.6, rows valued below 0.6 are rejected and
// everything else is accepted. The same polarity applies to CriteriaEqual and
// CriteriaNotEqual ("==" rejects rows equal to the cutoff). This mirrors the
// original KinFragLib filter and downstream callers depend on it; see
// types.Criteria before flipping any comparison.
//
// # Key Features
//
//   - Closed criteria set: six comparison operators dispatched via a lookup
//     table; unknown symbols fail with ErrInvalidCriteria instead of silently
//     classifying nothing
//   - Structural alignment: BindSeries pairs each pocket with its value
//     sequence up front, so misaligned inputs fail with ErrLengthMismatch
//     before any row is classified
//   - Stable accounting: every row lands in exactly one output library and
//     the decision sequence covers every row in traversal order
//   - Pluggable collaborators: library sources, value providers, and table
//     builders are interfaces; in-memory implementations live in the source
//     and builder packages
//
// # Advanced Usage
//
// Driving the full collaborator flow with options:
//
//	import (
//	    "github.com/sonjaleo/kinfraglib"
//	    "github.com/sonjaleo/kinfraglib/source"
//	)
//
//	provider := source.NewFuncValues(func(f kinfraglib.Fragment) float64 {
//	    return heavyAtomCount(f)
//	})
//
//	hooks := &kinfraglib.Hooks{
//	    OnDecision: func(pocket string, row int, f kinfraglib.Fragment, accepted bool) {
//	        // Observe each classification
//	    },
//	}
//
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithHooks(hooks))
//	if err != nil { /* handle */ }
//	result, err := sieve.Run(ctx, source.NewStatic(library), provider)
package kinfraglib
