// Package testing provides test utilities for the kinfraglib library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Example usage:
//
//	import (
//	    "testing"
//	    fragtest "github.com/sonjaleo/kinfraglib/testing"
//	)
//
//	func TestMyFilter(t *testing.T) {
//	    sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithLogger(fragtest.NewTestLogger(t)))
//	    // ...
//	}
package testing
