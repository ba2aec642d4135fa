package source

import (
	"context"
	"sync"

	"github.com/sonjaleo/kinfraglib/types"
)

// Static implements a library source with a fixed in-memory fragment library.
type Static struct {
	mu  sync.RWMutex
	lib *types.Library
}

var _ types.LibrarySource = (*Static)(nil)

// NewStatic creates a new static library source.
//
// The source returns the same library until Update is called. Useful for
// testing and for pipelines that assemble the library up front.
//
// Parameters:
//   - lib: Fragment library to serve (nil is treated as empty)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	lib := types.NewLibrary()
//	lib.Append("AP", fragments...)
//	src := source.NewStatic(lib)
//	result, err := sieve.Run(ctx, src, provider)
func NewStatic(lib *types.Library) *Static {
	if lib == nil {
		lib = types.NewLibrary()
	}

	return &Static{lib: lib}
}

// ListFragments returns a copy of the static library.
//
// Returns:
//   - *types.Library: Copy of the library, safe for the caller to traverse
//   - error: Always nil (never fails)
func (s *Static) ListFragments(_ context.Context) (*types.Library, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lib.Clone(), nil
}

// Update replaces the library served by the source.
//
// This allows the static source to simulate library changes between filter
// runs, which is useful for testing multi-step filtering pipelines.
//
// Parameters:
//   - lib: New library (nil is treated as empty)
func (s *Static) Update(lib *types.Library) {
	if lib == nil {
		lib = types.NewLibrary()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lib = lib
}
