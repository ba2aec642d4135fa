package source

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/sonjaleo/kinfraglib/types"
)

// Registry is a concurrent collection of named fragment libraries.
//
// Filtering pipelines often hold several library variants at once (the raw
// library, the deduplicated one, per-filter-step snapshots). Registry gives
// them a thread-safe home without external locking; any registered library
// can be turned into a LibrarySource via Source.
type Registry struct {
	libs *xsync.Map[string, *types.Library]
}

// NewRegistry creates an empty library registry.
func NewRegistry() *Registry {
	return &Registry{
		libs: xsync.NewMap[string, *types.Library](),
	}
}

// Register stores a library under a name, replacing any previous entry.
func (r *Registry) Register(name string, lib *types.Library) {
	r.libs.Store(name, lib)
}

// Lookup returns the library registered under the name.
//
// Returns:
//   - *types.Library: The registered library
//   - bool: false when no library is registered under the name
func (r *Registry) Lookup(name string) (*types.Library, bool) {
	return r.libs.Load(name)
}

// Unregister removes a library and reports whether it was present.
func (r *Registry) Unregister(name string) bool {
	_, present := r.libs.LoadAndDelete(name)

	return present
}

// Names returns the registered library names, in no particular order.
func (r *Registry) Names() []string {
	var names []string
	r.libs.Range(func(name string, _ *types.Library) bool {
		names = append(names, name)

		return true
	})

	return names
}

// Source returns a LibrarySource serving the named library.
//
// Returns:
//   - *Static: Source serving a snapshot of the library
//   - bool: false when no library is registered under the name
func (r *Registry) Source(name string) (*Static, bool) {
	lib, ok := r.libs.Load(name)
	if !ok {
		return nil, false
	}

	return NewStatic(lib), true
}
