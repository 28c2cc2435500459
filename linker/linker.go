// Package linker runs the deferred resolution pass (spec C5): callbacks
// registered while pools populate, executed once after every pool has
// finished loading, in a fixed order so resolution never depends on
// attribute order within the source XML.
package linker

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Resolver is a deferred unit of work that reads from already-populated
// pools and writes a computed field back (e.g. StaffGroup.Staves, an
// instrument's claimed-staff set). It must not register further
// resolvers; Run executes the registered set exactly once.
type Resolver func() error

// Registry collects Resolvers during load and executes them in
// lexicographic key order once loading completes.
type Registry struct {
	mu        sync.Mutex
	resolvers map[string]Resolver
	logger    *slog.Logger
}

// New constructs an empty Registry. A nil logger falls back to
// slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{resolvers: make(map[string]Resolver), logger: logger}
}

// Register adds a resolver under key. Registering two resolvers under
// the same key is a programmer error: the second silently replaces the
// first, since keys are expected to be unique per (record kind, cmper)
// pair chosen by the caller.
func (r *Registry) Register(key string, fn Resolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[key] = fn
}

// Run executes every registered resolver in ascending key order and
// returns the first error encountered, wrapped with the key that
// produced it. Resolvers already executed before a failing one keep
// their effects; Run does not roll back partial resolution.
func (r *Registry) Run() error {
	r.mu.Lock()
	keys := make([]string, 0, len(r.resolvers))
	for k := range r.resolvers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r.mu.Unlock()

	for _, k := range keys {
		r.mu.Lock()
		fn := r.resolvers[k]
		r.mu.Unlock()
		if err := fn(); err != nil {
			return fmt.Errorf("linker: resolving %q: %w", k, err)
		}
		r.logger.Debug("resolved", "key", k)
	}
	return nil
}

// Len reports how many resolvers are registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resolvers)
}
