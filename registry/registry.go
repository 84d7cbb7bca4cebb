// Package registry maps human-readable scheme names to codec instances.
//
// Lookups go through 64-bit xxHash IDs of the scheme names, the same
// identification strategy the rest of basen uses. Hash collisions between
// distinct names are detected at registration time and rejected, so a
// successful Lookup is always unambiguous.
package registry

import (
	"fmt"
	"sync"

	"github.com/arloliu/basen/codec"
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/collision"
	"github.com/arloliu/basen/internal/hash"
)

// Registry is a thread-safe mapping from scheme names to codec instances.
//
// Registration is expected at startup; lookups dominate afterwards, so the
// registry uses a read-write lock and O(1) hash-keyed access.
type Registry struct {
	mu      sync.RWMutex
	codecs  map[uint64]*codec.Codec
	tracker *collision.Tracker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		codecs:  make(map[uint64]*codec.Codec),
		tracker: collision.NewTracker(),
	}
}

// Register adds a codec under the given scheme name.
//
// Returns:
//   - ErrInvalidSchemeName for an empty name or nil codec
//   - ErrSchemeRegistered if the name is already registered
//   - ErrHashCollision if a different name hashes to the same 64-bit ID
func (r *Registry) Register(name string, c *codec.Codec) error {
	if c == nil {
		return fmt.Errorf("%w: nil codec for %q", errs.ErrInvalidSchemeName, name)
	}

	id := hash.ID(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.tracker.Track(name, id); err != nil {
		return fmt.Errorf("%w: scheme %q", err, name)
	}
	r.codecs[id] = c

	return nil
}

// Lookup returns the codec registered under the given scheme name.
// Returns ErrSchemeNotFound if no codec is registered under the name.
func (r *Registry) Lookup(name string) (*codec.Codec, error) {
	return r.LookupID(hash.ID(name))
}

// LookupID returns the codec registered under the given scheme ID.
// The ID is the xxHash64 of the scheme name (see ID).
func (r *Registry) LookupID(id uint64) (*codec.Codec, error) {
	r.mu.RLock()
	c, ok := r.codecs[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: id 0x%016x", errs.ErrSchemeNotFound, id)
	}

	return c, nil
}

// ID computes the 64-bit scheme ID for a name. The same name always produces
// the same ID, so callers can pre-compute IDs for frequently-used schemes and
// use LookupID directly.
func ID(name string) uint64 {
	return hash.ID(name)
}

// Schemes returns the registered scheme names in registration order.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.tracker.Names()
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// Count returns the number of registered schemes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tracker.Count()
}
