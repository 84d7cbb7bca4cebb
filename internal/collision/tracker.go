package collision

import (
	"github.com/arloliu/basen/errs"
)

// Tracker tracks registered scheme names and detects hash collisions.
// It maintains a map of hash-to-name mappings and an ordered list of names
// so callers can enumerate schemes in registration order.
type Tracker struct {
	schemeNames map[uint64]string // Hash → name mapping for collision detection
	nameList    []string          // Ordered list in registration order
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		schemeNames: make(map[uint64]string),
		nameList:    make([]string, 0),
	}
}

// Track records a scheme name with its hash.
// Returns error if:
//   - The scheme name is empty (ErrInvalidSchemeName)
//   - The same name is registered twice (ErrSchemeRegistered)
//   - A different name hashes to the same ID (ErrHashCollision)
//
// Unlike name collisions, hash collisions cannot be resolved here: the 64-bit
// ID is the lookup key, so registration must fail and the caller picks a
// different name.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidSchemeName
	}

	if existingName, exists := t.schemeNames[hash]; exists {
		if existingName == name {
			return errs.ErrSchemeRegistered
		}

		return errs.ErrHashCollision
	}

	t.schemeNames[hash] = name
	t.nameList = append(t.nameList, name)

	return nil
}

// Names returns the ordered list of tracked scheme names.
// The order matches the order in which Track was called.
func (t *Tracker) Names() []string {
	return t.nameList
}

// Count returns the number of tracked schemes.
func (t *Tracker) Count() int {
	return len(t.nameList)
}

// Reset clears all tracked schemes.
// This allows reusing the tracker for a fresh registry.
func (t *Tracker) Reset() {
	// Clear map but preserve capacity to avoid allocations
	for k := range t.schemeNames {
		delete(t.schemeNames, k)
	}
	t.nameList = t.nameList[:0]
}
