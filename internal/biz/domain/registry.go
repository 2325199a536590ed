package domain

import (
	"errors"
	"strings"
	"sync"
)

var (
	// ErrAlreadyExists is returned when adding a source that is already registered.
	ErrAlreadyExists = errors.New("source already registered")
	// ErrNotFound is returned when removing a source that is not registered.
	ErrNotFound = errors.New("source not registered")
)

// SourceRegistry holds the ordered set of watched source chats.
// Handlers run on separate goroutines, so all access goes through the mutex.
type SourceRegistry struct {
	mu  sync.Mutex
	ids []string
}

// NewSourceRegistry creates a registry seeded with the given identifiers.
// Duplicates and empty entries in the seed are dropped, first occurrence wins.
func NewSourceRegistry(ids []string) *SourceRegistry {
	r := &SourceRegistry{}
	for _, id := range ids {
		id = NormalizeID(id)
		if id == "" || r.contains(id) {
			continue
		}
		r.ids = append(r.ids, id)
	}
	return r
}

// NormalizeID canonicalizes a chat or user identifier for comparison.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

func (r *SourceRegistry) contains(id string) bool {
	for _, v := range r.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends a source, rejecting duplicates.
func (r *SourceRegistry) Add(id string) error {
	id = NormalizeID(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.contains(id) {
		return ErrAlreadyExists
	}
	r.ids = append(r.ids, id)
	return nil
}

// Remove deletes a source, preserving the order of the remaining entries.
func (r *SourceRegistry) Remove(id string) error {
	id = NormalizeID(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Contains reports membership of a normalized identifier.
func (r *SourceRegistry) Contains(id string) bool {
	id = NormalizeID(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contains(id)
}

// List returns a copy of the registered identifiers in insertion order.
func (r *SourceRegistry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of registered sources.
func (r *SourceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// Replace swaps the whole registry content, used when loading persisted state.
func (r *SourceRegistry) Replace(ids []string) {
	fresh := NewSourceRegistry(ids)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = fresh.ids
}
