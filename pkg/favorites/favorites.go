// Package favorites defines storage of the user's favorite names.
// Favorites are record IDs kept in the order they were added.
package favorites

import (
	"context"
	"slices"
	"sync"

	"github.com/namenest/namenest/pkg/names"
)

// Store keeps favorite record IDs.
type Store interface {
	// Get returns favorite IDs in the order they were added.
	Get(ctx context.Context) ([]string, error)

	// Toggle adds the ID if it is absent and removes it otherwise.
	// It returns true if the ID is a favorite after the call.
	Toggle(ctx context.Context, id string) (bool, error)

	// Has reports if the ID is a favorite.
	Has(ctx context.Context, id string) (bool, error)

	// Close releases resources of the store.
	Close() error
}

// Validate returns an error if id cannot be a record ID.
func Validate(id string) error {
	if !names.IsValidID(id) {
		return InvalidIDError(id)
	}
	return nil
}

// Memory is an in-process Store.
type Memory struct {
	mu  sync.Mutex
	ids []string
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get implements Store.
func (m *Memory) Get(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.ids), nil
}

// Toggle implements Store.
func (m *Memory) Toggle(_ context.Context, id string) (bool, error) {
	if err := Validate(id); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := slices.Index(m.ids, id); i >= 0 {
		m.ids = slices.Delete(m.ids, i, i+1)
		return false, nil
	}
	m.ids = append(m.ids, id)
	return true, nil
}

// Has implements Store.
func (m *Memory) Has(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Contains(m.ids, id), nil
}

// Close implements Store.
func (m *Memory) Close() error {
	return nil
}
