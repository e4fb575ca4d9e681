// Package memory provides an in-process state store, used by the chat REPL
// and by tests.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]json.RawMessage
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]json.RawMessage),
	}
}

func storageKey(scope ports.Scope, key string) string {
	return string(scope) + "/" + key
}

// Save replaces the payload for the scoped key.
func (s *Store) Save(ctx context.Context, scope ports.Scope, key string, payload json.RawMessage) error {
	// Copy so later caller mutations can't reach stored state.
	copied := make(json.RawMessage, len(payload))
	copy(copied, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[storageKey(scope, key)] = copied
	return nil
}

// Load retrieves the payload for the scoped key.
func (s *Store) Load(ctx context.Context, scope ports.Scope, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.data[storageKey(scope, key)]
	if !ok {
		return nil, domain.ErrNotFound
	}

	// Copy on read so the caller can't mutate stored state by reference.
	copied := make(json.RawMessage, len(payload))
	copy(copied, payload)
	return copied, nil
}

// Delete removes the scoped key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, scope ports.Scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, storageKey(scope, key))
	return nil
}
