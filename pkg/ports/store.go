package ports

import (
	"context"
	"encoding/json"
)

// Scope selects one of the two independent state partitions.
type Scope string

const (
	// ScopeUser holds per-user state, surviving across conversations.
	ScopeUser Scope = "user"
	// ScopeConversation holds per-conversation state, including the
	// serialized dialog stack.
	ScopeConversation Scope = "conversation"
)

// StateStore persists opaque payloads keyed by (scope, key). A save replaces
// the prior payload wholesale (there is no implicit merge) and writes for a
// given key are atomic per turn: last write wins, no partial payload.
type StateStore interface {
	// Load retrieves the payload for a key.
	// Returns domain.ErrNotFound if the key does not exist.
	Load(ctx context.Context, scope Scope, key string) (json.RawMessage, error)

	// Save persists the payload for a key, replacing any prior value.
	Save(ctx context.Context, scope Scope, key string, payload json.RawMessage) error

	// Delete removes the payload for a key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, scope Scope, key string) error
}
