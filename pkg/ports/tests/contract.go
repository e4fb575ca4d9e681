// Package tests holds the behavioral contract shared by all StateStore
// adapters. Each adapter's test suite calls RunStateStoreContract against a
// fresh store instance.
package tests

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract verifies a StateStore implementation against the
// semantics the engine relies on: not-found defaults, whole-payload
// replacement, scope independence, and load/save idempotence.
func RunStateStoreContract(t *testing.T, store ports.StateStore) {
	ctx := context.Background()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Load(ctx, ports.ScopeUser, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		payload := json.RawMessage(`{"name":"Ada","turns":3}`)
		require.NoError(t, store.Save(ctx, ports.ScopeUser, "u1", payload))

		got, err := store.Load(ctx, ports.ScopeUser, "u1")
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	})

	t.Run("save replaces the whole payload", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, ports.ScopeUser, "u2", json.RawMessage(`{"a":1,"b":2}`)))
		require.NoError(t, store.Save(ctx, ports.ScopeUser, "u2", json.RawMessage(`{"a":9}`)))

		got, err := store.Load(ctx, ports.ScopeUser, "u2")
		require.NoError(t, err)
		// No implicit merge: "b" must be gone.
		assert.JSONEq(t, `{"a":9}`, string(got))
	})

	t.Run("scopes are independent partitions", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, ports.ScopeUser, "same-key", json.RawMessage(`{"scope":"user"}`)))
		require.NoError(t, store.Save(ctx, ports.ScopeConversation, "same-key", json.RawMessage(`{"scope":"conversation"}`)))

		user, err := store.Load(ctx, ports.ScopeUser, "same-key")
		require.NoError(t, err)
		conv, err := store.Load(ctx, ports.ScopeConversation, "same-key")
		require.NoError(t, err)
		assert.JSONEq(t, `{"scope":"user"}`, string(user))
		assert.JSONEq(t, `{"scope":"conversation"}`, string(conv))
	})

	t.Run("load then save unchanged is idempotent", func(t *testing.T) {
		payload := json.RawMessage(`{"description":"app crashes","phone_number":"555-123-4567"}`)
		require.NoError(t, store.Save(ctx, ports.ScopeUser, "u3", payload))

		loaded, err := store.Load(ctx, ports.ScopeUser, "u3")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, ports.ScopeUser, "u3", loaded))

		again, err := store.Load(ctx, ports.ScopeUser, "u3")
		require.NoError(t, err)
		assert.JSONEq(t, string(loaded), string(again))
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, ports.ScopeConversation, "c1", json.RawMessage(`{}`)))
		require.NoError(t, store.Delete(ctx, ports.ScopeConversation, "c1"))

		_, err := store.Load(ctx, ports.ScopeConversation, "c1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// Deleting a missing key is not an error.
		assert.NoError(t, store.Delete(ctx, ports.ScopeConversation, "c1"))
	})
}
