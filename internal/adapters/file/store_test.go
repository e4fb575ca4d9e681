package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/parley/internal/adapters/file"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	tests.RunStateStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_KeysWithSeparators(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	// Conversation keys carry "channel:conversation" and may include slashes.
	key := "web:conv/123"
	require.NoError(t, store.Save(ctx, ports.ScopeConversation, key, json.RawMessage(`{"ok":true}`)))

	got, err := store.Load(ctx, ports.ScopeConversation, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(got))
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, ports.ScopeUser, "u1", json.RawMessage(`{"a":1}`)))
	require.NoError(t, store.Save(ctx, ports.ScopeUser, "u1", json.RawMessage(`{"a":2}`)))

	entries, err := os.ReadDir(filepath.Join(dir, "user"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
