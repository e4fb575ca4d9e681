package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/parley/internal/adapters/memory"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_UserProfileDefaultsWhenMissing(t *testing.T) {
	svc := state.NewService(memory.NewStore())

	profile, err := svc.UserProfile(context.Background(), "web:u1")
	require.NoError(t, err)
	assert.Equal(t, &domain.UserProfile{}, profile)
}

func TestService_UserProfileRoundTrip(t *testing.T) {
	svc := state.NewService(memory.NewStore())
	ctx := context.Background()

	callback := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	in := &domain.UserProfile{
		Name:         "Ada",
		Description:  "app crashes on save",
		CallbackTime: &callback,
		PhoneNumber:  "555-123-4567",
		Bug:          "Crash",
	}
	require.NoError(t, svc.SaveUserProfile(ctx, "web:u1", in))

	out, err := svc.UserProfile(ctx, "web:u1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestService_ConversationDefaultsWithEmptyStack(t *testing.T) {
	svc := state.NewService(memory.NewStore())

	conv, err := svc.Conversation(context.Background(), "web:c1")
	require.NoError(t, err)
	require.NotNil(t, conv.Dialog)
	assert.Empty(t, conv.Dialog.Stack)
	assert.Zero(t, conv.Data.TurnCount)
}

func TestService_ConversationCarriesDialogStack(t *testing.T) {
	svc := state.NewService(memory.NewStore())
	ctx := context.Background()

	conv := domain.NewConversationState()
	conv.Data.TurnCount = 3
	conv.Dialog.Stack = append(conv.Dialog.Stack, domain.DialogInstance{
		DialogID: "main",
		State:    map[string]any{"step": 1},
	})
	require.NoError(t, svc.SaveConversation(ctx, "web:c1", conv))

	got, err := svc.Conversation(ctx, "web:c1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Data.TurnCount)
	require.Len(t, got.Dialog.Stack, 1)
	assert.Equal(t, "main", got.Dialog.Stack[0].DialogID)
}

func TestService_ClearConversation(t *testing.T) {
	svc := state.NewService(memory.NewStore())
	ctx := context.Background()

	conv := domain.NewConversationState()
	conv.Data.TurnCount = 1
	require.NoError(t, svc.SaveConversation(ctx, "web:c1", conv))
	require.NoError(t, svc.ClearConversation(ctx, "web:c1"))

	got, err := svc.Conversation(ctx, "web:c1")
	require.NoError(t, err)
	assert.Zero(t, got.Data.TurnCount)

	// Clearing a never-written key is fine.
	assert.NoError(t, svc.ClearConversation(ctx, "web:missing"))
}
