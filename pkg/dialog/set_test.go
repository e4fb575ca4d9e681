package dialog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTurn(text string) *turn.Context {
	return turn.New(domain.Activity{
		ChannelID:      "test",
		ConversationID: "c1",
		UserID:         "u1",
		Text:           text,
	})
}

// roundTrip forces the dialog state through JSON, the way it travels between
// turns through a real store.
func roundTrip(t *testing.T, state *domain.DialogState) *domain.DialogState {
	t.Helper()
	data, err := json.Marshal(state)
	require.NoError(t, err)
	var out domain.DialogState
	require.NoError(t, json.Unmarshal(data, &out))
	return &out
}

func TestSet_DuplicateRegistration(t *testing.T) {
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewTextPrompt("name", nil)))

	err := set.Add(dialog.NewTextPrompt("name", nil))
	assert.ErrorContains(t, err, `"name" already registered`)
}

func TestContext_BeginUnknownDialog(t *testing.T) {
	set := dialog.NewSet()
	dc := set.NewContext(newTurn("hi"), &domain.DialogState{})

	_, err := dc.Begin(context.Background(), "ghost", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownDialog)
}

func TestContext_ContinueEmptyStack(t *testing.T) {
	set := dialog.NewSet()
	dc := set.NewContext(newTurn("hi"), &domain.DialogState{})

	result, err := dc.Continue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dialog.StatusEmpty, result.Status)
}

func TestContext_BeginEndAreInverse(t *testing.T) {
	set := dialog.NewSet()
	probe := dialog.NewWaterfall("probe",
		func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
			return sc.End(ctx, "done")
		},
	)
	require.NoError(t, set.Add(probe))

	state := &domain.DialogState{}
	dc := set.NewContext(newTurn("go"), state)

	result, err := dc.Begin(context.Background(), "probe", nil)
	require.NoError(t, err)
	assert.Equal(t, dialog.StatusComplete, result.Status)
	assert.Equal(t, "done", result.Value)
	assert.Empty(t, state.Stack)
}
