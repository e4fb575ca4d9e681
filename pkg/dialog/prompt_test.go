package dialog_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive begins the prompt and then feeds each input as its own turn,
// round-tripping the state between turns. It returns the final result and
// the replies of the last turn.
func drive(t *testing.T, set *dialog.Set, promptID string, opts dialog.PromptOptions, inputs ...string) (dialog.Result, []domain.Activity) {
	t.Helper()

	state := &domain.DialogState{}
	dc := set.NewContext(newTurn("start"), state)
	result, err := dc.Begin(context.Background(), promptID, opts)
	require.NoError(t, err)

	var tc *turn.Context
	for _, input := range inputs {
		state = roundTrip(t, state)
		tc = newTurn(input)
		dc = set.NewContext(tc, state)
		result, err = dc.Continue(context.Background())
		require.NoError(t, err)
	}
	if tc == nil {
		return result, nil
	}
	return result, tc.Replies()
}

func TestTextPrompt_AcceptsNonEmptyInput(t *testing.T) {
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewTextPrompt("name", nil)))

	result, _ := drive(t, set, "name", dialog.PromptOptions{Prompt: "What is your name?"}, "Ada")
	assert.Equal(t, dialog.StatusComplete, result.Status)
	assert.Equal(t, "Ada", result.Value)
}

func TestTextPrompt_RetriesWithRetryPrompt(t *testing.T) {
	shouty := func(_ context.Context, _ *turn.Context, r dialog.Recognized) bool {
		s, _ := r.Value.(string)
		return len(s) >= 3
	}

	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewTextPrompt("word", shouty)))

	result, replies := drive(t, set, "word",
		dialog.PromptOptions{Prompt: "Give me a word", RetryPrompt: "Longer please"},
		"ab")
	assert.Equal(t, dialog.StatusWaiting, result.Status)
	require.Len(t, replies, 1)
	assert.Equal(t, "Longer please", replies[0].Text)

	result, _ = drive(t, set, "word",
		dialog.PromptOptions{Prompt: "Give me a word", RetryPrompt: "Longer please"},
		"ab", "abc")
	assert.Equal(t, dialog.StatusComplete, result.Status)
	assert.Equal(t, "abc", result.Value)
}

func TestTextPrompt_RetryFallsBackToOriginalPrompt(t *testing.T) {
	never := func(_ context.Context, _ *turn.Context, _ dialog.Recognized) bool { return false }

	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewTextPrompt("p", never)))

	_, replies := drive(t, set, "p", dialog.PromptOptions{Prompt: "The question"}, "whatever")
	require.Len(t, replies, 1)
	assert.Equal(t, "The question", replies[0].Text)
}

func TestDateTimePrompt_AcceptsParsedTime(t *testing.T) {
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewDateTimePrompt("when", nil)))

	result, _ := drive(t, set, "when", dialog.PromptOptions{Prompt: "When?"}, "3:30 PM")
	require.Equal(t, dialog.StatusComplete, result.Status)

	got, ok := result.Value.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestDateTimePrompt_ValidatorGatesAcceptance(t *testing.T) {
	window := dialog.TimeOfDayWindow(9*time.Hour, 17*time.Hour)
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewDateTimePrompt("when", window)))

	opts := dialog.PromptOptions{
		Prompt:      "Please enter in a callback time",
		RetryPrompt: "The value entered must be between the hours of 9 am and 5 pm.",
	}

	result, replies := drive(t, set, "when", opts, "8 AM")
	assert.Equal(t, dialog.StatusWaiting, result.Status)
	require.Len(t, replies, 1)
	assert.Equal(t, "The value entered must be between the hours of 9 am and 5 pm.", replies[0].Text)

	result, _ = drive(t, set, "when", opts, "8 AM", "10 AM")
	require.Equal(t, dialog.StatusComplete, result.Status)
	got, ok := result.Value.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 10, got.Hour())
}

func TestChoicePrompt_MatchesLabelAndIndex(t *testing.T) {
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewChoicePrompt("kind", nil)))

	opts := dialog.PromptOptions{
		Prompt:  "Please enter the type of bug.",
		Choices: []string{"Security", "Crash", "Power"},
	}

	// Case-insensitive label match resolves to the canonical casing.
	result, _ := drive(t, set, "kind", opts, "crash")
	assert.Equal(t, dialog.StatusComplete, result.Status)
	assert.Equal(t, "Crash", result.Value)

	// 1-based index match.
	result, _ = drive(t, set, "kind", opts, "3")
	assert.Equal(t, dialog.StatusComplete, result.Status)
	assert.Equal(t, "Power", result.Value)
}

func TestChoicePrompt_RendersNumberedChoices(t *testing.T) {
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewChoicePrompt("kind", nil)))

	state := &domain.DialogState{}
	tc := newTurn("start")
	dc := set.NewContext(tc, state)
	_, err := dc.Begin(context.Background(), "kind", dialog.PromptOptions{
		Prompt:  "Pick one.",
		Choices: []string{"Security", "Crash"},
	})
	require.NoError(t, err)

	require.Len(t, tc.Replies(), 1)
	assert.Equal(t, "Pick one.\n1. Security\n2. Crash", tc.Replies()[0].Text)
}

func TestChoicePrompt_RejectsOutOfRangeIndex(t *testing.T) {
	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewChoicePrompt("kind", nil)))

	result, _ := drive(t, set, "kind", dialog.PromptOptions{
		Prompt:  "Pick one.",
		Choices: []string{"Security", "Crash"},
	}, "5")
	assert.Equal(t, dialog.StatusWaiting, result.Status)
}

func TestPrompt_MaxAttemptsEndsWithNil(t *testing.T) {
	never := func(_ context.Context, _ *turn.Context, _ dialog.Recognized) bool { return false }

	set := dialog.NewSet()
	require.NoError(t, set.Add(dialog.NewTextPrompt("p", never)))

	opts := dialog.PromptOptions{Prompt: "?", MaxAttempts: 2}

	result, _ := drive(t, set, "p", opts, "a")
	assert.Equal(t, dialog.StatusWaiting, result.Status)

	result, _ = drive(t, set, "p", opts, "a", "b")
	assert.Equal(t, dialog.StatusComplete, result.Status)
	assert.Nil(t, result.Value)
}

func TestPrompt_RetryHookFires(t *testing.T) {
	var retries []int
	hooks := domain.LifecycleHooks{
		OnPromptRetry: func(_ context.Context, e *domain.PromptRetryEvent) {
			retries = append(retries, e.Attempts)
		},
	}

	never := func(_ context.Context, _ *turn.Context, _ dialog.Recognized) bool { return false }
	set := dialog.NewSet(dialog.WithLifecycleHooks(hooks))
	require.NoError(t, set.Add(dialog.NewTextPrompt("p", never)))

	_, _ = drive(t, set, "p", dialog.PromptOptions{Prompt: "?"}, "x", "y")
	assert.Equal(t, []int{1, 2}, retries)
}
