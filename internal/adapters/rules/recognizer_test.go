package rules_test

import (
	"context"
	"testing"

	"github.com/aretw0/parley/internal/adapters/rules"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recognize(t *testing.T, utterance string) ports.RecognizerResult {
	t.Helper()
	result, err := rules.New().Recognize(context.Background(), utterance)
	require.NoError(t, err)
	return result
}

func TestRecognizer_Greeting(t *testing.T) {
	for _, utterance := range []string{"hi", "Hello there", "hey!", "Good morning"} {
		result := recognize(t, utterance)
		assert.Equal(t, ports.IntentGreeting, result.TopIntent, "utterance %q", utterance)
	}
}

func TestRecognizer_QueryBugType(t *testing.T) {
	result := recognize(t, "is crash a bug type?")
	assert.Equal(t, ports.IntentQueryBugType, result.TopIntent)
	assert.Equal(t, "Crash", result.Entities.Bug)

	result = recognize(t, "is flerb a bug type?")
	assert.Equal(t, ports.IntentQueryBugType, result.TopIntent)
	assert.Empty(t, result.Entities.Bug)
}

func TestRecognizer_NewBugReport(t *testing.T) {
	result := recognize(t, "I want to file a bug report")
	assert.Equal(t, ports.IntentNewBugReport, result.TopIntent)
	assert.Empty(t, result.Entities.PhoneNumber)
}

func TestRecognizer_NewBugReportExtractsEntities(t *testing.T) {
	result := recognize(t, "new bug: performance issue, call me at 555-123-4567 around 3:30 pm")
	require.Equal(t, ports.IntentNewBugReport, result.TopIntent)
	assert.Equal(t, "555-123-4567", result.Entities.PhoneNumber)
	assert.Equal(t, "3:30 pm", result.Entities.CallbackTime)
	assert.Equal(t, "Performance", result.Entities.Bug)
}

func TestRecognizer_None(t *testing.T) {
	for _, utterance := range []string{"", "what's the weather", "42"} {
		result := recognize(t, utterance)
		assert.Equal(t, ports.IntentNone, result.TopIntent, "utterance %q", utterance)
	}
}
