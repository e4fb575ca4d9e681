package dialog_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/parley/pkg/dialog"
	"github.com/stretchr/testify/assert"
)

func atClock(hour, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestTimeOfDayWindow(t *testing.T) {
	window := dialog.TimeOfDayWindow(9*time.Hour, 17*time.Hour)
	ctx := context.Background()

	accept := func(tm time.Time) bool {
		return window(ctx, nil, dialog.Recognized{Succeeded: true, Value: tm})
	}

	// Bounds are inclusive.
	assert.True(t, accept(atClock(9, 0)))
	assert.True(t, accept(atClock(17, 0)))
	assert.True(t, accept(atClock(12, 30)))

	assert.False(t, accept(atClock(8, 59)))
	assert.False(t, accept(atClock(17, 1)))
	assert.False(t, accept(atClock(0, 0)))

	assert.False(t, window(ctx, nil, dialog.Recognized{}))
	assert.False(t, window(ctx, nil, dialog.Recognized{Succeeded: true, Value: "not a time"}))
}

func TestNorthAmericanPhone(t *testing.T) {
	phone := dialog.NorthAmericanPhone()
	ctx := context.Background()

	accept := func(s string) bool {
		return phone(ctx, nil, dialog.Recognized{Succeeded: true, Value: s})
	}

	assert.True(t, accept("555-123-4567"))
	assert.True(t, accept("(555) 123-4567"))
	assert.True(t, accept("+1 555 123 4567"))
	assert.True(t, accept("555.123.4567"))
	assert.True(t, accept("5551234567"))

	assert.False(t, accept("12345"))
	assert.False(t, accept("555-123-456"))
	assert.False(t, accept("call me maybe"))
	assert.False(t, accept(""))
}
