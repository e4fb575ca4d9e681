package dialog

import (
	"context"
	"regexp"
	"time"

	"github.com/aretw0/parley/pkg/turn"
)

// phonePattern matches North-American-style phone numbers: optional leading
// country code, optional parentheses around the area code, and space, dot or
// dash separators around exactly ten significant digits.
var phonePattern = regexp.MustCompile(`^(\+\d{1,2}\s)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)

// TimeOfDayWindow returns a validator accepting timestamps whose time-of-day
// falls within [start, end] inclusive, expressed as durations since
// midnight. The date and timezone components are accepted as given: the
// window is checked against the wall-clock time the value carries.
func TimeOfDayWindow(start, end time.Duration) Validator {
	return func(_ context.Context, _ *turn.Context, recognized Recognized) bool {
		if !recognized.Succeeded {
			return false
		}
		t, ok := recognized.Value.(time.Time)
		if !ok {
			return false
		}
		sinceMidnight := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second
		return sinceMidnight >= start && sinceMidnight <= end
	}
}

// NorthAmericanPhone returns a validator accepting phone numbers shaped like
// "555-123-4567", "(555) 123-4567" or "+1 555 123 4567".
func NorthAmericanPhone() Validator {
	return func(_ context.Context, _ *turn.Context, recognized Recognized) bool {
		if !recognized.Succeeded {
			return false
		}
		s, ok := recognized.Value.(string)
		if !ok {
			return false
		}
		return phonePattern.MatchString(s)
	}
}
