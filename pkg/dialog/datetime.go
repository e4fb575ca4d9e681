package dialog

import (
	"strings"
	"time"
)

// dateTimeLayouts are tried in order against the normalized input. Time-only
// layouts parse to the zero date, which is fine: the callback-time validator
// inspects only the time-of-day component.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"01/02/2006 3:04 PM",
	"Jan 2 3:04 PM",
	"January 2 3:04 PM",
	"3:04:05 PM",
	"3:04 PM",
	"3 PM",
	"15:04:05",
	"15:04",
	"15",
}

// ParseDateTime attempts to recognize free text as a date/time. It covers
// the common ways people write a callback time ("3:30 pm", "15:00",
// "9 AM"); relative expressions like "tomorrow" are not resolved.
func ParseDateTime(text string) (time.Time, bool) {
	normalized := normalizeDateTime(text)
	if normalized == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDateTime strips a leading "at " and canonicalizes the meridiem
// suffix to " AM"/" PM" so one layout set covers "3pm", "3 pm" and "3 PM".
func normalizeDateTime(text string) string {
	s := strings.TrimSpace(text)
	if len(s) > 3 && strings.EqualFold(s[:3], "at ") {
		s = strings.TrimSpace(s[3:])
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "a.m."):
		s = strings.TrimSpace(s[:len(s)-4]) + " AM"
	case strings.HasSuffix(lower, "p.m."):
		s = strings.TrimSpace(s[:len(s)-4]) + " PM"
	case strings.HasSuffix(lower, "am"):
		s = strings.TrimSpace(s[:len(s)-2]) + " AM"
	case strings.HasSuffix(lower, "pm"):
		s = strings.TrimSpace(s[:len(s)-2]) + " PM"
	}
	return s
}
