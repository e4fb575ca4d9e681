// Package rules implements the recognizer port with offline keyword
// heuristics, so the chat REPL and tests run without a hosted NLU model.
package rules

import (
	"context"
	"regexp"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

var (
	phonePattern = regexp.MustCompile(`(\+\d{1,2}\s)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	timePattern  = regexp.MustCompile(`(?i)\b\d{1,2}(:\d{2})?\s?(am|pm|a\.m\.|p\.m\.)\b|\b\d{1,2}:\d{2}\b`)
)

var greetingWords = []string{"hi", "hello", "hey", "howdy", "good morning", "good afternoon", "good evening"}

var bugReportMarkers = []string{"bug report", "report a bug", "file a bug", "report a problem", "found a bug", "new bug"}

// Recognizer classifies utterances with keyword rules.
type Recognizer struct{}

// New creates a rules recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// Recognize classifies the utterance. It never fails; unmatched input maps
// to the None intent.
func (r *Recognizer) Recognize(ctx context.Context, utterance string) (ports.RecognizerResult, error) {
	text := strings.TrimSpace(strings.ToLower(utterance))
	if text == "" {
		return ports.RecognizerResult{TopIntent: ports.IntentNone}, nil
	}

	if r.isGreeting(text) {
		return ports.RecognizerResult{TopIntent: ports.IntentGreeting, Score: 1}, nil
	}

	if strings.Contains(text, "bug type") || strings.Contains(text, "type of bug") {
		return ports.RecognizerResult{
			TopIntent: ports.IntentQueryBugType,
			Score:     1,
			Entities:  ports.Entities{Bug: scanCategory(text)},
		}, nil
	}

	for _, marker := range bugReportMarkers {
		if strings.Contains(text, marker) {
			return ports.RecognizerResult{
				TopIntent: ports.IntentNewBugReport,
				Score:     1,
				Entities:  r.extractEntities(utterance),
			}, nil
		}
	}

	return ports.RecognizerResult{TopIntent: ports.IntentNone}, nil
}

func (r *Recognizer) isGreeting(text string) bool {
	for _, word := range greetingWords {
		if text == word || strings.HasPrefix(text, word+" ") || strings.HasPrefix(text, word+",") || strings.HasPrefix(text, word+"!") {
			return true
		}
	}
	return false
}

// extractEntities pulls phone, time and category mentions out of a
// bug-report utterance. Anything it misses is gathered by prompts later.
func (r *Recognizer) extractEntities(utterance string) ports.Entities {
	return ports.Entities{
		PhoneNumber:  phonePattern.FindString(utterance),
		CallbackTime: timePattern.FindString(utterance),
		Bug:          scanCategory(strings.ToLower(utterance)),
	}
}

// scanCategory finds the first canonical category label mentioned anywhere
// in the lowered text.
func scanCategory(lowered string) string {
	for _, label := range domain.Categories() {
		if strings.Contains(lowered, strings.ToLower(label)) {
			return label
		}
	}
	return ""
}
