package ports

import "context"

// Intent is the closed set of top intents the router dispatches on.
type Intent string

const (
	IntentGreeting     Intent = "Greeting"
	IntentNewBugReport Intent = "NewBugReport"
	IntentQueryBugType Intent = "QueryBugType"
	IntentNone         Intent = "None"
)

// Entities is the typed entity bag relevant to the bug-report flows.
// All values are raw text; downstream steps parse and validate them.
type Entities struct {
	// Description is the free-text problem description.
	Description string `json:"description,omitempty"`
	// Bug is a bug-category token, nested under the description entity in
	// the hosted model.
	Bug string `json:"bug,omitempty"`
	// PhoneNumber is a callback phone number as written by the user.
	PhoneNumber string `json:"phone_number,omitempty"`
	// CallbackTime is a date/time expression as written by the user.
	CallbackTime string `json:"callback_time,omitempty"`
}

// RecognizerResult is the typed result shape consumed from the NLU
// collaborator. The recognizer and its hosted model are entirely external.
type RecognizerResult struct {
	TopIntent Intent   `json:"top_intent"`
	Score     float64  `json:"score,omitempty"`
	Entities  Entities `json:"entities"`
}

// Recognizer is the external NLU collaborator. A failed call aborts the turn;
// the engine never retries it.
type Recognizer interface {
	Recognize(ctx context.Context, utterance string) (RecognizerResult, error)
}
