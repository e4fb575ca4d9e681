package domain

import "time"

// DialogInstance is one frame of the dialog call stack. Behavior lives in the
// registered dialog definition looked up by DialogID; the frame itself is
// plain data so the whole stack can round-trip through JSON between turns.
type DialogInstance struct {
	// DialogID identifies which registered dialog definition owns this frame.
	DialogID string `json:"dialog_id"`

	// State is the frame's private scratch data. For a waterfall this holds
	// the current step index and the values collected across steps.
	State map[string]any `json:"state"`

	// Options is the payload passed when the frame was pushed. It is supplied
	// exactly once, at begin time, and treated as read-only afterwards.
	Options any `json:"options,omitempty"`
}

// DialogState is the persisted dialog stack for one conversation.
// Bottom of the slice is the outermost dialog; the last element is active.
type DialogState struct {
	Stack []DialogInstance `json:"stack"`
}

// ConversationState is the payload stored in the conversation partition.
// The dialog stack lives under a reserved sub-key so arbitrary conversation
// data can never collide with it.
type ConversationState struct {
	Dialog *DialogState     `json:"__dialog_state,omitempty"`
	Data   ConversationData `json:"data"`
}

// ConversationData is the free-form bag scoped to a single conversation.
type ConversationData struct {
	TurnCount     int       `json:"turn_count"`
	ChannelID     string    `json:"channel_id,omitempty"`
	LastMessageAt time.Time `json:"last_message_at,omitzero"`
}

// NewConversationState returns an empty conversation payload with an
// initialized (empty) dialog stack.
func NewConversationState() *ConversationState {
	return &ConversationState{
		Dialog: &DialogState{},
	}
}
