package domain

import (
	"context"
	"time"
)

// TurnEvent describes one processed transport turn.
type TurnEvent struct {
	Timestamp       time.Time     `json:"timestamp"`
	ConversationKey string        `json:"conversation_key"`
	Status          string        `json:"status,omitempty"` // waiting, complete, empty, error
	Duration        time.Duration `json:"duration,omitempty"`
}

// DialogEvent describes a stack mutation (begin or end of a frame).
type DialogEvent struct {
	Timestamp       time.Time `json:"timestamp"`
	DialogID        string    `json:"dialog_id"`
	ConversationKey string    `json:"conversation_key,omitempty"`
}

// PromptRetryEvent fires when prompt input fails validation and the prompt
// is re-issued.
type PromptRetryEvent struct {
	Timestamp time.Time `json:"timestamp"`
	DialogID  string    `json:"dialog_id"`
	Attempts  int       `json:"attempts"`
}

// LifecycleHooks defines callbacks for engine observability. Any field may
// be nil; hooks must not block.
type LifecycleHooks struct {
	OnTurnStart   func(context.Context, *TurnEvent)
	OnTurnEnd     func(context.Context, *TurnEvent)
	OnDialogBegin func(context.Context, *DialogEvent)
	OnDialogEnd   func(context.Context, *DialogEvent)
	OnPromptRetry func(context.Context, *PromptRetryEvent)
}
