// Package state provides typed access to the scoped durable store.
//
// The store moves opaque JSON payloads; this service owns the mapping
// between those payloads and the domain types, and supplies zero-value
// defaults for keys never written.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Service reads and writes the per-user profile and per-conversation state.
type Service struct {
	store ports.StateStore
}

// NewService wraps a state store.
func NewService(store ports.StateStore) *Service {
	return &Service{store: store}
}

// Store returns the underlying state store.
func (s *Service) Store() ports.StateStore {
	return s.store
}

// UserProfile loads the profile for a user key. A key never written yields a
// zero-value profile, not an error.
func (s *Service) UserProfile(ctx context.Context, userKey string) (*domain.UserProfile, error) {
	payload, err := s.store.Load(ctx, ports.ScopeUser, userKey)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.UserProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user profile %q: %w", userKey, err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("decode user profile %q: %w", userKey, err)
	}
	return &profile, nil
}

// SaveUserProfile replaces the stored profile for a user key.
func (s *Service) SaveUserProfile(ctx context.Context, userKey string, profile *domain.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode user profile %q: %w", userKey, err)
	}
	if err := s.store.Save(ctx, ports.ScopeUser, userKey, payload); err != nil {
		return fmt.Errorf("save user profile %q: %w", userKey, err)
	}
	return nil
}

// Conversation loads the state for a conversation key, defaulting to a fresh
// state with an empty dialog stack. The returned state always carries a
// non-nil dialog stack so callers can hand it straight to the engine.
func (s *Service) Conversation(ctx context.Context, convKey string) (*domain.ConversationState, error) {
	payload, err := s.store.Load(ctx, ports.ScopeConversation, convKey)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewConversationState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation %q: %w", convKey, err)
	}

	var state domain.ConversationState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("decode conversation %q: %w", convKey, err)
	}
	if state.Dialog == nil {
		state.Dialog = &domain.DialogState{}
	}
	return &state, nil
}

// SaveConversation replaces the stored state for a conversation key,
// including the dialog stack carried within it.
func (s *Service) SaveConversation(ctx context.Context, convKey string, state *domain.ConversationState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode conversation %q: %w", convKey, err)
	}
	if err := s.store.Save(ctx, ports.ScopeConversation, convKey, payload); err != nil {
		return fmt.Errorf("save conversation %q: %w", convKey, err)
	}
	return nil
}

// ClearConversation drops all conversation-scoped state, dialog stack
// included. Clearing a key never written is not an error.
func (s *Service) ClearConversation(ctx context.Context, convKey string) error {
	return s.store.Delete(ctx, ports.ScopeConversation, convKey)
}
