package dialog

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
)

// Set is the process-wide registry of dialog definitions. It is composed once
// at startup; definitions are immutable after registration since other
// dialogs may already reference them by name.
type Set struct {
	dialogs map[string]Dialog
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
}

// SetOption configures a Set.
type SetOption func(*Set)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) SetOption {
	return func(s *Set) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks fired on stack mutations.
func WithLifecycleHooks(hooks domain.LifecycleHooks) SetOption {
	return func(s *Set) {
		s.hooks = hooks
	}
}

// NewSet creates an empty dialog registry.
func NewSet(opts ...SetOption) *Set {
	s := &Set{
		dialogs: make(map[string]Dialog),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a dialog definition. Fails if the ID is already taken.
func (s *Set) Add(d Dialog) error {
	if _, exists := s.dialogs[d.ID()]; exists {
		return fmt.Errorf("dialog %q already registered", d.ID())
	}
	s.dialogs[d.ID()] = d
	return nil
}

// Lookup returns the definition registered under id.
func (s *Set) Lookup(id string) (Dialog, bool) {
	d, ok := s.dialogs[id]
	return d, ok
}

// NewContext binds the registry to one turn and one conversation's persisted
// dialog stack, producing the stack interpreter for that turn.
func (s *Set) NewContext(tc *turn.Context, state *domain.DialogState) *Context {
	return &Context{
		set:   s,
		turn:  tc,
		state: state,
	}
}
