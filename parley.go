package parley

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/parley/internal/flows"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/session"
	"github.com/aretw0/parley/pkg/state"
	"github.com/aretw0/parley/pkg/turn"
)

// Version is the current release version.
const Version = "0.3.0"

// Bot wires the dialog engine, the state service and the recognizer into a
// turn processor. It is safe for concurrent use; turns for the same
// conversation are serialized internally.
type Bot struct {
	set      *dialog.Set
	state    *state.Service
	sessions *session.Manager
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	catalog  domain.Catalog
	locker   ports.DistributedLocker
}

// Option configures the Bot.
type Option func(*Bot)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks for turn, dialog and
// prompt events.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(b *Bot) {
		b.hooks = hooks
	}
}

// WithCatalog overrides the bug-category catalog.
func WithCatalog(catalog domain.Catalog) Option {
	return func(b *Bot) {
		b.catalog = catalog
	}
}

// WithLocker enables distributed turn serialization for deployments running
// multiple processes against a shared store.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(b *Bot) {
		b.locker = locker
	}
}

// New composes a Bot over a state store and a recognizer.
func New(store ports.StateStore, recognizer ports.Recognizer, opts ...Option) (*Bot, error) {
	b := &Bot{
		state:   state.NewService(store),
		logger:  logging.NewNop(),
		catalog: domain.DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(b)
	}

	sessionOpts := []session.Option{session.WithLogger(b.logger)}
	if b.locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(b.locker))
	}
	b.sessions = session.NewManager(sessionOpts...)

	b.set = dialog.NewSet(
		dialog.WithLogger(b.logger),
		dialog.WithLifecycleHooks(b.hooks),
	)
	err := flows.Register(b.set, flows.Deps{
		State:      b.state,
		Recognizer: recognizer,
		Catalog:    b.catalog,
		Logger:     b.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("register dialogs: %w", err)
	}

	return b, nil
}

// State exposes the typed state service, mainly for inspection tooling.
func (b *Bot) State() *state.Service {
	return b.state
}

// ProcessTurn runs one full turn for an inbound activity and returns the
// replies to deliver. State is only persisted when the turn succeeds; a
// recognizer or store failure leaves the conversation as it was.
func (b *Bot) ProcessTurn(ctx context.Context, activity domain.Activity) ([]domain.Activity, error) {
	tc := turn.New(activity)
	convKey := tc.ConversationKey()
	started := time.Now()

	if b.hooks.OnTurnStart != nil {
		b.hooks.OnTurnStart(ctx, &domain.TurnEvent{
			Timestamp:       started,
			ConversationKey: convKey,
		})
	}

	status := "error"
	err := b.sessions.WithLock(ctx, convKey, func(ctx context.Context) error {
		conv, err := b.state.Conversation(ctx, convKey)
		if err != nil {
			return err
		}

		dc := b.set.NewContext(tc, conv.Dialog)
		result, err := dc.Continue(ctx)
		if err != nil {
			return err
		}
		if result.Status == dialog.StatusEmpty {
			result, err = dc.Begin(ctx, flows.DialogMain, nil)
			if err != nil {
				return err
			}
		}
		status = string(result.Status)

		conv.Data.TurnCount++
		conv.Data.ChannelID = activity.ChannelID
		conv.Data.LastMessageAt = time.Now()
		return b.state.SaveConversation(ctx, convKey, conv)
	})

	if b.hooks.OnTurnEnd != nil {
		b.hooks.OnTurnEnd(ctx, &domain.TurnEvent{
			Timestamp:       time.Now(),
			ConversationKey: convKey,
			Status:          status,
			Duration:        time.Since(started),
		})
	}
	if err != nil {
		b.logger.Error("turn failed", "conversation_key", convKey, "err", err)
		return nil, fmt.Errorf("process turn %q: %w", convKey, err)
	}

	b.logger.Debug("turn processed",
		"conversation_key", convKey,
		"status", status,
		"replies", len(tc.Replies()),
	)
	return tc.Replies(), nil
}
