// Package http exposes the bot over a channel-connector style REST surface.
// A connector POSTs each inbound message to /api/messages and relays the
// returned activities back to the user.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// Bot is the turn-processing core the server fronts.
type Bot interface {
	ProcessTurn(ctx context.Context, activity domain.Activity) ([]domain.Activity, error)
}

// Server handles the message endpoint.
type Server struct {
	bot    Bot
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the bot.
func NewHandler(bot Bot, opts ...Option) http.Handler {
	server := &Server{
		bot:    bot,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/api/messages", server.handleMessages)
	r.Get("/healthz", server.handleHealth)
	return r
}

// messageRequest is the inbound wire shape. Addressing fields identify the
// conversation and user whose state the turn runs against.
type messageRequest struct {
	ChannelID      string `json:"channel_id"`
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Text           string `json:"text"`
}

type messageResponse struct {
	Replies []domain.Activity `json:"replies"`
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	var body messageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("messages: invalid request body", "err", err)
		return
	}
	if body.ConversationID == "" || body.UserID == "" || body.Text == "" {
		http.Error(w, "conversation_id, user_id and text are required", http.StatusBadRequest)
		return
	}
	if body.ChannelID == "" {
		body.ChannelID = "http"
	}

	activity := domain.Activity{
		Type:           domain.ActivityTypeMessage,
		ChannelID:      body.ChannelID,
		ConversationID: body.ConversationID,
		UserID:         body.UserID,
		Text:           body.Text,
	}

	replies, err := s.bot.ProcessTurn(r.Context(), activity)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		http.Error(w, "Turn processing failed", http.StatusInternalServerError)
		s.logger.Error("messages: turn failed",
			"conversation_id", body.ConversationID,
			"err", err,
		)
		return
	}

	if replies == nil {
		replies = []domain.Activity{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(messageResponse{Replies: replies}); err != nil {
		s.logger.Error("messages: response encode failed", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
