package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpAdapter "github.com/aretw0/parley/pkg/adapters/http"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBot echoes the inbound text, or fails on demand.
type stubBot struct {
	fail bool
	got  domain.Activity
}

func (b *stubBot) ProcessTurn(ctx context.Context, activity domain.Activity) ([]domain.Activity, error) {
	b.got = activity
	if b.fail {
		return nil, errors.New("boom")
	}
	return []domain.Activity{{
		Type:           domain.ActivityTypeMessage,
		ChannelID:      activity.ChannelID,
		ConversationID: activity.ConversationID,
		UserID:         activity.UserID,
		Text:           "echo: " + activity.Text,
	}}, nil
}

func postMessage(t *testing.T, server *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+"/api/messages", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_Messages(t *testing.T) {
	bot := &stubBot{}
	server := httptest.NewServer(httpAdapter.NewHandler(bot))
	defer server.Close()

	resp := postMessage(t, server, `{"channel_id":"web","conversation_id":"c1","user_id":"u1","text":"hi"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Replies []domain.Activity `json:"replies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Replies, 1)
	assert.Equal(t, "echo: hi", body.Replies[0].Text)

	assert.Equal(t, "web", bot.got.ChannelID)
	assert.Equal(t, domain.ActivityTypeMessage, bot.got.Type)
}

func TestServer_DefaultsChannelID(t *testing.T) {
	bot := &stubBot{}
	server := httptest.NewServer(httpAdapter.NewHandler(bot))
	defer server.Close()

	resp := postMessage(t, server, `{"conversation_id":"c1","user_id":"u1","text":"hi"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http", bot.got.ChannelID)
}

func TestServer_RejectsIncompleteRequests(t *testing.T) {
	server := httptest.NewServer(httpAdapter.NewHandler(&stubBot{}))
	defer server.Close()

	for _, body := range []string{
		`{"user_id":"u1","text":"hi"}`,
		`{"conversation_id":"c1","text":"hi"}`,
		`{"conversation_id":"c1","user_id":"u1"}`,
		`not json`,
	} {
		resp := postMessage(t, server, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
	}
}

func TestServer_TurnFailure(t *testing.T) {
	server := httptest.NewServer(httpAdapter.NewHandler(&stubBot{fail: true}))
	defer server.Close()

	resp := postMessage(t, server, `{"conversation_id":"c1","user_id":"u1","text":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	server := httptest.NewServer(httpAdapter.NewHandler(&stubBot{}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
