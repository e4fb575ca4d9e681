package turn_test

import (
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Keys(t *testing.T) {
	tc := turn.New(domain.Activity{
		ChannelID:      "web",
		ConversationID: "c42",
		UserID:         "u7",
		Text:           "hi",
	})

	assert.Equal(t, "web:c42", tc.ConversationKey())
	assert.Equal(t, "web:u7", tc.UserKey())
}

func TestContext_RepliesCarryAddressing(t *testing.T) {
	tc := turn.New(domain.Activity{
		ChannelID:      "web",
		ConversationID: "c42",
		UserID:         "u7",
		Text:           "hi",
	})

	assert.False(t, tc.Responded())
	tc.SendText("hello %s", "there")
	tc.SendActivity(domain.Activity{Text: "second"})

	replies := tc.Replies()
	require.Len(t, replies, 2)
	assert.True(t, tc.Responded())

	assert.Equal(t, "hello there", replies[0].Text)
	for _, reply := range replies {
		assert.NotEmpty(t, reply.ID)
		assert.Equal(t, domain.ActivityTypeMessage, reply.Type)
		assert.Equal(t, "web", reply.ChannelID)
		assert.Equal(t, "c42", reply.ConversationID)
		assert.Equal(t, "u7", reply.UserID)
	}
}
