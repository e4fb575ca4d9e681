// Package turn carries the inbound unit of work for one user message and
// collects the outbound replies produced while processing it.
package turn

import (
	"fmt"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/google/uuid"
)

// Context wraps one inbound activity plus the replies emitted for it.
// Replies are buffered and flushed by the transport after the turn ends;
// cancellation/deadline travels on the context.Context passed to each
// engine call, not here.
type Context struct {
	activity domain.Activity
	replies  []domain.Activity
}

// New creates a turn context for an inbound activity.
func New(activity domain.Activity) *Context {
	if activity.Type == "" {
		activity.Type = domain.ActivityTypeMessage
	}
	return &Context{activity: activity}
}

// Activity returns the inbound activity for this turn.
func (t *Context) Activity() domain.Activity {
	return t.activity
}

// ConversationKey derives the stable conversation key (channel + conversation).
func (t *Context) ConversationKey() string {
	return t.activity.ChannelID + ":" + t.activity.ConversationID
}

// UserKey derives the stable user key (channel + user), independent of the
// conversation.
func (t *Context) UserKey() string {
	return t.activity.ChannelID + ":" + t.activity.UserID
}

// SendText queues a plain-text reply.
func (t *Context) SendText(format string, args ...any) {
	t.SendActivity(domain.Activity{
		Text: fmt.Sprintf(format, args...),
	})
}

// SendActivity queues a reply. Conversation addressing and the reply ID are
// filled in from the inbound activity.
func (t *Context) SendActivity(reply domain.Activity) {
	if reply.ID == "" {
		reply.ID = uuid.NewString()
	}
	if reply.Type == "" {
		reply.Type = domain.ActivityTypeMessage
	}
	reply.ChannelID = t.activity.ChannelID
	reply.ConversationID = t.activity.ConversationID
	reply.UserID = t.activity.UserID
	t.replies = append(t.replies, reply)
}

// Replies returns the queued outbound activities in emission order.
func (t *Context) Replies() []domain.Activity {
	return t.replies
}

// Responded reports whether any reply was emitted this turn.
func (t *Context) Responded() bool {
	return len(t.replies) > 0
}
