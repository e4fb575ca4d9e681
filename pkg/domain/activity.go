package domain

// ActivityTypeMessage is the only activity type the engine processes today.
const ActivityTypeMessage = "message"

// Activity is one unit of transport traffic: a single inbound user message,
// or a single outbound reply. Replies carry text, attachments, or both.
type Activity struct {
	ID             string       `json:"id,omitempty"`
	Type           string       `json:"type"`
	ChannelID      string       `json:"channel_id"`
	ConversationID string       `json:"conversation_id"`
	UserID         string       `json:"user_id"`
	Text           string       `json:"text,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
}

// Attachment is a channel-rendered rich element carried on a reply.
type Attachment struct {
	ContentType string `json:"content_type"`
	Content     any    `json:"content"`
}

// ContentTypeTemplateCard identifies a TemplateCard attachment payload.
const ContentTypeTemplateCard = "application/vnd.parley.card.template"

// TemplateCard is the rich-element payload emitted by the bug-type lookup
// flow: a template kind plus a list of titled elements.
type TemplateCard struct {
	Template string        `json:"template"`
	Elements []CardElement `json:"elements"`
}

// TemplateGeneric is the generic (image + title + subtitle) template kind.
const TemplateGeneric = "generic"

// CardElement is a single element of a TemplateCard.
type CardElement struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
