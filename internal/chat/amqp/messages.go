package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types carried on the reply queue.
const (
	EventTyping = "typing"
	EventReply  = "reply"
)

// InboundMessage is the wire form of one user message arriving on the
// inbound queue.
type InboundMessage struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// OutboundEvent is the wire form of everything the bot emits: a composing
// indicator or a text reply, correlated to the inbound message.
type OutboundEvent struct {
	ID        string    `json:"id"`
	InReplyTo string    `json:"in_reply_to"`
	To        string    `json:"to"`
	Type      string    `json:"type"`
	Text      string    `json:"text,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newOutboundEvent(inReplyTo, to, eventType, text string) OutboundEvent {
	return OutboundEvent{
		ID:        uuid.NewString(),
		InReplyTo: inReplyTo,
		To:        to,
		Type:      eventType,
		Text:      text,
		Timestamp: time.Now(),
	}
}

func (e OutboundEvent) toJSON() ([]byte, error) {
	return json.Marshal(e)
}

func inboundFromJSON(data []byte) (InboundMessage, error) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return InboundMessage{}, err
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return msg, nil
}
