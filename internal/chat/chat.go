// Package chat defines the narrow surface the bot shares with a messaging
// transport: an inbound message and the ability to signal typing and send a
// reply. Session establishment, pairing and delivery retries belong to the
// transport implementations.
package chat

import (
	"context"
	"time"
)

// Message is one inbound text message from the user session.
type Message struct {
	ID         string
	From       string
	Text       string
	ReceivedAt time.Time
}

// Replier delivers the bot's side of the conversation for one message.
type Replier interface {
	// SendTyping signals a composing indicator. Best effort; transports
	// without presence just return nil.
	SendTyping(ctx context.Context) error

	// Reply sends one text reply to the message's sender.
	Reply(ctx context.Context, text string) error
}

// Handler consumes an inbound message and replies through r.
type Handler interface {
	Handle(ctx context.Context, msg Message, r Replier)
}
