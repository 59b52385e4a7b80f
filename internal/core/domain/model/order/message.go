package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Message is a single entry in an order's conversation thread. Messages are
// append-only: once added they are never edited or removed. The timestamp is
// assigned by the server, not the client.
type Message struct {
	senderID kernel.UUID
	text     string
	sentAt   time.Time
}

// newMessage creates a message after the aggregate has verified the sender is
// a participant of the order.
func newMessage(senderID kernel.UUID, text string, sentAt time.Time) (Message, error) {
	if err := senderID.Validate(); err != nil {
		return Message{}, err
	}
	if text == "" {
		return Message{}, errs.NewValueIsRequiredError("text")
	}
	if sentAt.IsZero() {
		return Message{}, errs.NewValueIsRequiredError("sentAt")
	}

	return Message{senderID: senderID, text: text, sentAt: sentAt}, nil
}

// RestoreMessage reconstructs a message from persistent storage.
func RestoreMessage(senderID kernel.UUID, text string, sentAt time.Time) (Message, error) {
	return newMessage(senderID, text, sentAt)
}

// SenderID returns the identity that wrote the message.
func (m Message) SenderID() kernel.UUID {
	return m.senderID
}

// Text returns the message body.
func (m Message) Text() string {
	return m.text
}

// SentAt returns the server-assigned timestamp.
func (m Message) SentAt() time.Time {
	return m.sentAt
}
