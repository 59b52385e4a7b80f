package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAppendMessageCommandIsNotConstructed = errors.New(
		"AppendMessageCommand must be created via NewAppendMessageCommand constructor",
	)
	ErrMessageTextIsRequired = errors.New("message text is required")
)

// AppendMessageCommand represents a participant posting a message to an
// order's thread.
type AppendMessageCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	senderID kernel.UUID
	text     string

	guard guard.ConstructorGuard
}

// NewAppendMessageCommand creates a command to append a message to an order.
func NewAppendMessageCommand(orderID, senderID kernel.UUID, text string) (AppendMessageCommand, error) {
	command := AppendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setSenderID(senderID),
		command.setText(text),
	); err != nil {
		return AppendMessageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendMessageCommand) Validate() error {
	return c.guard.Validate(ErrAppendMessageCommandIsNotConstructed)
}

// OrderID returns the order whose thread receives the message.
func (c AppendMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderID returns the identity posting the message.
func (c AppendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Text returns the message body.
func (c AppendMessageCommand) Text() string {
	return c.text
}

func (c *AppendMessageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AppendMessageCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *AppendMessageCommand) setText(text string) error {
	if text == "" {
		return ErrMessageTextIsRequired
	}

	c.text = text
	return nil
}
