package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAppendDeliverableCommandIsNotConstructed = errors.New(
		"AppendDeliverableCommand must be created via NewAppendDeliverableCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
	ErrFileURLIsRequired  = errors.New("file URL is required")
)

// AppendDeliverableCommand represents the seller attaching a file reference to
// an order. Only the reference is stored; file content lives elsewhere.
type AppendDeliverableCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	fileName string
	fileURL  string

	guard guard.ConstructorGuard
}

// NewAppendDeliverableCommand creates a command to attach a deliverable to an order.
func NewAppendDeliverableCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	fileName string,
	fileURL string,
) (AppendDeliverableCommand, error) {
	command := AppendDeliverableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setFileName(fileName),
		command.setFileURL(fileURL),
	); err != nil {
		return AppendDeliverableCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendDeliverableCommand) Validate() error {
	return c.guard.Validate(ErrAppendDeliverableCommandIsNotConstructed)
}

// OrderID returns the order receiving the deliverable.
func (c AppendDeliverableCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identity attaching the deliverable.
func (c AppendDeliverableCommand) ActorID() kernel.UUID {
	return c.actorID
}

// FileName returns the deliverable's display name.
func (c AppendDeliverableCommand) FileName() string {
	return c.fileName
}

// FileURL returns the deliverable's storage location.
func (c AppendDeliverableCommand) FileURL() string {
	return c.fileURL
}

func (c *AppendDeliverableCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AppendDeliverableCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AppendDeliverableCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}

func (c *AppendDeliverableCommand) setFileURL(fileURL string) error {
	if fileURL == "" {
		return ErrFileURLIsRequired
	}

	c.fileURL = fileURL
	return nil
}
