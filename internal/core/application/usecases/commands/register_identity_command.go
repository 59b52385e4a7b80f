package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// MinPasswordLength is the shortest accepted plaintext password.
const MinPasswordLength = 8

var (
	ErrRegisterIdentityCommandIsNotConstructed = errors.New(
		"RegisterIdentityCommand must be created via NewRegisterIdentityCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrEmailIsRequired   = errors.New("email is required")
	ErrPasswordIsTooWeak = errors.New("password must be at least 8 characters")
)

// RegisterIdentityCommand represents a new account registration.
// The plaintext password lives only inside this command; the handler hashes it
// before anything touches storage.
type RegisterIdentityCommand struct { //nolint:recvcheck //using for validation
	identityID kernel.UUID
	name       string
	email      string
	password   string
	role       identity.Role

	guard guard.ConstructorGuard
}

// NewRegisterIdentityCommand creates a command to register a new identity.
func NewRegisterIdentityCommand(
	identityID kernel.UUID,
	name string,
	email string,
	password string,
	role identity.Role,
) (RegisterIdentityCommand, error) {
	command := RegisterIdentityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIdentityID(identityID),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
		command.setRole(role),
	); err != nil {
		return RegisterIdentityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterIdentityCommand) Validate() error {
	return c.guard.Validate(ErrRegisterIdentityCommandIsNotConstructed)
}

// IdentityID returns the unique identifier for the new identity.
func (c RegisterIdentityCommand) IdentityID() kernel.UUID {
	return c.identityID
}

// Name returns the display name.
func (c RegisterIdentityCommand) Name() string {
	return c.name
}

// Email returns the e-mail address, lowercased.
func (c RegisterIdentityCommand) Email() string {
	return c.email
}

// Password returns the plaintext password.
func (c RegisterIdentityCommand) Password() string {
	return c.password
}

// Role returns the account role.
func (c RegisterIdentityCommand) Role() identity.Role {
	return c.role
}

func (c *RegisterIdentityCommand) setIdentityID(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}

	c.identityID = identityID
	return nil
}

func (c *RegisterIdentityCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterIdentityCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = strings.ToLower(email)
	return nil
}

func (c *RegisterIdentityCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordIsTooWeak
	}

	c.password = password
	return nil
}

func (c *RegisterIdentityCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
