package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/pkg/errs"
)

var ErrEmailIsAlreadyRegistered = errors.New("email is already registered")

// RegisterIdentityCommandHandler creates new accounts.
// Passwords are stored as bcrypt hashes only.
type RegisterIdentityCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewRegisterIdentityCommandHandler creates a handler for account registration.
func NewRegisterIdentityCommandHandler(uowFactory IdentityUoWFactory) RegisterIdentityCommandHandler {
	return RegisterIdentityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Rejects addresses that are already registered.
func (h *RegisterIdentityCommandHandler) Handle(ctx context.Context, cmd RegisterIdentityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	identityRepo := uow.IdentityRepository()

	_, err = identityRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsAlreadyRegistered)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	aggregate, err := identity.NewIdentity(cmd.IdentityID(), cmd.Name(), cmd.Email(), string(hash), cmd.Role())
	if err != nil {
		return err
	}

	if err = identityRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
