package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

// EnsureAdmin provisions the bootstrap administrator once. It runs as the
// operator identity, so the regular admin-provisioning rule still applies.
type EnsureAdmin struct {
	store  store.Store
	create *CreateUser
}

func NewEnsureAdmin(s store.Store, create *CreateUser) *EnsureAdmin {
	return &EnsureAdmin{store: s, create: create}
}

// Execute returns the existing user when the email is already taken and
// reports whether a new account was created.
func (uc *EnsureAdmin) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, bool, error) {

	existing, err := usecase.Find(ctx, uc.store.Users(), "email", strings.TrimSpace(in.Email))
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	in.IsAdmin = true
	u, err := uc.create.Execute(ctx, authz.Operator(), authz.AdminProvisioning, in)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}
