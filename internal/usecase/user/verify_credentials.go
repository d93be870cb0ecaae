package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type VerifyCredentials struct {
	store  store.Store
	hasher models.PasswordHasher
}

func NewVerifyCredentials(
	s store.Store,
	hasher models.PasswordHasher,
) *VerifyCredentials {
	return &VerifyCredentials{
		store:  s,
		hasher: hasher,
	}
}

// Execute returns the matching user. Unknown email and wrong password
// fail the same way.
func (uc *VerifyCredentials) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, httperr.InvalidCredentials()
	}

	u, err := usecase.Find(ctx, uc.store.Users(), "email", email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.CheckPassword(uc.hasher, password) {
		return nil, httperr.InvalidCredentials()
	}

	return u, nil
}
