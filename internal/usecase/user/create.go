package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/user"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type CreateUser struct {
	store  store.Store
	hasher models.PasswordHasher
	audit  *audit.Dispatcher
}

func NewCreateUser(
	s store.Store,
	hasher models.PasswordHasher,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		store:  s,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	caller *authz.Caller,
	path authz.CreationPath,
	in CreateUserInput,
) (*models.User, error) {

	// --------------------------------------------------
	// Authorization
	// --------------------------------------------------
	if err := authz.CanCreateUser(caller, path); err != nil {
		return nil, err
	}
	if in.IsAdmin {
		if err := authz.CanGrantAdmin(caller); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	if err := domain.ValidateRegistration(
		in.FirstName,
		in.LastName,
		in.Email,
		in.Password,
	); err != nil {
		return nil, err
	}

	existing, err := usecase.Find(ctx, uc.store.Users(), "email", in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.DuplicateEmail()
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	u := &models.User{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   in.IsAdmin,
	}
	if err := u.SetPassword(uc.hasher, in.Password); err != nil {
		return nil, httperr.StorageFailure(err)
	}

	if err := uc.store.Users().Add(ctx, u); err != nil {
		return nil, usecase.Storage(err, httperr.DuplicateEmail)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "user_created",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"self_registration": path == authz.SelfRegistration},
	})

	return u, nil
}
