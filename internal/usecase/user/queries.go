package user

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type GetUser struct {
	store store.Store
}

func NewGetUser(s store.Store) *GetUser {
	return &GetUser{store: s}
}

func (uc *GetUser) Execute(ctx context.Context, id string) (*models.User, error) {
	return usecase.Load(ctx, uc.store.Users(), "user", id)
}

type ListUsers struct {
	store store.Store
}

func NewListUsers(s store.Store) *ListUsers {
	return &ListUsers{store: s}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]models.User, error) {
	users, err := uc.store.Users().GetAll(ctx)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return users, nil
}
