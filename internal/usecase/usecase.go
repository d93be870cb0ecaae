// Package usecase holds helpers shared by the per-entity use case packages.
package usecase

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

// Storage converts a store error into a BusinessError. A uniqueness
// violation becomes onDuplicate(); when onDuplicate is nil it is treated
// like any other storage failure.
func Storage(err error, onDuplicate func() error) error {
	if err == nil {
		return nil
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	if onDuplicate != nil && errors.Is(err, store.ErrDuplicate) {
		return onDuplicate()
	}
	return httperr.StorageFailure(err)
}

// Load fetches id from repo, mapping a missing record to NotFound(entity).
func Load[T any](
	ctx context.Context,
	repo store.Repository[T],
	entity string,
	id string,
) (*T, error) {

	v, err := repo.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFound(entity)
	}
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return v, nil
}

// Find is Load for attribute lookups; a miss returns (nil, nil).
func Find[T any](
	ctx context.Context,
	repo store.Repository[T],
	name string,
	value any,
) (*T, error) {

	v, err := store.Lookup(repo.GetByAttribute(ctx, name, value))
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return v, nil
}
