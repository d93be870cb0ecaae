package store

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/hbnb/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Fields is a partial update keyed by column name.
type Fields map[string]any

// Repository is the per-entity storage contract. Lookups by attribute use
// column names.
type Repository[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	GetByAttribute(ctx context.Context, name string, value any) (*T, error)
	ListByAttribute(ctx context.Context, name string, value any) ([]T, error)
	GetAll(ctx context.Context) ([]T, error)

	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
	DeleteByAttribute(ctx context.Context, name string, value any) error
}

type Store interface {
	Users() Repository[models.User]
	Amenities() Repository[models.Amenity]
	Places() Repository[models.Place]
	PlaceAmenities() Repository[models.PlaceAmenity]
	Reviews() Repository[models.Review]

	// Transaction runs fn against a store bound to one all-or-nothing unit.
	// Any error returned by fn rolls the unit back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// Lookup returns (nil, nil) when the record does not exist.
func Lookup[T any](entity *T, err error) (*T, error) {
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}
