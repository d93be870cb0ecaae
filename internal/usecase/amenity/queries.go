package amenity

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type GetAmenity struct {
	store store.Store
}

func NewGetAmenity(s store.Store) *GetAmenity {
	return &GetAmenity{store: s}
}

func (uc *GetAmenity) Execute(ctx context.Context, id string) (*models.Amenity, error) {
	return usecase.Load(ctx, uc.store.Amenities(), "amenity", id)
}

type ListAmenities struct {
	store store.Store
}

func NewListAmenities(s store.Store) *ListAmenities {
	return &ListAmenities{store: s}
}

func (uc *ListAmenities) Execute(ctx context.Context) ([]models.Amenity, error) {
	amenities, err := uc.store.Amenities().GetAll(ctx)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return amenities, nil
}
