package place

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type GetPlace struct {
	store store.Store
}

func NewGetPlace(s store.Store) *GetPlace {
	return &GetPlace{store: s}
}

func (uc *GetPlace) Execute(ctx context.Context, id string) (*dto.PlaceDetailDTO, error) {
	p, err := usecase.Load(ctx, uc.store.Places(), "place", id)
	if err != nil {
		return nil, err
	}
	return detail(ctx, uc.store, p)
}

type ListPlaces struct {
	store store.Store
}

func NewListPlaces(s store.Store) *ListPlaces {
	return &ListPlaces{store: s}
}

// Execute resolves amenities for every place with three reads in total.
func (uc *ListPlaces) Execute(ctx context.Context) ([]dto.PlaceDetailDTO, error) {
	places, err := uc.store.Places().GetAll(ctx)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	links, err := uc.store.PlaceAmenities().GetAll(ctx)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	amenities, err := uc.store.Amenities().GetAll(ctx)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}

	byID := make(map[string]models.Amenity, len(amenities))
	for _, a := range amenities {
		byID[a.ID] = a
	}
	byPlace := make(map[string][]models.Amenity)
	for _, link := range links {
		if a, ok := byID[link.AmenityID]; ok {
			byPlace[link.PlaceID] = append(byPlace[link.PlaceID], a)
		}
	}

	out := make([]dto.PlaceDetailDTO, 0, len(places))
	for i := range places {
		out = append(out, dto.NewPlaceDetail(&places[i], byPlace[places[i].ID]))
	}
	return out, nil
}
