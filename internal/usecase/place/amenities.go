package place

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/place"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

// checkAmenities dedupes ids and confirms each one exists. Nothing is
// written, so callers run it before any persistence.
func checkAmenities(ctx context.Context, s store.Store, ids []string) ([]string, error) {
	ids = domain.DedupeIDs(ids)
	for _, id := range ids {
		a, err := usecase.Find(ctx, s.Amenities(), "id", id)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, httperr.InvalidInput("amenities", "amenity "+id+" does not exist")
		}
	}
	return ids, nil
}

func attachAmenities(ctx context.Context, tx store.Store, placeID string, ids []string) error {
	for _, id := range ids {
		link := &models.PlaceAmenity{
			ID:        uuid.NewString(),
			PlaceID:   placeID,
			AmenityID: id,
		}
		if err := tx.PlaceAmenities().Add(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

// resolveUserID applies the display attribution rule: empty means owner,
// non-admins may only name themselves or the owner, and the user must exist.
func resolveUserID(
	ctx context.Context,
	s store.Store,
	caller *authz.Caller,
	ownerID string,
	requested string,
) (string, error) {

	if requested == "" {
		return ownerID, nil
	}
	if requested != ownerID && requested != caller.ID() && !caller.Admin() {
		return "", httperr.Forbidden("you cannot attribute this place to another user")
	}
	if _, err := usecase.Load(ctx, s.Users(), "user", requested); err != nil {
		return "", err
	}
	return requested, nil
}

func placeAmenities(ctx context.Context, s store.Store, placeID string) ([]models.Amenity, error) {
	links, err := s.PlaceAmenities().ListByAttribute(ctx, "place_id", placeID)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	out := make([]models.Amenity, 0, len(links))
	for _, link := range links {
		a, err := usecase.Find(ctx, s.Amenities(), "id", link.AmenityID)
		if err != nil {
			return nil, err
		}
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func detail(ctx context.Context, s store.Store, p *models.Place) (*dto.PlaceDetailDTO, error) {
	amenities, err := placeAmenities(ctx, s, p.ID)
	if err != nil {
		return nil, err
	}
	d := dto.NewPlaceDetail(p, amenities)
	return &d, nil
}
