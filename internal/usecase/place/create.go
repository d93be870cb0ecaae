package place

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/place"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type CreatePlace struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewCreatePlace(s store.Store, audit *audit.Dispatcher) *CreatePlace {
	return &CreatePlace{store: s, audit: audit}
}

func (uc *CreatePlace) Execute(
	ctx context.Context,
	caller *authz.Caller,
	in CreatePlaceInput,
) (*dto.PlaceDetailDTO, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	title := strings.TrimSpace(in.Title)
	if err := domain.Required(title, in.Price, in.Latitude, in.Longitude); err != nil {
		return nil, err
	}
	if err := domain.ValidatePrice(*in.Price); err != nil {
		return nil, err
	}
	if err := domain.ValidateLatitude(*in.Latitude); err != nil {
		return nil, err
	}
	if err := domain.ValidateLongitude(*in.Longitude); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Ownership
	// --------------------------------------------------
	ownerID, err := authz.ResolvePlaceOwner(caller, strings.TrimSpace(in.OwnerID))
	if err != nil {
		return nil, err
	}
	if _, err := usecase.Load(ctx, uc.store.Users(), "user", ownerID); err != nil {
		return nil, err
	}
	userID, err := resolveUserID(ctx, uc.store, caller, ownerID, strings.TrimSpace(in.UserID))
	if err != nil {
		return nil, err
	}

	amenityIDs, err := checkAmenities(ctx, uc.store, in.Amenities)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	p := &models.Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Price:       *in.Price,
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		OwnerID:     ownerID,
		UserID:      userID,
	}

	err = uc.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.Places().Add(ctx, p); err != nil {
			return err
		}
		return attachAmenities(ctx, tx, p.ID, amenityIDs)
	})
	if err != nil {
		return nil, usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "place_created",
		Entity:   "place",
		EntityID: p.ID,
		Metadata: map[string]any{"owner_id": ownerID, "amenities": len(amenityIDs)},
	})

	return detail(ctx, uc.store, p)
}
