package place

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type DeletePlace struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewDeletePlace(s store.Store, audit *audit.Dispatcher) *DeletePlace {
	return &DeletePlace{store: s, audit: audit}
}

// Execute removes the place with its amenity attachments and reviews.
func (uc *DeletePlace) Execute(ctx context.Context, caller *authz.Caller, id string) error {
	p, err := usecase.Load(ctx, uc.store.Places(), "place", id)
	if err != nil {
		return err
	}
	if err := authz.CanModifyPlace(caller, p); err != nil {
		return err
	}

	err = uc.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.PlaceAmenities().DeleteByAttribute(ctx, "place_id", p.ID); err != nil {
			return err
		}
		if err := tx.Reviews().DeleteByAttribute(ctx, "place_id", p.ID); err != nil {
			return err
		}
		return tx.Places().Delete(ctx, p.ID)
	})
	if err != nil {
		return usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "place_deleted",
		Entity:   "place",
		EntityID: p.ID,
		Metadata: map[string]any{"owner_id": p.OwnerID},
	})
	return nil
}

type RemovePlaceAmenity struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewRemovePlaceAmenity(s store.Store, audit *audit.Dispatcher) *RemovePlaceAmenity {
	return &RemovePlaceAmenity{store: s, audit: audit}
}

// Execute detaches one amenity from a place and returns the place as it
// stands afterwards.
func (uc *RemovePlaceAmenity) Execute(
	ctx context.Context,
	caller *authz.Caller,
	placeID string,
	amenityID string,
) (*dto.PlaceDetailDTO, error) {

	p, err := usecase.Load(ctx, uc.store.Places(), "place", placeID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanDetachAmenity(caller, p); err != nil {
		return nil, err
	}
	if _, err := usecase.Load(ctx, uc.store.Amenities(), "amenity", amenityID); err != nil {
		return nil, err
	}

	links, err := uc.store.PlaceAmenities().ListByAttribute(ctx, "place_id", p.ID)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	linkID := ""
	for _, link := range links {
		if link.AmenityID == amenityID {
			linkID = link.ID
			break
		}
	}
	if linkID == "" {
		return nil, httperr.NotFound("place amenity")
	}

	if err := uc.store.PlaceAmenities().Delete(ctx, linkID); err != nil {
		return nil, usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "place_amenity_removed",
		Entity:   "place",
		EntityID: p.ID,
		Metadata: map[string]any{"amenity_id": amenityID},
	})

	return detail(ctx, uc.store, p)
}
