package amenity

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type DeleteAmenity struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewDeleteAmenity(s store.Store, audit *audit.Dispatcher) *DeleteAmenity {
	return &DeleteAmenity{store: s, audit: audit}
}

// Execute removes the amenity together with every attachment to it.
func (uc *DeleteAmenity) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id string,
) error {

	if err := authz.CanManageAmenity(caller); err != nil {
		return err
	}

	a, err := usecase.Load(ctx, uc.store.Amenities(), "amenity", id)
	if err != nil {
		return err
	}

	err = uc.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.PlaceAmenities().DeleteByAttribute(ctx, "amenity_id", a.ID); err != nil {
			return err
		}
		return tx.Amenities().Delete(ctx, a.ID)
	})
	if err != nil {
		return usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "amenity_deleted",
		Entity:   "amenity",
		EntityID: a.ID,
		Metadata: map[string]any{"name": a.Name},
	})

	return nil
}
