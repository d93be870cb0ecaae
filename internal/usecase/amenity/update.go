package amenity

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type UpdateAmenityInput struct {
	Name *string
}

type UpdateAmenity struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewUpdateAmenity(s store.Store, audit *audit.Dispatcher) *UpdateAmenity {
	return &UpdateAmenity{store: s, audit: audit}
}

func (uc *UpdateAmenity) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id string,
	in UpdateAmenityInput,
) (*models.Amenity, error) {

	if err := authz.CanManageAmenity(caller); err != nil {
		return nil, err
	}

	a, err := usecase.Load(ctx, uc.store.Amenities(), "amenity", id)
	if err != nil {
		return nil, err
	}

	fields := store.Fields{"updated_at": time.Now().UTC()}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := requireName(name); err != nil {
			return nil, err
		}
		if name != a.Name {
			other, err := usecase.Find(ctx, uc.store.Amenities(), "name", name)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, httperr.DuplicateName(name)
			}
		}
		fields["name"] = name
	}

	if err := uc.store.Amenities().Update(ctx, a.ID, fields); err != nil {
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			return nil, usecase.Storage(err, func() error { return httperr.DuplicateName(name) })
		}
		return nil, usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "amenity_updated",
		Entity:   "amenity",
		EntityID: a.ID,
	})

	return usecase.Load(ctx, uc.store.Amenities(), "amenity", a.ID)
}
