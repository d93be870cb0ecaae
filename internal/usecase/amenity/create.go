package amenity

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type CreateAmenityInput struct {
	Name string
}

type CreateAmenity struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewCreateAmenity(s store.Store, audit *audit.Dispatcher) *CreateAmenity {
	return &CreateAmenity{store: s, audit: audit}
}

func (uc *CreateAmenity) Execute(
	ctx context.Context,
	caller *authz.Caller,
	in CreateAmenityInput,
) (*models.Amenity, error) {

	if err := authz.CanManageAmenity(caller); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if err := requireName(name); err != nil {
		return nil, err
	}

	existing, err := usecase.Find(ctx, uc.store.Amenities(), "name", name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.DuplicateName(name)
	}

	a := &models.Amenity{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := uc.store.Amenities().Add(ctx, a); err != nil {
		return nil, usecase.Storage(err, func() error { return httperr.DuplicateName(name) })
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "amenity_created",
		Entity:   "amenity",
		EntityID: a.ID,
	})

	return a, nil
}

func requireName(name string) error {
	if name == "" {
		return httperr.InvalidInput("name", "name is required")
	}
	return nil
}
