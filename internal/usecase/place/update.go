package place

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/place"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type UpdatePlace struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewUpdatePlace(s store.Store, audit *audit.Dispatcher) *UpdatePlace {
	return &UpdatePlace{store: s, audit: audit}
}

func (uc *UpdatePlace) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id string,
	in UpdatePlaceInput,
) (*dto.PlaceDetailDTO, error) {

	p, err := usecase.Load(ctx, uc.store.Places(), "place", id)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Authorization
	// --------------------------------------------------
	if err := authz.CanModifyPlace(caller, p); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	fields := store.Fields{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if err := domain.ValidateTitle(title); err != nil {
			return nil, err
		}
		fields["title"] = title
	}
	if in.Description != nil {
		fields["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if err := domain.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
		fields["price"] = *in.Price
	}
	if in.Latitude != nil {
		if err := domain.ValidateLatitude(*in.Latitude); err != nil {
			return nil, err
		}
		fields["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		if err := domain.ValidateLongitude(*in.Longitude); err != nil {
			return nil, err
		}
		fields["longitude"] = *in.Longitude
	}

	ownerID := p.OwnerID
	if in.OwnerID != nil {
		ownerID = strings.TrimSpace(*in.OwnerID)
		if err := authz.CanChangePlaceOwner(caller, p, ownerID); err != nil {
			return nil, err
		}
		if ownerID != p.OwnerID {
			if _, err := usecase.Load(ctx, uc.store.Users(), "user", ownerID); err != nil {
				return nil, err
			}
			fields["owner_id"] = ownerID
		}
	}

	if in.UserID != nil {
		userID, err := resolveUserID(ctx, uc.store, caller, ownerID, strings.TrimSpace(*in.UserID))
		if err != nil {
			return nil, err
		}
		fields["user_id"] = userID
	}

	var amenityIDs []string
	if in.Amenities != nil {
		amenityIDs, err = checkAmenities(ctx, uc.store, *in.Amenities)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	changed := fieldNames(fields)
	fields["updated_at"] = time.Now().UTC()

	err = uc.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.Places().Update(ctx, p.ID, fields); err != nil {
			return err
		}
		if in.Amenities == nil {
			return nil
		}
		if err := tx.PlaceAmenities().DeleteByAttribute(ctx, "place_id", p.ID); err != nil {
			return err
		}
		return attachAmenities(ctx, tx, p.ID, amenityIDs)
	})
	if err != nil {
		return nil, usecase.Storage(err, nil)
	}

	meta := map[string]any{"fields": changed}
	if in.Amenities != nil {
		meta["amenities"] = amenityIDs
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "place_updated",
		Entity:   "place",
		EntityID: p.ID,
		Metadata: meta,
	})

	updated, err := usecase.Load(ctx, uc.store.Places(), "place", p.ID)
	if err != nil {
		return nil, err
	}
	return detail(ctx, uc.store, updated)
}

func fieldNames(fields store.Fields) []string {
	out := make([]string, 0, len(fields))
	for k := range fields {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
