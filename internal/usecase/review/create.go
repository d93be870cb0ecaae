package review

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/review"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type CreateReview struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewCreateReview(s store.Store, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{store: s, audit: audit}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	caller *authz.Caller,
	in CreateReviewInput,
) (*models.Review, error) {

	if !caller.Authenticated() {
		return nil, httperr.Forbidden("authentication required")
	}

	place, err := usecase.Load(ctx, uc.store.Places(), "place", strings.TrimSpace(in.PlaceID))
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	existing, err := findReview(ctx, uc.store, caller.SubjectID, place.ID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanCreateReview(caller, place, existing); err != nil {
		return nil, err
	}

	r := &models.Review{
		ID:      uuid.NewString(),
		Text:    strings.TrimSpace(in.Text),
		Rating:  *in.Rating,
		UserID:  caller.SubjectID,
		PlaceID: place.ID,
	}

	if err := uc.store.Reviews().Add(ctx, r); err != nil {
		return nil, usecase.Storage(err, func() error {
			return httperr.Conflict("you have already reviewed this place")
		})
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "review_created",
		Entity:   "review",
		EntityID: r.ID,
		Metadata: map[string]any{"place_id": place.ID, "rating": r.Rating},
	})

	return r, nil
}

// findReview returns userID's review of placeID, or nil.
func findReview(ctx context.Context, s store.Store, userID, placeID string) (*models.Review, error) {
	reviews, err := s.Reviews().ListByAttribute(ctx, "user_id", userID)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	for i := range reviews {
		if reviews[i].PlaceID == placeID {
			return &reviews[i], nil
		}
	}
	return nil, nil
}
