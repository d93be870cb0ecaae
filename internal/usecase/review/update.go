package review

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/review"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type UpdateReview struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewUpdateReview(s store.Store, audit *audit.Dispatcher) *UpdateReview {
	return &UpdateReview{store: s, audit: audit}
}

func (uc *UpdateReview) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id string,
	in UpdateReviewInput,
) (*models.Review, error) {

	r, err := usecase.Load(ctx, uc.store.Reviews(), "review", id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanModifyReview(caller, r); err != nil {
		return nil, err
	}

	fields := store.Fields{"updated_at": time.Now().UTC()}
	if in.Text != nil {
		if err := domain.ValidateText(*in.Text); err != nil {
			return nil, err
		}
		fields["text"] = strings.TrimSpace(*in.Text)
	}
	if in.Rating != nil {
		if err := domain.ValidateRating(in.Rating); err != nil {
			return nil, err
		}
		fields["rating"] = *in.Rating
	}

	if err := uc.store.Reviews().Update(ctx, r.ID, fields); err != nil {
		return nil, usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "review_updated",
		Entity:   "review",
		EntityID: r.ID,
	})

	return usecase.Load(ctx, uc.store.Reviews(), "review", r.ID)
}
