package review

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type DeleteReview struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewDeleteReview(s store.Store, audit *audit.Dispatcher) *DeleteReview {
	return &DeleteReview{store: s, audit: audit}
}

func (uc *DeleteReview) Execute(ctx context.Context, caller *authz.Caller, id string) error {
	r, err := usecase.Load(ctx, uc.store.Reviews(), "review", id)
	if err != nil {
		return err
	}
	if err := authz.CanModifyReview(caller, r); err != nil {
		return err
	}

	if err := uc.store.Reviews().Delete(ctx, r.ID); err != nil {
		return usecase.Storage(err, nil)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: r.ID,
		Metadata: map[string]any{"place_id": r.PlaceID, "user_id": r.UserID},
	})
	return nil
}
