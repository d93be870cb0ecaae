package review

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type GetReview struct {
	store store.Store
}

func NewGetReview(s store.Store) *GetReview {
	return &GetReview{store: s}
}

func (uc *GetReview) Execute(ctx context.Context, id string) (*models.Review, error) {
	return usecase.Load(ctx, uc.store.Reviews(), "review", id)
}

type ListReviews struct {
	store store.Store
}

func NewListReviews(s store.Store) *ListReviews {
	return &ListReviews{store: s}
}

func (uc *ListReviews) Execute(ctx context.Context) ([]models.Review, error) {
	reviews, err := uc.store.Reviews().GetAll(ctx)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return reviews, nil
}

type ListReviewsByPlace struct {
	store store.Store
}

func NewListReviewsByPlace(s store.Store) *ListReviewsByPlace {
	return &ListReviewsByPlace{store: s}
}

func (uc *ListReviewsByPlace) Execute(ctx context.Context, placeID string) ([]models.Review, error) {
	if _, err := usecase.Load(ctx, uc.store.Places(), "place", placeID); err != nil {
		return nil, err
	}
	reviews, err := uc.store.Reviews().ListByAttribute(ctx, "place_id", placeID)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return reviews, nil
}
