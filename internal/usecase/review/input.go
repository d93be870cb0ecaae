package review

type CreateReviewInput struct {
	PlaceID string
	Text    string
	Rating  *int
}

// UpdateReviewInput carries the only mutable review fields.
type UpdateReviewInput struct {
	Text   *string
	Rating *int
}
