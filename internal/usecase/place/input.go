package place

type CreatePlaceInput struct {
	Title       string
	Description string
	Price       *float64
	Latitude    *float64
	Longitude   *float64

	// OwnerID and UserID default to the caller when empty.
	OwnerID string
	UserID  string

	Amenities []string
}

// UpdatePlaceInput applies only the non-nil fields. A non-nil Amenities,
// even when empty, replaces the whole attachment set.
type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
	UserID      *string
	Amenities   *[]string
}
