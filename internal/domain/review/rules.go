package review

import (
	"strings"

	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ValidateRating requires a rating in [1,5]; nil means it was not supplied.
func ValidateRating(rating *int) error {
	if rating == nil {
		return httperr.InvalidInput("rating", "rating is required")
	}
	if *rating < MinRating || *rating > MaxRating {
		return httperr.InvalidInput("rating", "rating must be an integer between 1 and 5")
	}
	return nil
}

func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return httperr.InvalidInput("text", "text cannot be empty")
	}
	return nil
}
