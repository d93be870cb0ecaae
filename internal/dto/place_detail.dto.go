package dto

import (
	"time"

	"github.com/BruksfildServices01/hbnb/internal/models"
)

type AmenitySummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlaceDetailDTO is a place with its resolved amenity set.
type PlaceDetailDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	OwnerID     string              `json:"owner_id"`
	UserID      string              `json:"user_id"`
	Amenities   []AmenitySummaryDTO `json:"amenities"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func NewPlaceDetail(p *models.Place, amenities []models.Amenity) PlaceDetailDTO {
	out := PlaceDetailDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		UserID:      p.UserID,
		Amenities:   make([]AmenitySummaryDTO, 0, len(amenities)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, a := range amenities {
		out.Amenities = append(out.Amenities, AmenitySummaryDTO{ID: a.ID, Name: a.Name})
	}
	return out
}

// AmenityIDs lists the attached amenity ids in attachment order.
func (p PlaceDetailDTO) AmenityIDs() []string {
	ids := make([]string, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		ids = append(ids, a.ID)
	}
	return ids
}
