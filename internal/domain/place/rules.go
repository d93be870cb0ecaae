package place

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return httperr.InvalidInput("title", "title is required")
	}
	return nil
}

func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return httperr.InvalidInput("price", "price must be a finite number")
	}
	if price < 0 {
		return httperr.InvalidInput("price", "price cannot be negative")
	}
	return nil
}

func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return httperr.InvalidInput("latitude", "latitude out of range (-90 to 90)")
	}
	return nil
}

func ValidateLongitude(lon float64) error {
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return httperr.InvalidInput("longitude", "longitude out of range (-180 to 180)")
	}
	return nil
}

// Required reports the first missing required field, checked in the
// order title, price, latitude, longitude.
func Required(title string, price, lat, lon *float64) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"price", price},
		{"latitude", lat},
		{"longitude", lon},
	} {
		if f.v == nil {
			return httperr.InvalidInput(f.name, f.name+" is required")
		}
	}
	return nil
}

// DedupeIDs drops blanks and repeats, keeping first-seen order.
func DedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
