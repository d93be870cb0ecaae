package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/models"
)

type GormStore struct {
	db *gorm.DB

	users          *GormRepository[models.User]
	amenities      *GormRepository[models.Amenity]
	places         *GormRepository[models.Place]
	placeAmenities *GormRepository[models.PlaceAmenity]
	reviews        *GormRepository[models.Review]
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:             db,
		users:          NewGormRepository[models.User](db),
		amenities:      NewGormRepository[models.Amenity](db),
		places:         NewGormRepository[models.Place](db),
		placeAmenities: NewGormRepository[models.PlaceAmenity](db),
		reviews:        NewGormRepository[models.Review](db),
	}
}

func (s *GormStore) Users() store.Repository[models.User] { return s.users }
func (s *GormStore) Amenities() store.Repository[models.Amenity] { return s.amenities }
func (s *GormStore) Places() store.Repository[models.Place] { return s.places }
func (s *GormStore) Reviews() store.Repository[models.Review] { return s.reviews }

func (s *GormStore) PlaceAmenities() store.Repository[models.PlaceAmenity] {
	return s.placeAmenities
}

func (s *GormStore) Transaction(
	ctx context.Context,
	fn func(tx store.Store) error,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// Compile-time check
var _ store.Store = (*GormStore)(nil)
