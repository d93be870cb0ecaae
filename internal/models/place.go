package models

import "time"

type Place struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Title       string  `gorm:"size:128;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`

	// OwnerID carries authorization; UserID is display attribution only.
	OwnerID string `gorm:"size:36;index;not null" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	UserID  string `gorm:"size:36;index;not null" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceAmenity materializes the Place <-> Amenity many-to-many link.
type PlaceAmenity struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	PlaceID   string   `gorm:"size:36;not null;uniqueIndex:idx_place_amenity" json:"place_id"`
	Place     *Place   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	AmenityID string   `gorm:"size:36;not null;uniqueIndex:idx_place_amenity;index" json:"amenity_id"`
	Amenity   *Amenity `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
