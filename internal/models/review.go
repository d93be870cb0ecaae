package models

import "time"

type Review struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Text   string `gorm:"type:text" json:"text"`
	Rating int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	// one review per (user, place)
	UserID  string `gorm:"size:36;not null;uniqueIndex:idx_review_user_place" json:"user_id"`
	User    *User  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	PlaceID string `gorm:"size:36;not null;uniqueIndex:idx_review_user_place;index" json:"place_id"`
	Place   *Place `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
