package models

import "time"

// PasswordHasher is the hashing half of the credential service.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FirstName    string `gorm:"size:128;not null" json:"first_name"`
	LastName     string `gorm:"size:128;not null" json:"last_name"`
	Email        string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false;not null" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetPassword hashes plaintext and stores only the hash.
func (u *User) SetPassword(h PasswordHasher, plaintext string) error {
	hashed, err := h.Hash(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hashed
	return nil
}

func (u *User) CheckPassword(h PasswordHasher, plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return h.Verify(plaintext, u.PasswordHash)
}
