package models

import "time"

// User is an identity mirrored from the external identity provider. ID is the provider's subject.
type User struct {
	ID              string    `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Email           *string   `json:"email,omitempty" db:"email" gorm:"type:text;uniqueIndex"`
	FirstName       *string   `json:"firstName,omitempty" db:"first_name" gorm:"type:text"`
	LastName        *string   `json:"lastName,omitempty" db:"last_name" gorm:"type:text"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty" db:"profile_image_url" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// DisplayName is the first name when known, otherwise "Someone".
func (u *User) DisplayName() string {
	if u == nil || u.FirstName == nil || *u.FirstName == "" {
		return "Someone"
	}
	return *u.FirstName
}
