package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like means "this user currently likes this project". At most one row per (project, user).
type Like struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_project_user"`
	UserID    string    `json:"userId" db:"user_id" gorm:"type:text;not null;uniqueIndex:idx_like_project_user;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
