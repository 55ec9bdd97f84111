package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

func (t NotificationType) Valid() bool {
	return t == NotificationLike || t == NotificationComment
}

// Notification is addressed to one recipient; only IsRead ever changes.
type Notification struct {
	ID               uuid.UUID        `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID           string           `json:"userId" db:"user_id" gorm:"type:text;not null;index:idx_notification_user_read"`
	Type             NotificationType `json:"type" db:"type" gorm:"type:varchar(50);not null"`
	Message          string           `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead           bool             `json:"isRead" db:"is_read" gorm:"not null;default:false;index:idx_notification_user_read"`
	RelatedProjectID *uuid.UUID       `json:"relatedProjectId,omitempty" db:"related_project_id" gorm:"type:uuid;index"`
	RelatedUserID    *string          `json:"relatedUserId,omitempty" db:"related_user_id" gorm:"type:text"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at" gorm:"index"`

	User           *User    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	RelatedProject *Project `json:"-" gorm:"foreignKey:RelatedProjectID;references:ID;constraint:OnDelete:CASCADE"`
	RelatedUser    *User    `json:"-" gorm:"foreignKey:RelatedUserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
