package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db}
}

// Add inserts a new notification into the database
func (r *NotificationRepo) Add(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).
		Omit("User", "RelatedProject", "RelatedUser").
		Create(notification).Error
}

// FindByUser returns a recipient's notifications, newest first
func (r *NotificationRepo) FindByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	notifications := []models.Notification{}
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead flags the notification as read when userID is its recipient. A missing
// notification and one addressed to somebody else both report false.
func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}
