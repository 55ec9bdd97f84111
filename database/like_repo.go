package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// FindByProject returns a project's likes, oldest first
func (r *LikeRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Like, error) {
	likes := []models.Like{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&likes).Error
	return likes, err
}

// Count returns the live number of likes on a project.
func (r *LikeRepo) Count(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Toggle flips whether userID likes projectID and returns the resulting state with the
// live like count. Removing an existing row and inserting a missing one happen in one
// transaction, and the insert is keyed on the (project, user) unique index, so two
// concurrent toggles never leave two rows behind.
func (r *LikeRepo) Toggle(ctx context.Context, projectID uuid.UUID, userID string) (models.LikeToggleResult, error) {
	var result models.LikeToggleResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			like := models.Like{ProjectID: projectID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			result.Liked = true
		}

		return tx.Model(&models.Like{}).Where("project_id = ?", projectID).Count(&result.LikesCount).Error
	})
	return result, err
}
