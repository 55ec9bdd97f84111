package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// FindByProject returns a project's tags in position order
func (r *ProjectTagRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectTag, error) {
	tags := []models.ProjectTag{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&tags).Error
	return tags, err
}

// Replace swaps a project's tags for the given ordered technologies.
func (r *ProjectTagRepo) Replace(ctx context.Context, projectID uuid.UUID, technologies []string) ([]models.ProjectTag, error) {
	tags := models.NewProjectTags(projectID, technologies)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Create(&tags).Error
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}
