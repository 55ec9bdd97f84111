package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByProject returns a project's comments newest first, each with its author
func (r *CommentRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.CommentWithAuthor, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		out = append(out, models.CommentWithAuthor{Comment: c, User: c.User})
	}
	return out, nil
}

// Count returns the live number of comments on a project.
func (r *CommentRepo) Count(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Add appends a comment and returns it with its author.
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) (*models.CommentWithAuthor, error) {
	db := r.db.WithContext(ctx)
	if err := db.Omit("User").Create(comment).Error; err != nil {
		return nil, err
	}

	var author models.User
	if err := db.First(&author, "id = ?", comment.UserID).Error; err != nil {
		return nil, err
	}
	comment.User = &author
	return &models.CommentWithAuthor{Comment: *comment, User: &author}, nil
}

// Delete removes the comment only when userID wrote it. A missing comment and one
// written by somebody else both report false.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Comment{})
	return res.RowsAffected > 0, res.Error
}
