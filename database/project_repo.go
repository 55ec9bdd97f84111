package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectChanges is a partial update. Nil fields are left untouched.
type ProjectChanges struct {
	Title         *string
	Description   *string
	Content       *string
	ImageURL      *string
	VideoURL      *string
	DemoURL       *string
	GithubURL     *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	IsPublished   *bool
	IsFeatured    *bool
	Technologies  *[]string
}

func (c ProjectChanges) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if c.Title != nil {
		cols["title"] = *c.Title
	}
	if c.Description != nil {
		cols["description"] = *c.Description
	}
	if c.Content != nil {
		cols["content"] = *c.Content
	}
	if c.ImageURL != nil {
		cols["image_url"] = *c.ImageURL
	}
	if c.VideoURL != nil {
		cols["video_url"] = *c.VideoURL
	}
	if c.DemoURL != nil {
		cols["demo_url"] = *c.DemoURL
	}
	if c.GithubURL != nil {
		cols["github_url"] = *c.GithubURL
	}
	if c.CategoryID != nil {
		cols["category_id"] = *c.CategoryID
	}
	if c.ClearCategory {
		cols["category_id"] = nil
	}
	if c.IsPublished != nil {
		cols["is_published"] = *c.IsPublished
	}
	if c.IsFeatured != nil {
		cols["is_featured"] = *c.IsFeatured
	}
	return cols
}

// FindAll returns projects matching filter, newest first, with tags loaded
func (r *ProjectRepo) FindAll(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Tags").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when it does not exist
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Tags").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindDetails returns projects matching filter, newest first, each with owner,
// category, likes, comments (with authors) and live counts.
func (r *ProjectRepo) FindDetails(ctx context.Context, filter models.ProjectFilter) ([]*models.ProjectWithDetails, error) {
	projects := []*models.Project{}
	err := withDetails(applyFilter(r.db.WithContext(ctx), filter)).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	details := make([]*models.ProjectWithDetails, 0, len(projects))
	for _, p := range projects {
		details = append(details, toDetails(p))
	}
	return details, nil
}

// FindDetailsByID returns one enriched project, or nil when it does not exist. When
// viewerID is set, IsLikedByUser reports whether that user currently likes it.
// It reads from the primary so a view counted just before is included.
func (r *ProjectRepo) FindDetailsByID(ctx context.Context, id uuid.UUID, viewerID *string) (*models.ProjectWithDetails, error) {
	var project models.Project
	err := withDetails(r.db.WithContext(ctx).Clauses(dbresolver.Write)).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	liked := false
	d := toDetails(&project)
	if viewerID != nil {
		for _, like := range project.Likes {
			if like.UserID == *viewerID {
				liked = true
				break
			}
		}
	}
	d.IsLikedByUser = &liked
	return d, nil
}

// Add inserts a new project and its technology tags
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	project.Tags = models.NewProjectTags(project.ID, project.Technologies)

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return err
	}
	project.SyncTechnologies()
	return nil
}

// Update merges changes into the project and bumps updated_at. It returns nil
// when the project no longer exists.
func (r *ProjectRepo) Update(ctx context.Context, id uuid.UUID, changes ProjectChanges) (*models.Project, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cols := changes.columns()
		cols["updated_at"] = time.Now()

		res := tx.Model(&models.Project{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if changes.Technologies != nil {
			if _, err := NewProjectTagRepo(tx).Replace(ctx, id, *changes.Technologies); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a project together with its tags, likes, comments and
// notifications. It reports whether a project row was removed.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("related_project_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// IncrementViews adds one to the persisted view counter. A missing id is a no-op.
func (r *ProjectRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// Stats counts an owner's projects and the likes and comments on them, published or not.
func (r *ProjectRepo) Stats(ctx context.Context, ownerID string) (models.ProjectStats, error) {
	var stats models.ProjectStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Project{}).
		Where("owner_id = ?", ownerID).
		Count(&stats.TotalProjects).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Like{}).
		Joins("JOIN projects ON projects.id = likes.project_id").
		Where("projects.owner_id = ?", ownerID).
		Count(&stats.TotalLikes).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Comment{}).
		Joins("JOIN projects ON projects.id = comments.project_id").
		Where("projects.owner_id = ?", ownerID).
		Count(&stats.TotalComments).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

func applyFilter(db *gorm.DB, filter models.ProjectFilter) *gorm.DB {
	if filter.Published != nil {
		db = db.Where("is_published = ?", *filter.Published)
	}
	if filter.Featured != nil {
		db = db.Where("is_featured = ?", *filter.Featured)
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.OwnerID != nil {
		db = db.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	return db
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags").
		Preload("Owner").
		Preload("Category").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments.User")
}

func toDetails(p *models.Project) *models.ProjectWithDetails {
	comments := make([]models.CommentWithAuthor, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, models.CommentWithAuthor{Comment: c, User: c.User})
	}
	likes := p.Likes
	if likes == nil {
		likes = []models.Like{}
	}

	return &models.ProjectWithDetails{
		Project:       *p,
		Owner:         p.Owner,
		Category:      p.Category,
		Likes:         likes,
		Comments:      comments,
		LikesCount:    len(likes),
		CommentsCount: len(comments),
	}
}
