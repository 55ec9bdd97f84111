package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db               *gorm.DB
	userRepo         *UserRepo
	categoryRepo     *CategoryRepo
	projectRepo      *ProjectRepo
	projectTagRepo   *ProjectTagRepo
	likeRepo         *LikeRepo
	commentRepo      *CommentRepo
	notificationRepo *NotificationRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		userRepo:         NewUserRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		projectRepo:      NewProjectRepo(db),
		projectTagRepo:   NewProjectTagRepo(db),
		likeRepo:         NewLikeRepo(db),
		commentRepo:      NewCommentRepo(db),
		notificationRepo: NewNotificationRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectTagRepo() *ProjectTagRepo {
	return d.projectTagRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) NotificationRepo() *NotificationRepo {
	return d.notificationRepo
}

// Migrate brings the schema up to date with the models.
func (d Database) Migrate() error {
	if d.db == nil {
		return errs.NewConfigError("database", fmt.Errorf("no connection"))
	}
	return models.AutoMigrate(d.db)
}

// Ping checks that the primary connection is alive.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
