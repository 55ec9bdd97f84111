package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	store := New(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func seedUser(t *testing.T, d Database, id, firstName string) *models.User {
	t.Helper()
	email := id + "@example.com"
	user := &models.User{ID: id, Email: &email, FirstName: &firstName}
	if err := d.UserRepo().Upsert(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return user
}

func seedProject(t *testing.T, d Database, ownerID, title string, published bool) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:        title,
		Description:  title + " description",
		OwnerID:      ownerID,
		IsPublished:  published,
		Technologies: []string{"Go", "PostgreSQL"},
	}
	if err := d.ProjectRepo().Add(context.Background(), project); err != nil {
		t.Fatalf("seed project %s: %v", title, err)
	}
	// keep created_at strictly increasing between seeds
	time.Sleep(2 * time.Millisecond)
	return project
}

func ptr[T any](v T) *T {
	return &v
}
