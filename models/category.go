package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCategoryColor = "#3B82F6"

// Category is reference data a project may belong to.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:varchar(100);not null;uniqueIndex:idx_category_slug"`
	Color     string    `json:"color" db:"color" gorm:"type:varchar(7);not null;default:'#3B82F6'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}
