package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectTag is one technology tag of a project. Position keeps the caller's ordering.
type ProjectTag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_tag_project_id;uniqueIndex:idx_project_tag_unique"`
	Position  int       `json:"position" db:"position" gorm:"not null;default:0"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null;uniqueIndex:idx_project_tag_unique"`
}

func (t *ProjectTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// NewProjectTags turns an ordered technology list into tag rows, dropping blanks and repeats.
func NewProjectTags(projectID uuid.UUID, technologies []string) []ProjectTag {
	seen := make(map[string]bool, len(technologies))
	tags := make([]ProjectTag, 0, len(technologies))
	for _, tech := range technologies {
		if tech == "" || seen[tech] {
			continue
		}
		seen[tech] = true
		tags = append(tags, ProjectTag{
			ProjectID: projectID,
			Position:  len(tags),
			Value:     tech,
		})
	}
	return tags
}
