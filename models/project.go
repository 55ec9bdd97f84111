package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry owned by exactly one user.
type Project struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null"`
	Content     *string    `json:"content,omitempty" db:"content" gorm:"type:text"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	VideoURL    *string    `json:"videoUrl,omitempty" db:"video_url" gorm:"type:text"`
	DemoURL     *string    `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:text"`
	GithubURL   *string    `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	CategoryID  *uuid.UUID `json:"categoryId" db:"category_id" gorm:"type:uuid;index"`
	OwnerID     string     `json:"ownerId" db:"owner_id" gorm:"type:text;not null;index"`
	IsPublished bool       `json:"isPublished" db:"is_published" gorm:"not null;default:false;index"`
	IsFeatured  bool       `json:"isFeatured" db:"is_featured" gorm:"not null;default:false;index"`
	ViewCount   int        `json:"viewCount" db:"view_count" gorm:"not null;default:0"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	// Technologies mirrors Tags in position order.
	Technologies []string `json:"technologies" gorm:"-"`

	Tags     []ProjectTag `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Owner    *User        `json:"-" gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE"`
	Category *Category    `json:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Likes    []Like       `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment    `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// AfterFind fills Technologies from preloaded Tags.
func (p *Project) AfterFind(tx *gorm.DB) error {
	p.SyncTechnologies()
	return nil
}

// SyncTechnologies rebuilds Technologies from Tags.
func (p *Project) SyncTechnologies() {
	tags := make([]ProjectTag, len(p.Tags))
	copy(tags, p.Tags)
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Position < tags[j].Position })

	p.Technologies = make([]string, 0, len(tags))
	for _, tag := range tags {
		p.Technologies = append(p.Technologies, tag.Value)
	}
}

// ProjectFilter narrows a project listing. Nil fields match everything; Limit <= 0 means no limit.
type ProjectFilter struct {
	Published  *bool
	Featured   *bool
	CategoryID *uuid.UUID
	OwnerID    *string
	Limit      int
}

// CommentWithAuthor is a comment enriched with its author.
type CommentWithAuthor struct {
	Comment
	User *User `json:"user"`
}

// ProjectWithDetails is a project enriched with owner, category, engagement rows and derived counts.
type ProjectWithDetails struct {
	Project
	Owner         *User               `json:"owner"`
	Category      *Category           `json:"category"`
	Likes         []Like              `json:"likes"`
	Comments      []CommentWithAuthor `json:"comments"`
	LikesCount    int                 `json:"likesCount"`
	CommentsCount int                 `json:"commentsCount"`
	IsLikedByUser *bool               `json:"isLikedByUser,omitempty"`
}

// ProjectStats aggregates engagement across one owner's projects.
type ProjectStats struct {
	TotalProjects int64 `json:"totalProjects"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
}

// LikeToggleResult reports the state after a like toggle.
type LikeToggleResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}
