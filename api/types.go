package api

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler      projectHandler
	categoryHandler     categoryHandler
	engagementHandler   engagementHandler
	notificationHandler notificationHandler
	adminHandler        adminHandler
	shareHandler        shareHandler
	authHandler         authHandler
	healthHandler       healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

type createProjectRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"required"`
	Content      *string    `json:"content"`
	ImageURL     *string    `json:"imageUrl" validate:"omitnil,max=2048"`
	VideoURL     *string    `json:"videoUrl" validate:"omitnil,max=2048"`
	DemoURL      *string    `json:"demoUrl" validate:"omitnil,max=2048"`
	GithubURL    *string    `json:"githubUrl" validate:"omitnil,max=2048"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	Technologies []string   `json:"technologies" validate:"max=50,dive,max=100"`
	IsPublished  *bool      `json:"isPublished"`
	IsFeatured   *bool      `json:"isFeatured"`
}

func (p *createProjectRequest) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Technologies = trimAll(p.Technologies)
}

// updateProjectRequest is a partial update; absent fields are left untouched.
type updateProjectRequest struct {
	Title        *string    `json:"title" validate:"omitnil,min=1,max=200"`
	Description  *string    `json:"description" validate:"omitnil,min=1"`
	Content      *string    `json:"content"`
	ImageURL     *string    `json:"imageUrl" validate:"omitnil,max=2048"`
	VideoURL     *string    `json:"videoUrl" validate:"omitnil,max=2048"`
	DemoURL      *string    `json:"demoUrl" validate:"omitnil,max=2048"`
	GithubURL    *string    `json:"githubUrl" validate:"omitnil,max=2048"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	Technologies *[]string  `json:"technologies" validate:"omitnil,max=50,dive,max=100"`
	IsPublished  *bool      `json:"isPublished"`
	IsFeatured   *bool      `json:"isFeatured"`
}

func (p *updateProjectRequest) normalize() {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		p.Description = &description
	}
	if p.Technologies != nil {
		techs := trimAll(*p.Technologies)
		p.Technologies = &techs
	}
}

func (p updateProjectRequest) changes(clearCategory bool) database.ProjectChanges {
	return database.ProjectChanges{
		Title:         p.Title,
		Description:   p.Description,
		Content:       p.Content,
		ImageURL:      p.ImageURL,
		VideoURL:      p.VideoURL,
		DemoURL:       p.DemoURL,
		GithubURL:     p.GithubURL,
		CategoryID:    p.CategoryID,
		ClearCategory: clearCategory,
		IsPublished:   p.IsPublished,
		IsFeatured:    p.IsFeatured,
		Technologies:  p.Technologies,
	}
}

type createCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Slug  string `json:"slug" validate:"omitempty,max=100"`
	Color string `json:"color" validate:"omitempty,rgbhex"`
}

func (c *createCategoryRequest) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)
	c.Color = strings.TrimSpace(c.Color)
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

func (c *createCommentRequest) normalize() {
	c.Content = strings.TrimSpace(c.Content)
}

type shareRequest struct {
	ProjectID string `json:"projectId" validate:"required,uuid"`
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
