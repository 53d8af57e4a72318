package post

import (
	"errors"
	"strings"
	"time"

	"github.com/mutantboi/blog-core/internal/models"
)

type TagDTO struct {
	Name string         `json:"name" binding:"required,max=50"`
	Type models.TagType `json:"type" binding:"required,oneof=design tattoo painting photography audio av essays resources"`
}

type CreatePostDTO struct {
	Title         string   `json:"title"         binding:"required,max=200"`
	Content       string   `json:"content"       binding:"required"`
	Excerpt       string   `json:"excerpt"       binding:"required,max=200"`
	Tags          []TagDTO `json:"tags"          binding:"dive"`
	FeaturedImage string   `json:"featuredImage"`
	IsPublished   *bool    `json:"isPublished"`
}

type UpdatePostDTO struct {
	Title         *string   `json:"title"         binding:"omitempty,max=200"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"       binding:"omitempty,max=200"`
	Tags          *[]TagDTO `json:"tags"          binding:"omitempty,dive"`
	FeaturedImage *string   `json:"featuredImage"`
	IsPublished   *bool     `json:"isPublished"`
}

// validate rejects explicit empty values on fields every post must
// carry. Omitted fields (nil) stay untouched; clearable fields like
// featuredImage accept empty strings.
func (d *UpdatePostDTO) validate() error {
	if d.Title != nil && strings.TrimSpace(*d.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if d.Content != nil && strings.TrimSpace(*d.Content) == "" {
		return errors.New("content cannot be empty")
	}
	if d.Excerpt != nil && strings.TrimSpace(*d.Excerpt) == "" {
		return errors.New("excerpt cannot be empty")
	}
	return nil
}

// ListQuery holds the optional list filters.
type ListQuery struct {
	Category string
	Search   string
	Sort     string
}

type authorResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
}

type tagResponse struct {
	Name string         `json:"name"`
	Type models.TagType `json:"type"`
}

type postResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Content       string          `json:"content,omitempty"`
	Excerpt       string          `json:"excerpt"`
	Author        *authorResponse `json:"author,omitempty"`
	Tags          []tagResponse   `json:"tags"`
	FeaturedImage string          `json:"featuredImage,omitempty"`
	IsPublished   bool            `json:"isPublished"`
	PublishedAt   time.Time       `json:"publishedAt"`
	ViewCount     int             `json:"viewCount"`
	Created       time.Time       `json:"createdAt"`
	Modified      time.Time       `json:"updatedAt"`
}

func toResponse(p *models.PostModel, withContent bool) postResponse {
	r := postResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		IsPublished:   p.IsPublished,
		PublishedAt:   p.PublishedAt,
		ViewCount:     p.ViewCount,
		Created:       p.CreatedAt,
		Modified:      p.UpdatedAt,
	}
	if withContent {
		r.Content = p.Content
	}
	if p.Author != nil {
		r.Author = &authorResponse{
			ID:          p.Author.ID,
			Username:    p.Author.Username,
			DisplayName: p.Author.DisplayName,
		}
	}
	r.Tags = make([]tagResponse, len(p.Tags))
	for i, t := range p.Tags {
		r.Tags[i] = tagResponse{Name: t.Name, Type: t.Type}
	}
	return r
}
