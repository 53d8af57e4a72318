package category

import (
	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/response"
	"gorm.io/gorm"
)

// displayNames maps a tag type to its human-facing label.
var displayNames = map[models.TagType]string{
	models.TagEssays:      "Essays",
	models.TagDesign:      "Design",
	models.TagTattoo:      "Tattoo",
	models.TagPainting:    "Painting",
	models.TagPhotography: "Photography",
	models.TagAudio:       "Audio",
	models.TagAV:          "Audio/Visual",
	models.TagResources:   "Resources",
}

// Category is a tag type with its published tag-occurrence count.
type Category struct {
	ID    models.TagType `json:"id"`
	Name  string         `json:"name"`
	Type  models.TagType `json:"type"`
	Count int64          `json:"count"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List aggregates tag types over published posts, counting tag
// occurrences per type, most-used first. Types with no published posts
// are absent from the result.
func (s *Service) List() ([]Category, error) {
	type row struct {
		Type  models.TagType
		Count int64
	}
	var rows []row
	err := s.db.Model(&models.PostTag{}).
		Select("post_tags.type AS type, COUNT(*) AS count").
		Joins("JOIN posts ON posts.id = post_tags.post_id").
		Where("posts.is_published = ?", true).
		Group("post_tags.type").
		Order("count DESC, type ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Category, len(rows))
	for i, r := range rows {
		name, ok := displayNames[r.Type]
		if !ok {
			name = r.Type
		}
		out[i] = Category{ID: r.Type, Name: name, Type: r.Type, Count: r.Count}
	}
	return out, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts/categories", h.list)
}

// GET /posts/categories
func (h *Handler) list(c *gin.Context) {
	categories, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, categories)
}
