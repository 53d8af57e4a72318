package post

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/middleware"
	"github.com/mutantboi/blog-core/internal/pkg/pagination"
	"github.com/mutantboi/blog-core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW, optionalMW gin.HandlerFunc) {
	g := rg.Group("/posts")

	g.GET("", optionalMW, h.list)
	g.GET("/:slug", optionalMW, h.getBySlug)

	a := g.Group("", authMW)
	a.POST("", adminMW, h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /posts?page=&limit=&category=&search=&sort=
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	lq := ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	u := middleware.CurrentUser(c)
	isAdmin := u != nil && u.IsAdmin()
	posts, meta, err := h.svc.List(q, lq, isAdmin)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]postResponse, len(posts))
	for i := range posts {
		out[i] = toResponse(&posts[i], false)
	}
	response.OK(c, gin.H{
		"posts":       out,
		"totalPages":  meta.TotalPages,
		"currentPage": meta.CurrentPage,
		"totalPosts":  meta.Total,
	})
}

// GET /posts/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	u := middleware.CurrentUser(c)
	post, err := h.svc.GetBySlug(c.Param("slug"), u != nil && u.IsAdmin())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}

	// Best effort: a failed bump never blocks the read.
	go func(id string) {
		if err := h.svc.IncrementViewCount(id); err != nil {
			h.log.Warn("view count increment failed", zap.String("post", id), zap.Error(err))
		}
	}(post.ID)

	response.OK(c, toResponse(post, true))
}

// POST /posts
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto, middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, ErrSlugExhausted) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(post, true))
}

// PUT /posts/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := dto.validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto, middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Forbidden(c, "Not authorized to update this post")
			return
		}
		if errors.Is(err, ErrSlugExhausted) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, toResponse(post, true))
}

// DELETE /posts/:id
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Forbidden(c, "Not authorized to delete this post")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, gin.H{"message": "Post deleted successfully"})
}
