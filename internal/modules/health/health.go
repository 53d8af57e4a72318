package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	db    *gorm.DB
	start time.Time
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db, start: time.Now()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
}

// GET /health
func (h *Handler) health(c *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unavailable"
	}
	response.OK(c, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"uptime":    time.Since(h.start).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
