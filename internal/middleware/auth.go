package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/jwt"
	"github.com/mutantboi/blog-core/internal/pkg/response"
	"gorm.io/gorm"
)

const ContextKeyUser = "user"

// Auth returns a middleware that enforces bearer JWT authentication.
// The referenced user must still exist; a token for a deleted account
// is rejected.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// OptionalAuth sets the user if a valid token is present, but never
// blocks the request. Public routes use it so admins see their drafts.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := resolveUser(db, extractToken(c)); err == nil {
			c.Set(ContextKeyUser, user)
		}
		c.Next()
	}
}

// RequireAdmin rejects the request unless the authenticated user has
// the admin role. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			response.Forbidden(c, "Access denied. Admin rights required.")
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from context, or nil.
func CurrentUser(c *gin.Context) *models.UserModel {
	v, _ := c.Get(ContextKeyUser)
	user, _ := v.(*models.UserModel)
	return user
}

func resolveUser(db *gorm.DB, token string) (*models.UserModel, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}

	userID, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}

	var user models.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func extractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
