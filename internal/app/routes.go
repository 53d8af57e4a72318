package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/middleware"
	"github.com/mutantboi/blog-core/internal/modules/auth"
	"github.com/mutantboi/blog-core/internal/modules/category"
	"github.com/mutantboi/blog-core/internal/modules/contact"
	"github.com/mutantboi/blog-core/internal/modules/health"
	"github.com/mutantboi/blog-core/internal/modules/post"
	"github.com/mutantboi/blog-core/internal/pkg/mail"
	"golang.org/x/time/rate"
)

func (a *App) registerRoutes(sender *mail.Sender) {
	r := a.router
	db := a.db

	authMW := middleware.Auth(db)
	adminMW := middleware.RequireAdmin()
	optionalMW := middleware.OptionalAuth(db)
	contactRateMW := middleware.RateLimit(rate.Limit(1), 5)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := r.Group("/api")

	health.NewHandler(db).RegisterRoutes(api)

	category.NewHandler(category.NewService(db)).RegisterRoutes(api)
	post.NewHandler(post.NewService(db), a.logger).RegisterRoutes(api, authMW, adminMW, optionalMW)

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	contactSvc := contact.NewService(db)
	contact.NewHandler(contactSvc, sender, a.cfg.SiteName, a.logger).
		RegisterRoutes(api, contactRateMW, authMW, adminMW)
}
