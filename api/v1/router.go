package v1

import (
	"go_seo/api/v1/audits"
	"go_seo/api/v1/auth"
	apimetadata "go_seo/api/v1/metadata"
	"go_seo/api/v1/middleware"
	"go_seo/api/v1/redirects"
	"go_seo/api/v1/sitemap_entries"
	"go_seo/internal/audit"
	"go_seo/internal/config"
	"go_seo/internal/httpx"
	"go_seo/internal/metadata"
	"go_seo/internal/sitemap"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config, metaSvc *metadata.Service, sitemapSvc *sitemap.Service, auditSvc *audit.Service) {
	v1 := r.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/ping", pingHandler)

		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", auth.LoginHandler(db, cfg))
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/me", meHandler)

			// Redirect rules routes
			redirectsHandler := redirects.NewHandler(db)
			redirectsGroup := protected.Group("/redirects")
			{
				redirectsGroup.GET("", redirectsHandler.List)
				redirectsGroup.POST("/create", redirectsHandler.Create)
				redirectsGroup.POST("/update", redirectsHandler.Update)
				redirectsGroup.POST("/delete", redirectsHandler.Delete)
			}

			// Page metadata routes
			metadataHandler := apimetadata.NewHandler(db, metaSvc, cfg.SEO)
			metadataGroup := protected.Group("/metadata")
			{
				metadataGroup.GET("", metadataHandler.List)
				metadataGroup.GET("/preview", metadataHandler.Preview)
				metadataGroup.POST("/create", metadataHandler.Create)
				metadataGroup.POST("/update", metadataHandler.Update)
				metadataGroup.POST("/delete", metadataHandler.Delete)
			}

			// Sitemap entries routes
			sitemapHandler := sitemap_entries.NewHandler(db, sitemapSvc)
			sitemapGroup := protected.Group("/sitemap-entries")
			{
				sitemapGroup.GET("", sitemapHandler.List)
				sitemapGroup.POST("/create", sitemapHandler.Create)
				sitemapGroup.POST("/update", sitemapHandler.Update)
				sitemapGroup.POST("/delete", sitemapHandler.Delete)
			}

			// Audits routes
			auditsHandler := audits.NewHandler(auditSvc, cfg.SEO.AMPEnabled)
			auditsGroup := protected.Group("/audits")
			{
				auditsGroup.GET("", auditsHandler.List)
				auditsGroup.GET("/:requestId", auditsHandler.Get)
				auditsGroup.POST("/run", auditsHandler.Run)
				auditsGroup.POST("/amp-preview", auditsHandler.AMPPreview)
			}
		}
	}
}

// pingHandler handles the ping request using unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}

// meHandler returns current user information
func meHandler(c *gin.Context) {
	uid, _ := c.Get("uid")
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	httpx.OK(c, gin.H{
		"uid":      uid,
		"username": username,
		"role":     role,
	})
}
