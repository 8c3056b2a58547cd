package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "go_seo/api/v1"
	"go_seo/internal/audit"
	"go_seo/internal/auth"
	"go_seo/internal/cache"
	"go_seo/internal/config"
	"go_seo/internal/db"
	"go_seo/internal/metadata"
	"go_seo/internal/redirect"
	"go_seo/internal/sitemap"
	"go_seo/internal/ws"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Println("✓ Configuration loaded")

	// 2. Initialize MySQL
	if err := db.InitMySQL(cfg.MySQL.DSN); err != nil {
		log.Fatalf("Failed to initialize MySQL: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3. Run migrations when requested
	if cfg.Migrate {
		if err := db.Migrate(db.Get()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
			os.Exit(1)
		}
		log.Println("✓ Migrations applied")
	}

	// 4. Initialize Redis
	if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	defer cache.Close()

	// 5. Initialize JWT
	auth.InitJWT(cfg.JWT.Secret)

	// 6. Initialize Socket.IO server
	if err := ws.InitServer(); err != nil {
		log.Fatalf("Failed to initialize Socket.IO server: %v", err)
		os.Exit(1)
	}

	logger := logrus.NewEntry(logrus.StandardLogger())

	// 7. Build services
	metaSvc := metadata.NewService(metadata.NewGormRepository(db.Get()), cfg.SEO, logger)
	sitemapSvc := sitemap.NewService(sitemap.NewGormRepository(db.Get()), cfg.SEO.CacheTTLSec, logger)
	analyzer := audit.NewAnalyzer(cfg.Audit, cfg.SEO.MobileViewportWidth, logger)
	auditSvc := audit.NewService(db.Get(), analyzer, cfg.Audit, logger, ws.PublishAuditEvent)
	resolver := redirect.NewResolver(redirect.NewGormRepository(db.Get()), logger)

	// 8. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Redirect resolution runs before routing-level handlers
	r.Use(redirect.Middleware(resolver, logger))

	// Public sitemap endpoint
	r.GET("/sitemap.xml", sitemap.Handler(sitemapSvc))

	// Socket.IO endpoint with JWT-authenticated handshake
	wsHandler := ws.WrapWithAuth(ws.Server)
	r.GET("/socket.io/*any", gin.WrapH(wsHandler))
	r.POST("/socket.io/*any", gin.WrapH(wsHandler))

	// Setup API v1 routes
	v1.SetupRouter(r, db.Get(), cfg, metaSvc, sitemapSvc, auditSvc)

	log.Printf("✓ Server starting on %s", cfg.HTTPAddr)

	// Start server
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
