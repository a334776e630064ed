package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkpage/linkpage/pkg/linkpage/analytics"
	"github.com/linkpage/linkpage/pkg/linkpage/auth"
	"github.com/linkpage/linkpage/pkg/linkpage/config"
	"github.com/linkpage/linkpage/pkg/linkpage/database"
	"github.com/linkpage/linkpage/pkg/linkpage/geo"
	"github.com/linkpage/linkpage/pkg/linkpage/models"
	"github.com/linkpage/linkpage/pkg/linkpage/profiles"
	"github.com/linkpage/linkpage/pkg/linkpage/redirect"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linkpage/linkpage/api/swagger"
)

// @title Linkpage API
// @version 1.0
// @description A link-in-bio profile service with click analytics.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT from the identity layer. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	resolver := geo.NewResolver(cfg.GeoAPIBaseURL, time.Duration(cfg.GeoTimeoutSec)*time.Second)
	recorder := analytics.NewRecorder(db, resolver)

	// Set up Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "linkpage",
			})
		})

		profilesHandler := profiles.NewHandler(db)

		// Public routes: the profile page, the click beacon and the
		// stats dashboard feed
		profilesHandler.RegisterPublicRoutes(api)

		analyticsHandler := analytics.NewHandler(db, recorder)
		analyticsHandler.RegisterRoutes(api)

		// Profile management requires a token from the identity layer
		profilesHandler.RegisterRoutes(api.Group("", auth.AuthMiddleware()))
	}

	// Serve static frontend files if web/dist exists
	if _, err := os.Stat(cfg.WebDistPath); err == nil {
		r.Static("/assets", filepath.Join(cfg.WebDistPath, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(cfg.WebDistPath, "favicon.ico"))

		// SPA fallback - serve index.html for frontend routes
		indexHTML := filepath.Join(cfg.WebDistPath, "index.html")
		spaRoutes := []string{"/", "/login", "/dashboard", "/stats", "/settings"}
		for _, route := range spaRoutes {
			r.GET(route, func(c *gin.Context) {
				c.File(indexHTML)
			})
		}
		// Public profile pages like /u-abc123
		r.GET("/p/*path", func(c *gin.Context) {
			c.File(indexHTML)
		})

		log.Printf("Serving frontend from %s", cfg.WebDistPath)
	} else {
		log.Printf("No frontend build found at %s - API only mode", cfg.WebDistPath)
	}

	// Tracked redirect routes (public)
	redirectHandler := redirect.NewHandler(db, recorder)
	redirectHandler.RegisterRoutes(r)

	log.Printf("Starting Linkpage server on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
