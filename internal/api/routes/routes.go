package routes

import (
	"subtitles-backend/internal/api/handlers"
	"subtitles-backend/internal/api/middleware"
	"subtitles-backend/internal/config"
	"subtitles-backend/internal/permissions"
	"subtitles-backend/internal/repository"
	"subtitles-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize services
	store := repository.NewStore(db)
	checker := permissions.NewChecker()
	pipeline := service.NewPipeline(store, checker, validator)
	queryService := service.NewSubtitleQueryService(store, checker)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	subtitleHandler := handlers.NewSubtitleHandler(pipeline, queryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.User())
	{
		videos := v1.Group("/videos/:videoId")
		{
			videos.GET("/permissions", subtitleHandler.GetVideoPermissions)

			languages := videos.Group("/languages")
			{
				languages.GET("", subtitleHandler.ListLanguages)
				// writes are never trusted anonymously, an unknown committer would skip moderation
				languages.POST("/:languageCode/subtitles", middleware.RequireUser(), subtitleHandler.AddSubtitles)
				languages.POST("/:languageCode/rollback", middleware.RequireUser(), subtitleHandler.Rollback)
				languages.GET("/:languageCode/versions", subtitleHandler.ListVersions)
				languages.GET("/:languageCode/versions/:number", subtitleHandler.GetVersion)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
