package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	checks := make(map[string]Pinger)
	if cfg.Database != nil {
		checks["database"] = cfg.Database
	}
	if queue, ok := cfg.TaskQueue.(Pinger); ok {
		checks["tasks"] = queue
	}
	health := NewHealthController(cfg.Version, checks)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api/v1")

	// Gardens API endpoints
	if cfg.Gardens != nil {
		gardens := NewGardensController(cfg.Gardens)
		api.GET("/gardens", gardens.List)
		api.POST("/gardens", gardens.Create)
		api.GET("/gardens/:id", gardens.Get)
		api.PUT("/gardens/:id", gardens.Update)
		api.DELETE("/gardens/:id", gardens.Delete)
	}

	// Snapshot endpoints
	if cfg.Snapshots != nil || cfg.TaskQueue != nil {
		snapshots := NewSnapshotController(cfg.Snapshots, cfg.TaskQueue, cfg.SnapshotPath)
		api.POST("/gardens/snapshot", snapshots.Export)
		if cfg.TaskQueue != nil {
			api.GET("/tasks/:id", snapshots.TaskStatus)
		}
	}

	if cfg.FrontendDir != "" {
		router.NoRoute(frontendHandler(cfg.FrontendDir))
	} else {
		router.NoRoute(func(c *gin.Context) {
			respondNotFound(c, "route")
		})
	}

	return router
}
