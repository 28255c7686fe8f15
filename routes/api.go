package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freight-parser/app/controllers"
)

// SetupAPIRoutes registers the versioned API surface.
func SetupAPIRoutes(router *gin.Engine, parseController *controllers.ParseController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		messages := v1.Group("/messages")
		{
			messages.POST("/parse", parseController.ParseMessage)
			messages.POST("/suggest", parseController.Suggest)
			messages.POST("/jobs", parseController.BatchParse)
			messages.GET("/jobs/:jobID/status", parseController.GetJobStatus)
			messages.GET("/jobs/:jobID/results", parseController.GetJobResults)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", adminController.ListReviews)
			reviews.POST("/:reviewID/approve", adminController.ApproveReview)
			reviews.POST("/:reviewID/reject", adminController.RejectReview)
			reviews.POST("/:reviewID/correct", adminController.CorrectReview)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/stats", adminController.GetStats)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.POST("/search/reseed", adminController.ReseedSearchIndex)
		}

		v1.GET("/health", parseController.HealthCheck)
	}
}

// SetupHealthRoutes registers root-level health probes.
func SetupHealthRoutes(router *gin.Engine, parseController *controllers.ParseController) {
	router.GET("/health", parseController.HealthCheck)
	router.GET("/ready", parseController.HealthCheck)
	router.GET("/live", parseController.HealthCheck)
}

// SetupMetricsRoutes exposes the Prometheus scrape endpoint.
func SetupMetricsRoutes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, parseController *controllers.ParseController, adminController *controllers.AdminController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, parseController)
	SetupAPIRoutes(router, parseController, adminController)
	SetupMetricsRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
