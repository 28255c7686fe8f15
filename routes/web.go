package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the informational root pages.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Freight Message Parser Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Freight Message Parser API v1",
				"endpoints": map[string]string{
					"parse":       "POST /v1/messages/parse",
					"suggest":     "POST /v1/messages/suggest",
					"batch":       "POST /v1/messages/jobs",
					"job_status":  "GET /v1/messages/jobs/:jobID/status",
					"job_results": "GET /v1/messages/jobs/:jobID/results",
					"reviews":     "GET /v1/reviews",
					"stats":       "GET /v1/admin/stats",
					"health":      "GET /health",
					"metrics":     "GET /metrics",
				},
			})
		})
	}
}
