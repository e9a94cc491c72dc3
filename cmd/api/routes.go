package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// process-wide fallback: anything uncaught becomes a generic 500
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := make(map[string]bool)
	for _, origin := range app.Config.GetCORSOrigins() {
		trusted[origin] = true
	}
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", app.Handler.Health)

		placements := api.Group("/placements")
		{
			placements.GET("", app.Handler.ListPlacements)
			placements.GET("/filters/options", app.Handler.PlacementFilterOptions)
			placements.GET("/:id", app.Handler.GetPlacement)
		}

		higherEducation := api.Group("/higher-education")
		{
			higherEducation.GET("", app.Handler.ListHigherEducation)
			higherEducation.GET("/filters/options", app.Handler.HigherEducationFilterOptions)
			higherEducation.GET("/:id", app.Handler.GetHigherEducation)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", app.Handler.AdminLogin)

			protected := admin.Group("/")
			protected.Use(app.RequireAdmin())
			{
				protected.POST("/placements", app.Handler.CreatePlacement)
				protected.PUT("/placements/:id", app.Handler.UpdatePlacement)
				protected.DELETE("/placements/:id", app.Handler.DeletePlacement)

				protected.POST("/higher-education", app.Handler.CreateHigherEducation)
				protected.PUT("/higher-education/:id", app.Handler.UpdateHigherEducation)
				protected.DELETE("/higher-education/:id", app.Handler.DeleteHigherEducation)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
