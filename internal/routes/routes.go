package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/jobboard-api/internal/auth"
	"github.com/justsurfingit/jobboard-api/internal/handlers"
	"github.com/justsurfingit/jobboard-api/internal/middleware"
)

// SetupRouter builds the full routing table. The protected set is explicit:
// both GET routes on /api/jobs are public, every mutating verb goes through
// RequireAuth first.
func SetupRouter(log *zap.Logger, jobHandler *handlers.JobHandler, verifier auth.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
	})

	api := r.Group("/api")
	api.GET("/health", handlers.HealthCheck)

	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobHandler.GetAllJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)

		protected := jobs.Group("", middleware.RequireAuth(verifier, log))
		{
			protected.POST("", jobHandler.CreateJob)
			protected.PUT("/:id", jobHandler.EditJob)
			protected.DELETE("/:id", jobHandler.DeleteJob)
		}
	}

	return r
}
