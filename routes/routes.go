package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/guru0072/solo-leveling-ai/config"
	"github.com/guru0072/solo-leveling-ai/controllers"
	"github.com/guru0072/solo-leveling-ai/middlewares"
	"github.com/guru0072/solo-leveling-ai/services"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	tokens := services.NewTokenService(services.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	})

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup(tokens))
		auth.POST("/login", controllers.Login(tokens))
	}

	// Protected routes
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(tokens))
	{
		protected.POST("/exercise", controllers.LogExercise)
		protected.POST("/missions/generate", controllers.GenerateMissions)
		protected.GET("/missions", controllers.ListMissions)
	}

	return r
}
