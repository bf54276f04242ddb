package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-realm/backend/internal/api"
	"github.com/pageza/recipe-realm/backend/internal/middleware"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Health      *api.HealthHandler
	Auth        *api.AuthHandler
	Recipes     *api.RecipeHandler
	Suggestions *api.SuggestionHandler
	Planner     *api.PlannerHandler
	Grocery     *api.GroceryHandler
	Profile     *api.ProfileHandler
}

// SetupRouter configures the application routes. limiter may be nil when
// Redis is unavailable; the suggestion route then runs unthrottled.
func SetupRouter(h Handlers, validator middleware.TokenValidator, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	v1 := router.Group("/api/v1")

	h.Health.RegisterRoutes(v1)
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Recipes.RegisterRoutes(protected)
		h.Planner.RegisterRoutes(protected)
		h.Grocery.RegisterRoutes(protected)
		h.Profile.RegisterRoutes(protected)

		suggestions := protected.Group("")
		if limiter != nil {
			suggestions.Use(limiter.Middleware())
		}
		h.Suggestions.RegisterRoutes(suggestions)
	}

	return router
}
