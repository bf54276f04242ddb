package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/recipe-realm/backend/config"
	"github.com/pageza/recipe-realm/backend/internal/api"
	"github.com/pageza/recipe-realm/backend/internal/database"
	"github.com/pageza/recipe-realm/backend/internal/middleware"
	"github.com/pageza/recipe-realm/backend/internal/router"
	"github.com/pageza/recipe-realm/backend/internal/server"
	"github.com/pageza/recipe-realm/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		log.Println("JWT_SECRET not set, using development secret")
		jwtSecret = "development-secret"
	}

	rawDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to open gorm connection: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: without it the suggestion cache and rate limiter
	// are disabled but the API still serves.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	ctx := context.Background()

	var images *service.ImageService
	if s3Cfg, err := config.NewS3Config(ctx); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		images = service.NewImageService(s3Cfg)
	}

	authService := service.NewAuthService(db, jwtSecret)
	recipeService := service.NewRecipeService(db)
	plannerService := service.NewPlannerService(db)
	groceryService := service.NewGroceryService(db)
	profileService := service.NewProfileService(db)

	suggestionService, err := service.NewSuggestionService(redisClient)
	if err != nil {
		log.Fatalf("Failed to initialize suggestion service: %v", err)
	}

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:suggestions",
		})
	}

	handlers := router.Handlers{
		Health:      api.NewHealthHandler(rawDB),
		Auth:        api.NewAuthHandler(authService),
		Recipes:     api.NewRecipeHandler(recipeService, images),
		Suggestions: api.NewSuggestionHandler(suggestionService),
		Planner:     api.NewPlannerHandler(plannerService),
		Grocery:     api.NewGroceryHandler(groceryService),
		Profile:     api.NewProfileHandler(profileService, images),
	}

	engine := router.SetupRouter(handlers, authService, limiter)
	srv := server.New(engine, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
