package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-realm/backend/internal/middleware"
)

// When Redis is unreachable the limiter must fail open rather than block
// traffic.
func TestRateLimiterFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     1,
		KeyPrefix: "ratelimit:test",
	})

	engine := gin.New()
	engine.GET("/limited", func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	}, limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
	}
}

func TestRateLimiterRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), middleware.RateLimitConfig{
		Window: time.Minute,
		Limit:  1,
	})

	engine := gin.New()
	engine.GET("/limited", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
