package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

type PlannerHandler struct {
	planner *service.PlannerService
}

func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.ListWeek)
		plans.POST("", h.Schedule)
		plans.DELETE("/:id", h.Unschedule)
	}
}

// ListWeek returns seven days of plans starting at ?start=YYYY-MM-DD,
// defaulting to today.
func (h *PlannerHandler) ListWeek(c *gin.Context) {
	userID := currentUserID(c)

	start := time.Now().Truncate(24 * time.Hour)
	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	plans, err := h.planner.ListWeek(c.Request.Context(), userID, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}

func (h *PlannerHandler) Schedule(c *gin.Context) {
	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	userID := currentUserID(c)
	plan, err := h.planner.Schedule(c.Request.Context(), userID, recipeID, date, req.MealType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMealType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule meal"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal_plan": plan})
}

func (h *PlannerHandler) Unschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	userID := currentUserID(c)
	if err := h.planner.Unschedule(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal plan removed", "id": id.String()})
}
