package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/models"
)

var ErrInvalidMealType = errors.New("meal type must be one of breakfast, lunch, dinner, snack or dessert")

// PlannerService manages the weekly meal calendar.
type PlannerService struct {
	db *gorm.DB
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db}
}

// ListWeek returns the user's meal plans for the seven days starting at
// start, ordered by date then meal slot.
func (s *PlannerService) ListWeek(ctx context.Context, userID uuid.UUID, start time.Time) ([]models.MealPlan, error) {
	end := start.AddDate(0, 0, 7)
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC, meal_type ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Schedule puts a recipe on the calendar for a date and meal slot.
func (s *PlannerService) Schedule(ctx context.Context, userID, recipeID uuid.UUID, date time.Time, mealType string) (*models.MealPlan, error) {
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, err
	}

	plan := models.MealPlan{
		UserID:   userID,
		RecipeID: recipeID,
		Date:     date,
		MealType: mealType,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// Unschedule removes a meal plan the user owns.
func (s *PlannerService) Unschedule(ctx context.Context, userID, planID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.MealPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
