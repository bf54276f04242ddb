package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType values accepted by the planner.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealDessert   = "dessert"
)

// ValidMealType reports whether t is one of the planner's meal slots.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert:
		return true
	}
	return false
}

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	MealType  string    `gorm:"size:20;not null" json:"meal_type"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
