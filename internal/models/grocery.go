package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroceryList struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
}

func (g *GroceryList) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GroceryItem optionally remembers which recipe it came from.
type GroceryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	GroceryListID uuid.UUID  `gorm:"type:uuid;not null;index" json:"grocery_list_id"`
	RecipeID      *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Amount        string     `gorm:"size:50" json:"amount"`
	Unit          string     `gorm:"size:50" json:"unit"`
	Checked       bool       `gorm:"not null;default:false" json:"checked"`
}

func (g *GroceryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
