package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	ImageURL    string          `gorm:"size:255" json:"image_url"`
	PrepTime    int             `gorm:"not null;default:0" json:"prep_time"`
	CookTime    int             `gorm:"not null;default:0" json:"cook_time"`
	Servings    int             `gorm:"not null;default:1" json:"servings"`
	IsFavorite  bool            `gorm:"not null;default:false" json:"is_favorite"`
	Embedding   pgvector.Vector `gorm:"type:vector(3)" json:"-"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient is a globally shared row, deduplicated by exact name.
// No uniqueness constraint is enforced at this layer; concurrent
// find-or-create from separate sessions is last-write-wins.
type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:255;not null" json:"name"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient joins a recipe to an ingredient with the per-line
// free-text amount and unit from the composer.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null" json:"ingredient_id"`
	Amount       string    `gorm:"size:50" json:"amount"`
	Unit         string    `gorm:"size:50" json:"unit"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

type RecipeInstruction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Step      int       `gorm:"not null" json:"step"`
	Text      string    `gorm:"type:text;not null" json:"text"`
}

func (ri *RecipeInstruction) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// Tag rows with a nil UserID are global, including the seeded set.
type Tag struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Name      string     `gorm:"size:50;not null" json:"name"`
	Color     string     `gorm:"size:7" json:"color"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type RecipeTag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	TagID     uuid.UUID `gorm:"type:uuid;not null" json:"tag_id"`
}

func (rt *RecipeTag) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}
