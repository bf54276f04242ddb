package types

import (
	"time"

	"github.com/google/uuid"
)

// IngredientLine is one composer row: a name plus free-text amount/unit
// ("1/2" and "cup" are both opaque strings).
type IngredientLine struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// InstructionStep numbers are dense and 1-based; the composer renumbers
// on removal so drafts arrive contiguous.
type InstructionStep struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// TagCandidate may carry a durable identifier, a client-side placeholder,
// or nothing at all; resolution decides which.
type TagCandidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RecipeDraft is the immutable submission payload from the composer.
// Nothing is persisted until it is handed to the save workflow.
type RecipeDraft struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ImageURL     string            `json:"image_url"`
	PrepTime     int               `json:"prep_time"`
	CookTime     int               `json:"cook_time"`
	Servings     int               `json:"servings"`
	Ingredients  []IngredientLine  `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Tags         []TagCandidate    `json:"tags"`
}

// IngredientView is an ingredient line materialized from the store.
type IngredientView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Amount string    `json:"amount"`
	Unit   string    `json:"unit"`
}

type InstructionView struct {
	ID   uuid.UUID `json:"id"`
	Step int       `json:"step"`
	Text string    `json:"text"`
}

type TagView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// Recipe is the fully materialized object returned to clients: the stored
// row plus its child records.
type Recipe struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ImageURL     string            `json:"image_url"`
	PrepTime     int               `json:"prep_time"`
	CookTime     int               `json:"cook_time"`
	Servings     int               `json:"servings"`
	IsFavorite   bool              `json:"is_favorite"`
	Ingredients  []IngredientView  `json:"ingredients"`
	Instructions []InstructionView `json:"instructions"`
	Tags         []TagView         `json:"tags"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
