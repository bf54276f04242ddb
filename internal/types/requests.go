package types

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SuggestRequest asks the AI chef for recipe ideas.
type SuggestRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// SuggestResponse carries the raw reply text. The endpoint is treated as
// text-in/text-out; no structured recipe fields are parsed out of it.
type SuggestResponse struct {
	Text string `json:"text"`
}

// CreateMealPlanRequest schedules a recipe on the weekly calendar.
type CreateMealPlanRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	MealType string `json:"meal_type" binding:"required"`
}

// CreateGroceryListRequest names a new list.
type CreateGroceryListRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddGroceryItemRequest appends one item to a list.
type AddGroceryItemRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// UpdateProfileRequest edits the profile fields a user may change.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}
