package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/models"
	"github.com/pageza/recipe-realm/backend/internal/service"
)

// TestJWTSecret signs tokens in tests.
const TestJWTSecret = "test-jwt-secret"

// CreateTestUser inserts a user with a bcrypt-hashed password and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        fmt.Sprintf("testuser+%s@example.com", uuid.New().String()),
		PasswordHash: string(hashed),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestUserAndToken inserts a user and returns their ID with a valid
// bearer token for request-level tests.
func CreateTestUserAndToken(t *testing.T, db *gorm.DB) (uuid.UUID, string) {
	t.Helper()

	user := CreateTestUser(t, db)

	auth := service.NewAuthService(db, TestJWTSecret)
	token, err := auth.TokenForUser(user.ID)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return user.ID, token
}

// CreateTestRecipe inserts a bare recipe row owned by userID.
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, title string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Title:    title,
		Servings: 1,
		UserID:   userID,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
