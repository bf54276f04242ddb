package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-realm/backend/internal/models"
	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/testhelpers"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, testhelpers.TestJWTSecret)

	token, err := auth.Register("cook@example.com", "password123", "Alex", "Cook")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "cook@example.com").Error)
	assert.NotEqual(t, "password123", user.PasswordHash)

	var profile models.Profile
	require.NoError(t, db.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Alex", profile.FirstName)

	loginToken, err := auth.Login("cook@example.com", "password123")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, testhelpers.TestJWTSecret)

	_, err := auth.Register("cook@example.com", "password123", "", "")
	require.NoError(t, err)

	_, err = auth.Register("cook@example.com", "different456", "", "")
	assert.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, testhelpers.TestJWTSecret)

	_, err := auth.Register("cook@example.com", "password123", "", "")
	require.NoError(t, err)

	_, err = auth.Login("cook@example.com", "wrongpassword")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, testhelpers.TestJWTSecret)
	otherAuth := service.NewAuthService(db, "some-other-secret")

	user := testhelpers.CreateTestUser(t, db)
	token, err := otherAuth.TokenForUser(user.ID)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)

	_, err = auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}
