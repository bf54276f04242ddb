package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/models"
	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/testhelpers"
)

func TestGetAndUpdateProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	user := testhelpers.CreateTestUser(t, db)

	require.NoError(t, db.Create(&models.Profile{
		UserID:    user.ID,
		FirstName: "Alex",
	}).Error)

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", profile.FirstName)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"first_name": "Sam",
		"last_name":  "Baker",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam", updated.FirstName)
	assert.Equal(t, "Baker", updated.LastName)
}

func TestGetProfileMissing(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	user := testhelpers.CreateTestUser(t, db)

	_, err := svc.GetProfile(context.Background(), user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
