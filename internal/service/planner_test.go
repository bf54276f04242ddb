package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/models"
	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/testhelpers"
)

func TestScheduleAndListWeek(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlannerService(db)
	user := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Toast")

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := svc.Schedule(context.Background(), user.ID, recipe.ID, monday, models.MealBreakfast)
	require.NoError(t, err)
	_, err = svc.Schedule(context.Background(), user.ID, recipe.ID, monday.AddDate(0, 0, 2), models.MealDinner)
	require.NoError(t, err)

	// Outside the requested week.
	_, err = svc.Schedule(context.Background(), user.ID, recipe.ID, monday.AddDate(0, 0, 9), models.MealLunch)
	require.NoError(t, err)

	week, err := svc.ListWeek(context.Background(), user.ID, monday)
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, models.MealBreakfast, week[0].MealType)
	assert.Equal(t, models.MealDinner, week[1].MealType)
}

func TestScheduleValidatesMealType(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlannerService(db)
	user := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Toast")

	_, err := svc.Schedule(context.Background(), user.ID, recipe.ID, time.Now(), "brunch")
	assert.ErrorIs(t, err, service.ErrInvalidMealType)
}

func TestScheduleRequiresExistingRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlannerService(db)
	user := testhelpers.CreateTestUser(t, db)

	_, err := svc.Schedule(context.Background(), user.ID, uuid.New(), time.Now(), models.MealLunch)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnschedule(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlannerService(db)
	user := testhelpers.CreateTestUser(t, db)
	other := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Toast")

	plan, err := svc.Schedule(context.Background(), user.ID, recipe.ID, time.Now(), models.MealSnack)
	require.NoError(t, err)

	err = svc.Unschedule(context.Background(), other.ID, plan.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.Unschedule(context.Background(), user.ID, plan.ID))

	err = svc.Unschedule(context.Background(), user.ID, plan.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
