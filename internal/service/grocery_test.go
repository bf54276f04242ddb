package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/testhelpers"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

func TestGroceryListLifecycle(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewGroceryService(db)
	user := testhelpers.CreateTestUser(t, db)

	list, err := svc.CreateList(context.Background(), user.ID, "Weekly shop")
	require.NoError(t, err)

	lists, err := svc.ListLists(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Weekly shop", lists[0].Name)

	item, err := svc.AddItem(context.Background(), user.ID, list.ID, "Milk", "1", "liter")
	require.NoError(t, err)
	assert.False(t, item.Checked)

	checked, err := svc.ToggleItem(context.Background(), user.ID, list.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, checked)

	checked, err = svc.ToggleItem(context.Background(), user.ID, list.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, checked)

	require.NoError(t, svc.DeleteItem(context.Background(), user.ID, list.ID, item.ID))

	items, err := svc.ListItems(context.Background(), user.ID, list.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, svc.DeleteList(context.Background(), user.ID, list.ID))

	_, err = svc.ListItems(context.Background(), user.ID, list.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroceryListOwnership(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewGroceryService(db)
	user := testhelpers.CreateTestUser(t, db)
	other := testhelpers.CreateTestUser(t, db)

	list, err := svc.CreateList(context.Background(), user.ID, "Private")
	require.NoError(t, err)

	_, err = svc.ListItems(context.Background(), other.ID, list.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.AddItem(context.Background(), other.ID, list.ID, "Milk", "", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteList(context.Background(), other.ID, list.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddRecipeIngredientsToList(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	grocery := service.NewGroceryService(db)
	recipes := service.NewRecipeService(db)
	user := testhelpers.CreateTestUser(t, db)

	saved, err := recipes.SaveRecipe(context.Background(), user.ID, types.RecipeDraft{
		Title: "Buttered Toast",
		Ingredients: []types.IngredientLine{
			{Name: "Bread", Amount: "2", Unit: "slices"},
			{Name: "Butter", Amount: "1", Unit: "tbsp"},
		},
	})
	require.NoError(t, err)

	list, err := grocery.CreateList(context.Background(), user.ID, "Weekend")
	require.NoError(t, err)

	items, err := grocery.AddRecipeIngredients(context.Background(), user.ID, list.ID, saved.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	names := []string{items[0].Name, items[1].Name}
	assert.ElementsMatch(t, []string{"Bread", "Butter"}, names)
	for _, item := range items {
		require.NotNil(t, item.RecipeID)
		assert.Equal(t, saved.ID, *item.RecipeID)
	}
}

func TestDeleteMissingGroceryItem(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewGroceryService(db)
	user := testhelpers.CreateTestUser(t, db)

	list, err := svc.CreateList(context.Background(), user.ID, "Weekly shop")
	require.NoError(t, err)

	err = svc.DeleteItem(context.Background(), user.ID, list.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
