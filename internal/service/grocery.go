package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/models"
)

// GroceryService manages shopping lists and their items.
type GroceryService struct {
	db *gorm.DB
}

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

func (s *GroceryService) CreateList(ctx context.Context, userID uuid.UUID, name string) (*models.GroceryList, error) {
	list := models.GroceryList{UserID: userID, Name: name}
	if err := s.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *GroceryService) ListLists(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error) {
	var lists []models.GroceryList
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *GroceryService) ListItems(ctx context.Context, userID, listID uuid.UUID) ([]models.GroceryItem, error) {
	if err := s.ownList(ctx, userID, listID); err != nil {
		return nil, err
	}
	var items []models.GroceryItem
	if err := s.db.WithContext(ctx).Where("grocery_list_id = ?", listID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GroceryService) AddItem(ctx context.Context, userID, listID uuid.UUID, name, amount, unit string) (*models.GroceryItem, error) {
	if err := s.ownList(ctx, userID, listID); err != nil {
		return nil, err
	}
	item := models.GroceryItem{
		GroceryListID: listID,
		Name:          name,
		Amount:        amount,
		Unit:          unit,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddRecipeIngredients copies a recipe's ingredient lines onto a list,
// remembering the source recipe on each item.
func (s *GroceryService) AddRecipeIngredients(ctx context.Context, userID, listID, recipeID uuid.UUID) ([]models.GroceryItem, error) {
	if err := s.ownList(ctx, userID, listID); err != nil {
		return nil, err
	}

	var lines []struct {
		Name   string
		Amount string
		Unit   string
	}
	err := s.db.WithContext(ctx).Table("recipe_ingredients").
		Select("ingredients.name, recipe_ingredients.amount, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	items := make([]models.GroceryItem, 0, len(lines))
	for _, line := range lines {
		item := models.GroceryItem{
			GroceryListID: listID,
			RecipeID:      &recipeID,
			Name:          line.Name,
			Amount:        line.Amount,
			Unit:          line.Unit,
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ToggleItem flips an item's checked state and returns the new value.
func (s *GroceryService) ToggleItem(ctx context.Context, userID, listID, itemID uuid.UUID) (bool, error) {
	if err := s.ownList(ctx, userID, listID); err != nil {
		return false, err
	}
	var item models.GroceryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ? AND grocery_list_id = ?", itemID, listID).Error; err != nil {
		return false, err
	}
	checked := !item.Checked
	if err := s.db.WithContext(ctx).Model(&item).Update("checked", checked).Error; err != nil {
		return false, err
	}
	return checked, nil
}

func (s *GroceryService) DeleteItem(ctx context.Context, userID, listID, itemID uuid.UUID) error {
	if err := s.ownList(ctx, userID, listID); err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Where("id = ? AND grocery_list_id = ?", itemID, listID).Delete(&models.GroceryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GroceryService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	if err := s.ownList(ctx, userID, listID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Where("grocery_list_id = ?", listID).Delete(&models.GroceryItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.GroceryList{}, "id = ?", listID).Error
}

func (s *GroceryService) ownList(ctx context.Context, userID, listID uuid.UUID) error {
	var list models.GroceryList
	return s.db.WithContext(ctx).First(&list, "id = ? AND user_id = ?", listID, userID).Error
}
