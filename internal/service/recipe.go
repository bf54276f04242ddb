package service

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipe-realm/backend/internal/models"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

const (
	// DefaultImageURL is used when a draft arrives without an image.
	DefaultImageURL = "https://images.unsplash.com/photo-1546069901-5ec6a79120b0?q=80&w=1000"

	// DefaultTagColor is the accent color applied to tags created without one.
	DefaultTagColor = "#FFA94D"
)

// durableIDPattern matches store-assigned identifiers (8-4-4-4-12 hex
// groups). Client-side placeholders never match.
var durableIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// RecipeService owns the recipe save workflow and recipe reads.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// SaveRecipe persists a draft and all of its child records for the given
// user. Each statement commits independently; there is no surrounding
// transaction. A failure while inserting the recipe, resolving or linking
// ingredients, or batch-inserting instructions aborts the remaining steps
// but does not roll back prior statements. A failure linking an individual
// tag is logged and that tag skipped; the save still succeeds.
func (s *RecipeService) SaveRecipe(ctx context.Context, userID uuid.UUID, draft types.RecipeDraft) (*types.Recipe, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, ErrTitleRequired
	}

	recipe := models.Recipe{
		Title:       draft.Title,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		PrepTime:    draft.PrepTime,
		CookTime:    draft.CookTime,
		Servings:    draft.Servings,
		IsFavorite:  false,
		UserID:      userID,
	}
	if recipe.ImageURL == "" {
		recipe.ImageURL = DefaultImageURL
	}
	if recipe.Servings == 0 {
		recipe.Servings = 1
	}
	recipe.Embedding = GenerateEmbedding(recipe.Title + " " + recipe.Description)

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		log.Printf("recipe save: inserting recipe %q: %v", draft.Title, err)
		return nil, &PersistenceError{Phase: PhaseRecipeInsert, Err: err}
	}

	ingredients := make([]types.IngredientView, 0, len(draft.Ingredients))
	for _, line := range draft.Ingredients {
		ingredientID, err := s.findOrCreateIngredient(ctx, line.Name)
		if err != nil {
			log.Printf("recipe save: resolving ingredient %q: %v", line.Name, err)
			return nil, &PersistenceError{Phase: PhaseIngredientResolve, Err: err}
		}

		join := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredientID,
			Amount:       line.Amount,
			Unit:         line.Unit,
		}
		if err := s.db.WithContext(ctx).Create(&join).Error; err != nil {
			log.Printf("recipe save: linking ingredient %q: %v", line.Name, err)
			return nil, &PersistenceError{Phase: PhaseIngredientLink, Err: err}
		}

		ingredients = append(ingredients, types.IngredientView{
			ID:     join.ID,
			Name:   line.Name,
			Amount: line.Amount,
			Unit:   line.Unit,
		})
	}

	instructions := make([]types.InstructionView, 0, len(draft.Instructions))
	if len(draft.Instructions) > 0 {
		rows := make([]models.RecipeInstruction, len(draft.Instructions))
		for i, step := range draft.Instructions {
			rows[i] = models.RecipeInstruction{
				RecipeID: recipe.ID,
				Step:     step.Step,
				Text:     step.Text,
			}
		}
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			log.Printf("recipe save: inserting %d instructions: %v", len(rows), err)
			return nil, &PersistenceError{Phase: PhaseInstructionInsert, Err: err}
		}
		for _, row := range rows {
			instructions = append(instructions, types.InstructionView{ID: row.ID, Step: row.Step, Text: row.Text})
		}
	}

	tags := make([]types.TagView, 0, len(draft.Tags))
	for _, candidate := range draft.Tags {
		tagID, err := s.ResolveTag(ctx, userID, candidate)
		if err != nil {
			log.Printf("recipe save: resolving tag %q: %v", candidate.Name, err)
			return nil, err
		}

		link := models.RecipeTag{RecipeID: recipe.ID, TagID: tagID}
		if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
			// A single tag link failure does not abort the save.
			log.Printf("recipe save: linking tag %q to recipe %s failed, skipping: %v", candidate.Name, recipe.ID, err)
			continue
		}

		color := candidate.Color
		if color == "" {
			color = DefaultTagColor
		}
		tags = append(tags, types.TagView{ID: tagID, Name: candidate.Name, Color: color})
	}

	return &types.Recipe{
		ID:           recipe.ID,
		UserID:       recipe.UserID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		ImageURL:     recipe.ImageURL,
		PrepTime:     recipe.PrepTime,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
		IsFavorite:   false,
		Ingredients:  ingredients,
		Instructions: instructions,
		Tags:         tags,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}, nil
}

// findOrCreateIngredient resolves an ingredient name to its shared row,
// creating it when absent. Ingredients created earlier in the same save are
// visible to later lines; concurrent saves from other sessions can race on
// creation, which the store tolerates.
func (s *RecipeService) findOrCreateIngredient(ctx context.Context, name string) (uuid.UUID, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).First(&ingredient, "name = ?", name).Error
	if err == nil {
		return ingredient.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	ingredient = models.Ingredient{Name: name}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return uuid.Nil, err
	}
	return ingredient.ID, nil
}

// ResolveTag turns a tag candidate into a durable identifier usable in a
// join row. A candidate whose identifier already has the durable format is
// trusted as-is with no existence check; otherwise the tag is looked up by
// exact name and created when missing.
func (s *RecipeService) ResolveTag(ctx context.Context, userID uuid.UUID, candidate types.TagCandidate) (uuid.UUID, error) {
	if durableIDPattern.MatchString(candidate.ID) {
		id, err := uuid.Parse(candidate.ID)
		if err != nil {
			return uuid.Nil, &PersistenceError{Phase: PhaseTagResolve, Err: err}
		}
		return id, nil
	}

	var tag models.Tag
	err := s.db.WithContext(ctx).First(&tag, "name = ?", candidate.Name).Error
	if err == nil {
		return tag.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, &PersistenceError{Phase: PhaseTagResolve, Err: err}
	}

	color := candidate.Color
	if color == "" {
		color = DefaultTagColor
	}
	tag = models.Tag{Name: candidate.Name, Color: color, UserID: &userID}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return uuid.Nil, &PersistenceError{Phase: PhaseTagResolve, Err: err}
	}
	return tag.ID, nil
}

// GetRecipe fetches a recipe with its ingredients, instructions and tags
// materialized.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var lines []struct {
		ID     uuid.UUID
		Name   string
		Amount string
		Unit   string
	}
	err := s.db.WithContext(ctx).Table("recipe_ingredients").
		Select("recipe_ingredients.id, ingredients.name, recipe_ingredients.amount, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", id).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	var steps []models.RecipeInstruction
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", id).Order("step ASC").Find(&steps).Error; err != nil {
		return nil, err
	}

	var tagRows []models.Tag
	err = s.db.WithContext(ctx).Table("tags").
		Select("tags.id, tags.name, tags.color").
		Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
		Where("recipe_tags.recipe_id = ?", id).
		Scan(&tagRows).Error
	if err != nil {
		return nil, err
	}

	out := &types.Recipe{
		ID:          recipe.ID,
		UserID:      recipe.UserID,
		Title:       recipe.Title,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		Servings:    recipe.Servings,
		IsFavorite:  recipe.IsFavorite,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
	for _, l := range lines {
		out.Ingredients = append(out.Ingredients, types.IngredientView{ID: l.ID, Name: l.Name, Amount: l.Amount, Unit: l.Unit})
	}
	for _, st := range steps {
		out.Instructions = append(out.Instructions, types.InstructionView{ID: st.ID, Step: st.Step, Text: st.Text})
	}
	for _, tg := range tagRows {
		out.Tags = append(out.Tags, types.TagView{ID: tg.ID, Name: tg.Name, Color: tg.Color})
	}
	return out, nil
}

// ListRecipes returns a user's recipes, optionally filtered by a keyword
// query. On postgres the results are ordered by embedding distance to the
// query; elsewhere a plain LIKE filter applies.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, query string) ([]models.Recipe, error) {
	db := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			db = db.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		}
	}

	var recipes []models.Recipe
	if err := db.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetFavorite flips the favorite flag, a single-field update.
func (s *RecipeService) SetFavorite(ctx context.Context, userID, recipeID uuid.UUID, favorite bool) error {
	result := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Update("is_favorite", favorite)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetImageURL points a recipe the user owns at a newly stored image.
func (s *RecipeService) SetImageURL(ctx context.Context, userID, recipeID uuid.UUID, url string) error {
	result := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRecipe removes a recipe the user owns.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", recipeID).Error
}
