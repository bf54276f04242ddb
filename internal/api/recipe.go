package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

type RecipeHandler struct {
	recipes *service.RecipeService
	images  *service.ImageService
}

// NewRecipeHandler creates a recipe handler. images may be nil when S3 is
// not configured; the image upload route then responds 503.
func NewRecipeHandler(recipes *service.RecipeService, images *service.ImageService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/favorite", h.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", h.UnfavoriteRecipe)
		recipes.POST("/:id/image", h.UploadImage)
	}
}

// CreateRecipe runs the save workflow for a submitted draft.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var draft types.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)

	recipe, err := h.recipes.SaveRecipe(c.Request.Context(), userID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthenticationRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// Persistence failures surface to the user as one generic message.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving recipe"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID := currentUserID(c)
	if userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID := currentUserID(c)
	if err := h.recipes.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully", "id": id.String()})
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	h.setFavorite(c, true)
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	h.setFavorite(c, false)
}

func (h *RecipeHandler) setFavorite(c *gin.Context, favorite bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID := currentUserID(c)
	if err := h.recipes.SetFavorite(c.Request.Context(), userID, id, favorite); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.String(), "is_favorite": favorite})
}

// UploadImage replaces a recipe's picture with an uploaded file.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 5MB limit"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := h.recipes.SetImageURL(c.Request.Context(), currentUserID(c), id, url); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.String(), "image_url": url})
}

// currentUserID reads the authenticated user set by the auth middleware.
// Routes registered without the middleware yield uuid.Nil, which the save
// workflow rejects before any write.
func currentUserID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
