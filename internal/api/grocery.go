package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

type GroceryHandler struct {
	grocery *service.GroceryService
}

func NewGroceryHandler(grocery *service.GroceryService) *GroceryHandler {
	return &GroceryHandler{grocery: grocery}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/grocery-lists")
	{
		lists.GET("", h.ListLists)
		lists.POST("", h.CreateList)
		lists.DELETE("/:id", h.DeleteList)
		lists.GET("/:id/items", h.ListItems)
		lists.POST("/:id/items", h.AddItem)
		lists.POST("/:id/recipes/:recipeId", h.AddRecipeIngredients)
		lists.POST("/:id/items/:itemId/toggle", h.ToggleItem)
		lists.DELETE("/:id/items/:itemId", h.DeleteItem)
	}
}

func (h *GroceryHandler) ListLists(c *gin.Context) {
	lists, err := h.grocery.ListLists(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grocery lists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grocery_lists": lists})
}

func (h *GroceryHandler) CreateList(c *gin.Context) {
	var req types.CreateGroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.grocery.CreateList(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create grocery list"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"grocery_list": list})
}

func (h *GroceryHandler) DeleteList(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.grocery.DeleteList(c.Request.Context(), currentUserID(c), listID); err != nil {
		respondGroceryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Grocery list deleted", "id": listID.String()})
}

func (h *GroceryHandler) ListItems(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.grocery.ListItems(c.Request.Context(), currentUserID(c), listID)
	if err != nil {
		respondGroceryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *GroceryHandler) AddItem(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.AddGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.grocery.AddItem(c.Request.Context(), currentUserID(c), listID, req.Name, req.Amount, req.Unit)
	if err != nil {
		respondGroceryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *GroceryHandler) AddRecipeIngredients(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return
	}

	items, err := h.grocery.AddRecipeIngredients(c.Request.Context(), currentUserID(c), listID, recipeID)
	if err != nil {
		respondGroceryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}

func (h *GroceryHandler) ToggleItem(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	checked, err := h.grocery.ToggleItem(c.Request.Context(), currentUserID(c), listID, itemID)
	if err != nil {
		respondGroceryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": itemID.String(), "checked": checked})
}

func (h *GroceryHandler) DeleteItem(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.grocery.DeleteItem(c.Request.Context(), currentUserID(c), listID, itemID); err != nil {
		respondGroceryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted", "id": itemID.String()})
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func respondGroceryError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Grocery list operation failed"})
}
