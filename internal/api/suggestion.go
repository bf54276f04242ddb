package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

type SuggestionHandler struct {
	suggester service.Suggester
}

func NewSuggestionHandler(suggester service.Suggester) *SuggestionHandler {
	return &SuggestionHandler{suggester: suggester}
}

func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/suggestions", h.Suggest)
}

// Suggest forwards the prompt and always answers with usable text; an
// unavailable endpoint is reported alongside the fallback reply rather
// than as a failed request.
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req types.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := h.suggester.Suggest(c.Request.Context(), req.Prompt)
	if err != nil && !errors.Is(err, service.ErrSuggestionUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recipe suggestions"})
		return
	}

	resp := gin.H{"text": text}
	if errors.Is(err, service.ErrSuggestionUnavailable) {
		resp["unavailable"] = true
	}
	c.JSON(http.StatusOK, resp)
}
