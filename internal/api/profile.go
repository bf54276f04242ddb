package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-realm/backend/internal/service"
	"github.com/pageza/recipe-realm/backend/internal/types"
)

// maxUploadBytes caps image uploads at 5 MiB.
const maxUploadBytes = 5 << 20

type ProfileHandler struct {
	profiles *service.ProfileService
	images   *service.ImageService
}

// NewProfileHandler creates a profile handler. images may be nil when S3
// is not configured; avatar upload then responds 503.
func NewProfileHandler(profiles *service.ProfileService, images *service.ImageService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, images: images}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/avatar", h.UploadAvatar)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	}
	if req.AvatarURL != "" {
		updates["avatar_url"] = req.AvatarURL
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), currentUserID(c), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "avatar exceeds 5MB limit"})
		return
	}

	userID := currentUserID(c)
	url, err := h.images.UploadAvatar(c.Request.Context(), userID, data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, map[string]interface{}{"avatar_url": url})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
