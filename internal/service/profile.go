package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/internal/models"
)

// ProfileService reads and updates user profiles.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) (*models.Profile, error) {
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
