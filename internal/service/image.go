package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/recipe-realm/backend/config"
)

// ImageService stores user-supplied recipe and avatar images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage stores image data under recipe-images/ and returns the
// public URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error) {
	key := path.Join("recipe-images", uuid.New().String()+extensionFor(contentType))
	return s.upload(ctx, key, data, contentType)
}

// UploadAvatar stores a profile picture under avatars/ and returns the
// public URL.
func (s *ImageService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	key := path.Join("avatars", userID.String()+extensionFor(contentType))
	return s.upload(ctx, key, data, contentType)
}

func (s *ImageService) upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("uploaded image to %s", publicURL)
	return publicURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
