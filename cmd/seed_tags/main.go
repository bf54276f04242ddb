package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/pageza/recipe-realm/backend/config"
	"github.com/pageza/recipe-realm/backend/internal/database"
	"github.com/pageza/recipe-realm/backend/internal/models"
)

// Global tags shown to every user. A nil UserID marks a tag as shared.
var globalTags = []models.Tag{
	{Name: "Breakfast", Color: "#FFD166"},
	{Name: "Lunch", Color: "#4CB944"},
	{Name: "Dinner", Color: "#FF6B35"},
	{Name: "Dessert", Color: "#FF8BA7"},
	{Name: "Snack", Color: "#FFA94D"},
	{Name: "Vegetarian", Color: "#3ABBB3"},
	{Name: "Vegan", Color: "#9B87F5"},
	{Name: "Quick", Color: "#F25F5C"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeded := 0
	for _, tag := range globalTags {
		var existing models.Tag
		err := db.Where("name = ? AND user_id IS NULL", tag.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check tag %q: %v", tag.Name, err)
		}

		if err := db.Create(&tag).Error; err != nil {
			log.Fatalf("Failed to create tag %q: %v", tag.Name, err)
		}
		seeded++
	}

	log.Printf("Seeded %d global tags", seeded)
}
