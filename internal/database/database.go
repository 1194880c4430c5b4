package database

import (
	"log"

	"civicboard/internal/config"
	"civicboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Initialize sets up the database connection, runs migrations, and seeds
// the category catalog on first start.
func Initialize(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	// AutoMigrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Topic{},
		&models.Reply{},
		&models.Report{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	seedCategories(db)

	return db
}

// defaultCategories is the static catalog of discussion categories.
var defaultCategories = []models.Category{
	{ID: "general", Name: "General Discussion", Color: "#6b7280"},
	{ID: "infrastructure", Name: "Roads & Infrastructure", Color: "#f59e0b"},
	{ID: "schools", Name: "Schools & Education", Color: "#3b82f6"},
	{ID: "safety", Name: "Public Safety", Color: "#ef4444"},
	{ID: "environment", Name: "Parks & Environment", Color: "#22c55e"},
	{ID: "events", Name: "Local Events", Color: "#a855f7"},
}

func seedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatal("failed to count categories: ", err)
	}
	if count > 0 {
		return
	}
	if err := db.Create(&defaultCategories).Error; err != nil {
		log.Fatal("failed to seed categories: ", err)
	}
}
