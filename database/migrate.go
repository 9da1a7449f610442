package database

import (
	"fmt"
	"log"

	"runji/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the six application tables.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.School{},
		&models.Exam{},
		&models.Question{},
		&models.Student{},
		&models.Submission{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}
