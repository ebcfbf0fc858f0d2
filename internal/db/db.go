package db

import (
	"os"

	"miniforum/internal/logger"
	"miniforum/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the Postgres connection and creates the schema. Schema setup
// belongs to process bootstrap, not to the entity or handler logic.
func Init() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=miniforum port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	logger.Info.Printf("database connection established")

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Reply{},
	); err != nil {
		return nil, err
	}
	logger.Info.Printf("database migration completed")

	return gdb, nil
}
