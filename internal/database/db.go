package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/jobboard-api/internal/models"
)

// Connect opens the Postgres connection and runs the schema migration.
// The connection is established once at process start; reconnect handling
// lives in the driver, not here.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Info("Database connection established")

	if err := db.AutoMigrate(&models.JobPosting{}); err != nil {
		return nil, err
	}
	return db, nil
}
