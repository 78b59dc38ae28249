package db

import (
	"fmt"
	"law_console_go/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the fixture database connection. It backs only the read-only
// financeiro/agenda collaborators; the case and client collections live in
// the JSON collection store, not here.
var DB *gorm.DB

// Initialize opens the fixture database and migrates the fixture models
func Initialize(dbPath string, environment string) error {
	logLevel := logger.Warn
	if environment == "development" {
		logLevel = logger.Info
	}

	// WAL mode so several console processes can read fixtures concurrently
	dsn := dbPath + "?_journal_mode=WAL"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to fixture database: %w", err)
	}

	if err := DB.AutoMigrate(&models.Invoice{}, &models.Appointment{}); err != nil {
		return fmt.Errorf("failed to migrate fixture models: %w", err)
	}

	log.Println("Fixture database ready (WAL mode enabled)")
	return nil
}

// Close closes the fixture database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
