package config

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
)

// NewDatabaseClient opens the database and applies the schema. A postgres
// DSN selects the postgres driver; anything else is treated as a sqlite file
// path, which also covers local development.
func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}
