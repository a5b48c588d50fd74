package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/therapylog/internal/models"
)

// Store is the SQLite-backed persistence layer for patients and sessions
type Store struct {
	db *gorm.DB
}

// Open sets up the database connection and ensures the schema exists
func Open(dbPath string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database connection
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
		// session.patient_id is a plain column; bad ids are tolerated
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.runMigrations(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// runMigrations creates the patients and sessions tables when missing.
// AutoMigrate only adds; it never drops columns, so this is safe on every start.
func (s *Store) runMigrations() error {
	return s.db.AutoMigrate(
		&models.Patient{},
		&models.Session{},
	)
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
