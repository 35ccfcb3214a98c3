package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file at dbPath, creating its directory if
// needed, and ensures the gardens table exists.
func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.EnsureSchema(); err != nil {
		_ = database.Close()
		return nil, err
	}

	zap.S().Infof("Connected to SQLite database at %s", dbPath)
	return database, nil
}

// EnsureSchema creates the gardens table if it does not exist.
func (d *Database) EnsureSchema() error {
	if err := d.DB.Exec(gardensSchema).Error; err != nil {
		return fmt.Errorf("failed to create gardens table: %w", err)
	}
	zap.S().Info("Gardens table verified")
	return nil
}

// Ping checks that the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newGormLogger routes GORM's SQL logging through the global zap logger.
func newGormLogger() logger.Interface {
	return logger.New(
		zap.NewStdLog(zap.L().Named("gorm")),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
