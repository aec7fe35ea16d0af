package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func gormConfig(cfg *config.Config) *gorm.Config {
	level := logger.Info
	if cfg.GinMode == "release" {
		level = logger.Warn
	}

	return &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}
}

func open(cfg *config.Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, gormConfig(cfg))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// ConnectWithRetry opens the catalog database, retrying while the server
// is still coming up.
func ConnectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		var db *gorm.DB
		db, err = open(cfg)
		if err == nil {
			slog.Info("database connected", "driver", cfg.DBDriver, "attempt", attempt)
			return db, nil
		}

		slog.Warn("db not ready",
			"attempt", attempt,
			"max_attempts", cfg.DBConnectAttempts,
			"error", err,
		)

		if attempt < cfg.DBConnectAttempts {
			time.Sleep(cfg.DBConnectDelay)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
}

// Migrate creates or updates the catalog tables. Join and stock tables are
// migrated after the tables they reference so their foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Author{},
		&model.Genre{},
		&model.Book{},
		&model.Stock{},
		&model.BookAuthor{},
		&model.BookGenre{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
