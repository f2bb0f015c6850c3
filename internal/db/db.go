package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"repairshop-backend/config"
	"repairshop-backend/internal/model"
)

// Open connects to the configured relational backend and runs migrations.
// TranslateError is required: it is what turns driver-specific unique
// constraint failures into gorm.ErrDuplicatedKey for both drivers.
func Open(cfg *config.StorageConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Backend {
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.Path)
	case config.BackendPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported relational backend %q", cfg.Backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Backend == config.BackendPostgres {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	} else {
		// Single-writer model: one connection keeps SQLite happy.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&model.Client{},
		&model.Equipment{},
		&model.Part{},
		&model.Technician{},
		&model.ServiceOrder{},
		&model.ServiceType{},
		&model.PaymentMethod{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Println("Database initialization complete.")
	return db, nil
}
