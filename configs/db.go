package configs

import (
	"fmt"

	"storefront/entity"
	"storefront/repository"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ConnectionDB opens the relational store named by cfg.
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DBSource)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("driver %q has no database", cfg.DBDriver)
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Item{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.User{},
		&entity.UserOrder{}, &entity.UserOrderItem{},
	)
}

// OpenStores returns the stores for the configured driver, migrating the
// schema for relational backends.
func OpenStores(cfg *Config, log *zap.Logger) (repository.Stores, error) {
	if cfg.DBDriver == DriverMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return repository.NewMemoryStores(), nil
	}
	db, err := ConnectionDB(cfg)
	if err != nil {
		return repository.Stores{}, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	if err := SetupDatabase(db); err != nil {
		return repository.Stores{}, fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready", zap.String("driver", cfg.DBDriver))
	return repository.NewGormStores(db), nil
}
