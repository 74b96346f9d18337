package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type GormConfig struct {
	Driver   string
	DSN      string
	LogLevel logger.LogLevel
}

func getLogger(level logger.LogLevel) logger.Interface {
	if level == 0 {
		level = logger.Warn
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// sqlite allows one writer; a single connection serializes every transaction.
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return nil
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func dialector(cfg GormConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewGormDB(cfg GormConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}

	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: getLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, err
	}

	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if err := configureConnectionPool(db, driver); err != nil {
		return nil, err
	}

	return db, nil
}

// NewInMemory opens a private in-memory sqlite database named after name.
func NewInMemory(name string) (*gorm.DB, error) {
	return NewGormDB(GormConfig{
		Driver:   DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: logger.Silent,
	})
}
