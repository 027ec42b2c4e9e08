package modelutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database named by dsn. postgres:// and
// postgresql:// URLs and "host=..." keyword strings select PostgreSQL;
// anything else is treated as a SQLite file name.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isPostgres(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	return db, nil
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.HasPrefix(dsn, "host=")
}

// baseline is recorded on every database so that the migration table is
// never empty.
var baseline = &gormigrate.Migration{
	ID:      "0",
	Migrate: func(*gorm.DB) error { return nil },
}

// Migrate initialises a clean database from models, applies migrations,
// and finally auto-migrates models so that tables of newly generated
// schemas are created.
func Migrate(db *gorm.DB, models []interface{}, migrations ...*gormigrate.Migration) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, append([]*gormigrate.Migration{baseline}, migrations...))

	m.InitSchema(func(tx *gorm.DB) error {
		logrus.Info("clean database detected, running full schema initialization")
		return tx.AutoMigrate(models...)
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if len(models) == 0 {
		return nil
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("error migrating db schema: %w", err)
	}

	return nil
}
