package db

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/config"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

func NewGormClient(cfg *config.Config, l *zap.SugaredLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsePostgres() {
		l.Info("Using postgres database.")
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		l.Infow("DATABASE_URL is not set, using sqlite file.", "path", cfg.SQLitePath)
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	}

	return Open(dialector, l)
}

// Open connects through the given dialector and migrates the schema.
func Open(dialector gorm.Dialector, l *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := connect(dialector, l)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func connect(dialector gorm.Dialector, l *zap.SugaredLogger) (*gorm.DB, error) {
	newLogger := logger.New(zap.NewStdLog(l.Desugar()), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		Colorful:                  false,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   newLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

// sqliteDSN turns on foreign key enforcement so sqlite and postgres agree on
// any constraint the schema declares. Migrations declare none.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1"
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return errors.Wrap(err, "migrate user")
	}
	if err := db.AutoMigrate(&models.Planet{}); err != nil {
		return errors.Wrap(err, "migrate planet")
	}
	if err := db.AutoMigrate(&models.Person{}); err != nil {
		return errors.Wrap(err, "migrate person")
	}
	if err := db.AutoMigrate(&models.Favorite{}); err != nil {
		return errors.Wrap(err, "migrate favorite")
	}
	return nil
}

// NewTestClient opens a private in-memory sqlite database. A single
// connection is kept so every query sees the same memory store.
func NewTestClient() (*gorm.DB, error) {
	db, err := connect(sqlite.Open(sqliteDSN(":memory:")), zap.NewNop().Sugar())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql db")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
