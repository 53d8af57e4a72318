package database

import (
	"errors"
	"fmt"

	"github.com/mutantboi/blog-core/internal/config"
	"github.com/mutantboi/blog-core/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and runs auto-migration.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver; the slug generator
// depends on that to detect insert races.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Database.Path), gormCfg)
	default:
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:               cfg.Database.DSNValue(),
			DefaultStringSize: 191,
		}), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.PostModel{},
		&models.PostTag{},
		&models.ContactMessageModel{},
	)
}

// EnsureSeed creates the bootstrap admin account if it does not exist.
// Idempotent: safe to run on every startup.
func EnsureSeed(db *gorm.DB, admin config.SeedAdmin) error {
	if admin.Password == "" {
		return nil
	}

	var existing models.UserModel
	err := db.Where("username = ?", admin.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := models.UserModel{
		Username:    admin.Username,
		Email:       admin.Email,
		Password:    string(hash),
		Role:        models.RoleAdmin,
		DisplayName: admin.DisplayName,
	}
	return db.Create(&u).Error
}
