package database

import (
	"MovingAssistant/internal/config"
	"MovingAssistant/internal/models"
	"MovingAssistant/internal/services"
	"fmt"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"time"
)

var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}

func SetupDatabase(configuration *config.Configuration, logService services.LogService) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch configuration.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(configuration.Database.Path)
	case "postgres":
		dsn, err := PostgresDSN()
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", configuration.Database.Driver)
	}
	return Open(dialector, NewGormLogger(logService))
}

// PostgresDSN builds the connection string from DB_* variables, reading .env first when present.
func PostgresDSN() (string, error) {
	_ = godotenv.Load()
	for _, envVariable := range envVariables {
		if envVariable == "DB_SSLMODE" {
			if os.Getenv(envVariable) == "" {
				if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
					return "", err
				}
			}
			continue
		}
		if os.Getenv(envVariable) == "" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

// Open connects through dialector and migrates the moving_session and moving_box tables.
func Open(dialector gorm.Dialector, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(&models.MovingSession{}, &models.MovingBox{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func NewGormLogger(logService services.LogService) logger.Interface {
	return logger.New(logService.Log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func CloseDatabase(db *gorm.DB, logService services.LogService) {
	sqlDB, err := db.DB()
	if err != nil {
		logService.Log.Errorf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logService.Log.Errorf("Error closing database: %v", err)
	}
}
