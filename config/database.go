package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"hoteljt/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func postgresDSN() string {
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := GetEnvDefault("DB_PORT", "5432")
	name := os.Getenv("DB_NAME")
	sslmode := GetEnvDefault("DB_SSLMODE", "disable")
	tz := GetEnvDefault("TZ", "America/Sao_Paulo")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, name, port, sslmode, tz)
}

// ConnectDB opens the store. SQLite is the default, as the first deployments
// ran on a single file database; PostgreSQL is selected with DB_DRIVER.
func ConnectDB() error {
	var dialector gorm.Dialector

	switch strings.ToLower(GetEnvDefault("DB_DRIVER", "sqlite")) {
	case "postgres":
		dialector = postgres.Open(postgresDSN())
	case "sqlite":
		dialector = sqlite.Open(GetEnvDefault("DB_PATH", "hotelJT.db"))
	default:
		return fmt.Errorf("unknown DB_DRIVER: %s", os.Getenv("DB_DRIVER"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to db: %v", err)
	}

	log.Println("Successfully connected to db")
	return nil
}

// MigrateDB keeps the schema in sync with the models.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(&models.Room{}, &models.Guest{}, &models.Booking{})
}
