package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/guru0072/solo-leveling-ai/models"
)

var DB *gorm.DB

// Config is loaded once at startup and never mutated afterwards. Services
// that need pieces of it (the token service in particular) receive them at
// construction instead of reading the environment themselves.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "solo_leveling.db"),
		JWTSecret: getEnv("JWT_SECRET", "CHANGE_ME_TO_A_LONG_RANDOM_SECRET"),
		TokenTTL:  7 * 24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.Mission{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
