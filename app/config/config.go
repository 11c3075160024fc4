package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all process-wide settings. It is loaded once at startup and
// injected into the components that need it; nothing reads the environment
// after Load returns.
type Config struct {
	Port       int
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Load reads configuration from the environment. In dev mode a .env file is
// loaded first. JWT_SECRET is required; its value is never logged.
func Load() (Config, error) {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	cfg := Config{
		Port:       getEnvInt("PORT", 8080),
		DBPath:     getEnv("DB_PATH", "data/badger"),
		JWTSecret:  secret,
		TokenTTL:   getEnvDuration("TOKEN_TTL", 10*time.Minute),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("BCRYPT_COST out of range: %d", cfg.BcryptCost)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
