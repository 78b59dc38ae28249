package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// DataDir holds the JSON collection slots shared between console processes
	DataDir string
	// DBPath is the sqlite file backing the read-only financeiro/agenda fixtures
	DBPath string
	// RefreshInterval is the backstop poll period for the dashboard read-model
	RefreshInterval time.Duration
	AllowedOrigins  []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	refreshMs := getEnvInt("REFRESH_INTERVAL_MS", 1000)
	if refreshMs <= 0 {
		log.Printf("[WARNING] REFRESH_INTERVAL_MS must be positive, falling back to 1000")
		refreshMs = 1000
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DataDir:         getEnv("DATA_DIR", "data"),
		DBPath:          getEnv("DB_PATH", "db/fixtures.db"),
		RefreshInterval: time.Duration(refreshMs) * time.Millisecond,
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
