package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	LogLevel       string
	BackendURL     string
	RequestTimeout time.Duration
	SessionTTL     time.Duration
}

func LoadConfig() *Config {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8000"),
		RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		SessionTTL:     time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
