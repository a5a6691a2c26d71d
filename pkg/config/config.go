package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BlogPort    string
	RecordsPort string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	JWTTTLHours int
}

// Load reads environment variables, optionally from a .env file if present.
// JWTSecret deliberately has no default: the signing secret is deployment
// configuration and must never live in source.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		BlogPort:    getEnv("PORT", "8080"),
		RecordsPort: getEnv("RECORDS_PORT", "8081"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "blog-service"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 24),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
