package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Loads variables from a local .env file when one exists. Deployed
// environments inject config directly, so a missing file is not an error.
func LoadEnv() {
	godotenv.Load()
}

func GetString(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func GetUInt32(key string, fallback uint32) uint32 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 32)
		if err == nil {
			return uint32(parsed)
		}
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
