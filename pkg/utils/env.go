package utils

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file into the process environment if one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
