// Package demoserver is a self-contained implementation of the store API
// contract the client speaks: products, categories, the user directory and
// the credential check, served from an in-memory seed. It exists so the
// client can be exercised without the public demo API.
package demoserver

import (
	"os"
	"time"
)

type Config struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig reads settings from the environment (a .env overlay is applied
// by the binary before this runs).
func LoadConfig() Config {
	return Config{
		Addr:      getEnv("STORE_ADDR", ":8080"),
		JWTSecret: getEnv("STORE_JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
