package config

import (
	"log"
	"os"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=directory port=5432 sslmode=disable"

type Config struct {
	HTTPPort      string
	StoreDriver   string // "postgres" | "redis"
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	CORSOrigins   string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		StoreDriver:   getEnv("STORE_DRIVER", "postgres"),
		DatabaseDSN:   getEnv("DATABASE_DSN", defaultDSN),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.StoreDriver != "postgres" && cfg.StoreDriver != "redis" {
		log.Fatalf("[FATAL] STORE_DRIVER must be 'postgres' or 'redis', got %q", cfg.StoreDriver)
	}
	if cfg.StoreDriver == "postgres" && cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection string for production.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
