package main

import (
	"context"
	"log"
	"strings"
	"time"

	"directory-backend/internal/config"
	"directory-backend/internal/docstore"
	"directory-backend/internal/server"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	var store docstore.Store
	switch cfg.StoreDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		store = docstore.NewRedisStore(client)
	default:
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		pg, err := docstore.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("Documents table migration failed: %v", err)
		}
		store = pg
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatalf("Document store unreachable: %v", err)
	}
	log.Println("Document store connected, driver:", cfg.StoreDriver)

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	app := server.New(store, strings.Join(corsOrigins, ","))

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
