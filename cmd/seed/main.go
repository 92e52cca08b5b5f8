package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"festival-scoreboard/internal/repository"
	"festival-scoreboard/internal/service"
	"festival-scoreboard/pkg/logger"
	"festival-scoreboard/pkg/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/seed [summary|catalog|hash-password <password>|flush-cache]")
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "summary":
		store := repository.NewMemoryStore()
		summary, err := repository.Seed(ctx, store, getEnv("ADMIN_USERNAME", "admin"), getEnv("ADMIN_PASSWORD", "admin"))
		if err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
		fmt.Printf("✅ Seed creates %d users, %d teams, %d categories, %d events, %d results\n",
			summary.Users, summary.Teams, summary.Categories, summary.Events, summary.Results)

	case "catalog":
		store := repository.NewMemoryStore()
		if _, err := repository.Seed(ctx, store, "", ""); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
		if err := printCatalog(ctx, store); err != nil {
			log.Fatalf("Failed to print catalog: %v", err)
		}

	case "hash-password":
		if len(os.Args) < 3 {
			log.Fatal("hash-password needs a password argument")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(string(hash))

	case "flush-cache":
		if err := flushCache(ctx); err != nil {
			log.Fatalf("Failed to flush cache: %v", err)
		}
		fmt.Println("✅ Scoreboard cache flushed")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// printCatalog writes the seeded teams and categories with their events as JSON
func printCatalog(ctx context.Context, store *repository.MemoryStore) error {
	svc := service.NewScoreboardService(store, nil, nil, nil, logger.NewNop())

	teams, err := svc.GetTeams(ctx)
	if err != nil {
		return err
	}
	categories, err := svc.GetCategoriesWithEvents(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"teams":      teams,
		"categories": categories,
	})
}

// flushCache drops every cached view in the environment's key space
func flushCache(ctx context.Context) error {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return fmt.Errorf("REDIS_URL environment variable is not set")
	}

	client, err := redis.NewClient(url, getEnv("ENVIRONMENT", "production"), nil)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return client.InvalidatePattern(ctx, client.KeyBuilder.BuildKey("scoreboard:*"))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
