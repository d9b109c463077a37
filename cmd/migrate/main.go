package main

import (
	"context"
	"fmt"
	"os"
	"time"

	mongoMigration "islatours/internal/migrations/mongo"
	"islatours/pkg/config"

	"github.com/joho/godotenv"
)

const JobName = "mongo-migration"

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()
	cfg := config.Load(JobName)
	cfg.SetMongo()
	cfg.Log.Info("Starting Mongo migration job")
	defer cfg.GracefulShutdown()

	if err := migrateMongo(ctx, cfg); err != nil {
		cfg.Log.Error("Migration failed", "error", err)
		cancel()
		cfg.GracefulShutdown()
		os.Exit(1)
	}
	fmt.Println("Migration completed successfully.")
}

func migrateMongo(ctx context.Context, cfg *config.Config) error {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		return err
	}

	username := os.Getenv(config.EnvAdminUsername)
	if username == "" {
		cfg.Log.Info("ADMIN_USERNAME not set, skipping admin seed")
		return nil
	}
	return mongoMigration.SeedAdmin(ctx, db, username, os.Getenv(config.EnvAdminPassword), os.Getenv(config.EnvAdminName), cfg.Log)
}
