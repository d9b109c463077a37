package main

import (
	"islatours/internal/reviews/cache"
	"islatours/internal/reviews/handler"
	"islatours/internal/reviews/scraper"
	"islatours/internal/reviews/service"
	"islatours/pkg/app"
	"islatours/pkg/client"
	"islatours/pkg/config"

	"github.com/joho/godotenv"
)

const ServiceName = "reviews"

func main() {
	envErr := godotenv.Load()

	cfg := config.Load(ServiceName)
	if envErr != nil {
		cfg.Log.Info("No .env file found, using process environment")
	}
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	var store cache.Cache
	if cfg.Client.Redis != nil {
		store = cache.NewRedisCache(cfg.Client.Redis)
	} else {
		store = cache.NewMemoryCache()
	}

	reviewService := service.NewReviewService(scraper.New(client.NewHttpClient(cfg.ScrapeTimeout)), store, cfg)

	application := app.NewApplication(cfg)
	application.SetApp(handler.NewReviewHandler(reviewService, cfg.Log))
	application.Run()
}
