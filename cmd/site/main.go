package main

import (
	"context"
	"strings"

	authhandler "islatours/internal/auth/handler"
	authrepo "islatours/internal/auth/repository"
	authservice "islatours/internal/auth/service"
	"islatours/internal/auth/session"
	flowhandler "islatours/internal/booking/handler"
	flowservice "islatours/internal/booking/service"
	galleryhandler "islatours/internal/gallery/handler"
	galleryrepo "islatours/internal/gallery/repository"
	galleryservice "islatours/internal/gallery/service"
	meetinghandler "islatours/internal/meetingpoints/handler"
	meetingrepo "islatours/internal/meetingpoints/repository"
	meetingservice "islatours/internal/meetingpoints/service"
	privatehandler "islatours/internal/privatetours/handler"
	privaterepo "islatours/internal/privatetours/repository"
	privateservice "islatours/internal/privatetours/service"
	settingshandler "islatours/internal/settings/handler"
	settingsrepo "islatours/internal/settings/repository"
	settingsservice "islatours/internal/settings/service"
	sitehandler "islatours/internal/site/handler"
	siteservice "islatours/internal/site/service"
	tourhandler "islatours/internal/tours/handler"
	tourrepo "islatours/internal/tours/repository"
	tourservice "islatours/internal/tours/service"
	videohandler "islatours/internal/videos/handler"
	videorepo "islatours/internal/videos/repository"
	videoservice "islatours/internal/videos/service"
	"islatours/pkg/app"
	"islatours/pkg/client"
	"islatours/pkg/config"
	"islatours/pkg/contracts"
	"islatours/pkg/kafka"
	"islatours/pkg/model"
	"islatours/pkg/notify"
	"islatours/pkg/sealer"
	"islatours/pkg/storage"
	"islatours/pkg/validator"

	"github.com/joho/godotenv"
)

const ServiceName = "site"

func main() {
	envErr := godotenv.Load()

	cfg := config.Load(ServiceName)
	if envErr != nil {
		cfg.Log.Info("No .env file found, using process environment")
	}
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.RequireSecrets()
	cfg.LogConfiguration()

	cfg.SetMongo()
	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	seal, err := sealer.New(cfg.SealerKey)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize sealer", "error", err)
	}

	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	galleryBucket := storage.NewGridFSBucket(db, storage.BucketGallery, cfg.WriteTimeout)
	packagesBucket := storage.NewGridFSBucket(db, storage.BucketPackages, cfg.WriteTimeout)
	urls := storage.URLs{BaseURL: cfg.PublicBaseURL}
	maxMemory := int64(cfg.MaxRequestSize)
	v := validator.New()

	tourSvc := tourservice.NewTourService(tourrepo.NewTourRepository(cfg),
		storage.NewFiles(packagesBucket, urls, "tours", cfg.MaxImageWidth, cfg.Log), v, cfg)
	gallerySvc := galleryservice.NewGalleryService(galleryrepo.NewGalleryRepository(cfg),
		storage.NewFiles(galleryBucket, urls, "gallery", cfg.MaxImageWidth, cfg.Log), v, cfg)
	videoSvc := videoservice.NewVideoService(videorepo.NewVideoRepository(cfg),
		storage.NewFiles(galleryBucket, urls, "videos", cfg.MaxImageWidth, cfg.Log), v, cfg)
	meetingSvc := meetingservice.NewMeetingPointService(meetingrepo.NewMeetingPointRepository(cfg), v, cfg)
	settingsSvc := settingsservice.NewSettingsService(settingsrepo.NewSettingsRepository(cfg),
		storage.NewFiles(galleryBucket, urls, "settings", cfg.MaxImageWidth, cfg.Log), v, cfg)

	privateTours := privaterepo.NewPrivateTourRepository(cfg)
	options := privaterepo.NewOptionRepository(cfg)
	privateTourSvc := privateservice.NewPrivateTourService(privateTours,
		storage.NewFiles(packagesBucket, urls, "private-tours", cfg.MaxImageWidth, cfg.Log), v, cfg)
	optionSvc := privateservice.NewOptionService(options, v, cfg)

	notifier, closeNotifier := initNotifier(cfg)
	defer closeNotifier()
	bookingSvc := privateservice.NewBookingService(privateTours, options,
		privaterepo.NewBookingRepository(cfg), notifier, seal, v, cfg)

	var sessions session.Store
	if cfg.Client.Redis != nil {
		sessions = session.NewRedisStore(cfg.Client.Redis)
	} else {
		sessions = session.NewMemoryStore()
	}
	throttle := authservice.NewLoginThrottle(cfg.LoginRatePerMin)
	authHandler := authhandler.NewAuthHandler(
		authservice.NewAuthService(authrepo.NewAdminRepository(cfg), sessions, throttle, cfg), cfg.Log)
	var guard contracts.Guard = authHandler.RequireAdmin

	hero := siteservice.NewHero(func(ctx context.Context) []model.HeroSlide {
		return siteservice.TourSlides(tourSvc.List(ctx))
	}, cfg.HeroRotateInterval, cfg.ReadTimeout, cfg.Log)
	siteSvc := siteservice.NewSiteService(tourSvc, videoSvc, settingsSvc, hero, map[string]siteservice.Counter{
		tourrepo.CollectionName:                    tourSvc,
		galleryrepo.CollectionName:                 gallerySvc,
		videorepo.CollectionName:                   videoSvc,
		meetingrepo.CollectionName:                 meetingSvc,
		privaterepo.PrivateTourCollection:          privateTourSvc,
		"pending_" + privaterepo.BookingCollection: siteservice.CounterFunc(bookingSvc.CountPending),
	}, cfg)

	flowSvc := flowservice.NewFlowService(tourSvc, settingsSvc, v, cfg)

	application := app.NewApplication(cfg)
	application.AddWorker(hero)
	application.AddWorker(throttle)
	application.SetApp(
		storage.NewHandler(cfg.Log, galleryBucket, packagesBucket),
		authHandler,
		tourhandler.NewTourHandler(tourSvc, guard, maxMemory, cfg.Log),
		galleryhandler.NewGalleryHandler(gallerySvc, guard, maxMemory, cfg.Log),
		videohandler.NewVideoHandler(videoSvc, guard, maxMemory, cfg.Log),
		meetinghandler.NewMeetingPointHandler(meetingSvc, guard, cfg.Log),
		settingshandler.NewSettingsHandler(settingsSvc, guard, maxMemory, cfg.Log),
		privatehandler.NewPrivateTourHandler(privateTourSvc, optionSvc, guard, maxMemory, cfg.Log),
		privatehandler.NewBookingHandler(bookingSvc, guard, cfg.Log),
		flowhandler.NewFlowHandler(flowSvc, cfg.DefaultLanguage, cfg.Log),
		sitehandler.NewSiteHandler(siteSvc, guard, cfg.DefaultLanguage,
			strings.HasPrefix(cfg.PublicBaseURL, "https://"), cfg.Log),
	)
	application.Run()
}

// initNotifier builds the booking sinks that are configured. A sink that
// fails to initialize is logged and skipped; bookings never depend on it.
func initNotifier(cfg *config.Config) (notify.Notifier, func()) {
	var sinks notify.Multi
	closers := []func(){}

	if cfg.WebhookURL != "" {
		sinks = append(sinks, notify.NewWebhook(client.NewHttpClient(cfg.WebhookTimeout), cfg.WebhookURL))
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaBookingTopic,
		}, cfg.Log)
		if err != nil {
			cfg.Log.Warn("Kafka notifier disabled", "error", err)
		} else {
			producer.Use(kafka.LoggingMiddleware(cfg.Log))
			sinks = append(sinks, notify.NewKafka(producer, ServiceName))
			closers = append(closers, func() {
				if err := producer.Close(); err != nil {
					cfg.Log.Error("Failed to close kafka producer", "error", err)
				}
			})
		}
	}

	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatIDs)
		if err != nil {
			cfg.Log.Warn("Telegram notifier disabled", "error", err)
		} else {
			sinks = append(sinks, tg)
		}
	}

	if cfg.SheetsSpreadsheetID != "" {
		sheets, err := notify.NewSheets(context.Background(), cfg.GoogleServiceAccountFile, cfg.SheetsSpreadsheetID, "Bookings")
		if err != nil {
			cfg.Log.Warn("Sheets notifier disabled", "error", err)
		} else {
			sinks = append(sinks, sheets)
		}
	}

	cfg.Log.Info("Booking notifiers configured", "sinks", sinks.Name())
	return sinks, func() {
		for _, c := range closers {
			c()
		}
	}
}
