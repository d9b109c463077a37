package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvRedisURL = "REDIS_URL"

	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvPublicBaseURL  = "PUBLIC_BASE_URL"
	EnvAllowedOrigin  = "ALLOWED_ORIGINS"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvLoginRatePerMin   = "LOGIN_RATE_PER_MINUTE"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvJWTSecret  = "JWT_SECRET"
	EnvSessionTTL = "SESSION_TTL"
	EnvSealerKey  = "SEALER_KEY"

	EnvWhatsAppNumber     = "WHATSAPP_NUMBER"
	EnvDefaultLanguage    = "DEFAULT_LANGUAGE"
	EnvMaxImageWidth      = "MAX_IMAGE_WIDTH"
	EnvHeroRotateInterval = "HERO_ROTATE_INTERVAL"

	EnvWebhookURL     = "BOOKING_WEBHOOK_URL"
	EnvWebhookTimeout = "BOOKING_WEBHOOK_TIMEOUT"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaBookingTopic = "KAFKA_BOOKING_TOPIC"

	EnvTelegramToken   = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatIDs = "TELEGRAM_CHAT_IDS"

	EnvSheetsSpreadsheetID      = "GOOGLE_SHEETS_SPREADSHEET_ID"
	EnvGoogleServiceAccountFile = "GOOGLE_SERVICE_ACCOUNT_FILE"

	EnvReviewsCacheTTL   = "REVIEWS_CACHE_TTL"
	EnvReviewsMaxDefault = "REVIEWS_MAX_DEFAULT"
	EnvScrapeTimeout     = "SCRAPE_TIMEOUT"

	// Read only by the migrate job when seeding the first admin.
	EnvAdminUsername = "ADMIN_USERNAME"
	EnvAdminPassword = "ADMIN_PASSWORD"
	EnvAdminName     = "ADMIN_NAME"
)
