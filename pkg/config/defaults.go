package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "islatours"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultPublicBaseURL = "http://localhost:8080"
	DefaultAllowedOrigin = "http://localhost:5173"

	DefaultRateLimitRequests = 20
	DefaultRateLimitWindow   = 1 * time.Minute
	DefaultLoginRatePerMin   = 5

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 50 * 1024 * 1024 // videos go through the same limit

	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSessionTTL = 12 * time.Hour

	DefaultWhatsAppNumber     = "+50499999999"
	DefaultDefaultLanguage    = "en"
	DefaultMaxImageWidth      = 1920
	DefaultHeroRotateInterval = 6 * time.Second

	DefaultWebhookTimeout = 8 * time.Second

	DefaultKafkaBookingTopic = "private-tour-bookings"

	DefaultReviewsCacheTTL   = 6 * time.Hour
	DefaultReviewsMaxDefault = 10
	DefaultScrapeTimeout     = 20 * time.Second

	MaxReviews = 50
)
