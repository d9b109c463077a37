package config

import (
	"encoding/base64"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"islatours/pkg/client"
	"islatours/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	RedisURL string

	Port           string
	PublicBaseURL  string
	AllowedOrigins []string
	TrustedProxies []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	LoginRatePerMin   int

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	JWTSecret  string
	SessionTTL time.Duration
	SealerKey  string

	WhatsAppNumber     string
	DefaultLanguage    string
	MaxImageWidth      int
	HeroRotateInterval time.Duration

	WebhookURL     string
	WebhookTimeout time.Duration

	KafkaBrokers      []string
	KafkaBookingTopic string

	TelegramToken   string
	TelegramChatIDs []int64

	SheetsSpreadsheetID      string
	GoogleServiceAccountFile string

	ReviewsCacheTTL   time.Duration
	ReviewsMaxDefault int
	ScrapeTimeout     time.Duration

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RedisURL: getEnvStr(EnvRedisURL, ""),

		Port:           getEnvStr(EnvPort, DefaultPort),
		PublicBaseURL:  strings.TrimRight(getEnvStr(EnvPublicBaseURL, DefaultPublicBaseURL), "/"),
		AllowedOrigins: getEnvList(EnvAllowedOrigin, DefaultAllowedOrigin),
		TrustedProxies: getEnvList(EnvTrustedProxies, ""),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		LoginRatePerMin:   getEnvNum(EnvLoginRatePerMin, DefaultLoginRatePerMin),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		JWTSecret:  getEnvStr(EnvJWTSecret, ""),
		SessionTTL: getEnvDuration(EnvSessionTTL, DefaultSessionTTL),
		SealerKey:  getEnvStr(EnvSealerKey, ""),

		WhatsAppNumber:     getEnvStr(EnvWhatsAppNumber, DefaultWhatsAppNumber),
		DefaultLanguage:    getEnvStr(EnvDefaultLanguage, DefaultDefaultLanguage),
		MaxImageWidth:      getEnvNum(EnvMaxImageWidth, DefaultMaxImageWidth),
		HeroRotateInterval: getEnvDuration(EnvHeroRotateInterval, DefaultHeroRotateInterval),

		WebhookURL:     getEnvStr(EnvWebhookURL, ""),
		WebhookTimeout: getEnvDuration(EnvWebhookTimeout, DefaultWebhookTimeout),

		KafkaBrokers:      getEnvList(EnvKafkaBrokers, ""),
		KafkaBookingTopic: getEnvStr(EnvKafkaBookingTopic, DefaultKafkaBookingTopic),

		TelegramToken:   getEnvStr(EnvTelegramToken, ""),
		TelegramChatIDs: parseChatIDs(os.Getenv(EnvTelegramChatIDs)),

		SheetsSpreadsheetID:      getEnvStr(EnvSheetsSpreadsheetID, ""),
		GoogleServiceAccountFile: getEnvStr(EnvGoogleServiceAccountFile, ""),

		ReviewsCacheTTL:   getEnvDuration(EnvReviewsCacheTTL, DefaultReviewsCacheTTL),
		ReviewsMaxDefault: getEnvNum(EnvReviewsMaxDefault, DefaultReviewsMaxDefault),
		ScrapeTimeout:     getEnvDuration(EnvScrapeTimeout, DefaultScrapeTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects only when REDIS_URL is set; callers fall back to in-memory stores otherwise.
func (cfg *Config) SetRedis() {
	if cfg.RedisURL == "" {
		cfg.Log.Info("REDIS_URL not set, using in-memory stores")
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisURL, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}
	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}
	if cfg.RedisURL != "" && !regexp.MustCompile(`^rediss?://`).MatchString(cfg.RedisURL) {
		errors = append(errors, "RedisURL must start with 'redis://' or 'rediss://'")
	}

	if !strings.HasPrefix(cfg.PublicBaseURL, "http://") && !strings.HasPrefix(cfg.PublicBaseURL, "https://") {
		errors = append(errors, fmt.Sprintf("PublicBaseURL must be an http(s) URL, got: %s", cfg.PublicBaseURL))
	}

	for _, proxy := range cfg.TrustedProxies {
		if !validProxy(proxy) {
			errors = append(errors, fmt.Sprintf("TrustedProxies entries must be IPs or CIDR ranges, got: %s", proxy))
		}
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"MongoConnTimeout", cfg.MongoConnTimeout},
		{"RateLimitWindow", cfg.RateLimitWindow},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"SessionTTL", cfg.SessionTTL},
		{"HeroRotateInterval", cfg.HeroRotateInterval},
		{"WebhookTimeout", cfg.WebhookTimeout},
		{"ReviewsCacheTTL", cfg.ReviewsCacheTTL},
		{"ScrapeTimeout", cfg.ScrapeTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", d.name, d.value))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.LoginRatePerMin <= 0 {
		errors = append(errors, fmt.Sprintf("LoginRatePerMin must be positive, got: %d", cfg.LoginRatePerMin))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.MaxImageWidth < 320 {
		errors = append(errors, fmt.Sprintf("MaxImageWidth must be at least 320, got: %d", cfg.MaxImageWidth))
	}
	if cfg.ReviewsMaxDefault <= 0 || cfg.ReviewsMaxDefault > MaxReviews {
		errors = append(errors, fmt.Sprintf("ReviewsMaxDefault must be between 1 and %d, got: %d", MaxReviews, cfg.ReviewsMaxDefault))
	}

	if cfg.DefaultLanguage != "en" && cfg.DefaultLanguage != "es" {
		errors = append(errors, fmt.Sprintf("DefaultLanguage must be 'en' or 'es', got: %s", cfg.DefaultLanguage))
	}

	if len(cfg.JWTSecret) > 0 && len(cfg.JWTSecret) < 32 {
		errors = append(errors, "JWTSecret must be at least 32 characters long")
	}
	if cfg.SealerKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.SealerKey)
		if err != nil || len(key) != 32 {
			errors = append(errors, "SealerKey must be a base64 encoded 32 byte key")
		}
	}

	if cfg.TelegramToken != "" && len(cfg.TelegramChatIDs) == 0 {
		errors = append(errors, "TelegramChatIDs must be set when TelegramToken is configured")
	}
	if cfg.SheetsSpreadsheetID != "" && cfg.GoogleServiceAccountFile == "" {
		errors = append(errors, "GoogleServiceAccountFile must be set when SheetsSpreadsheetID is configured")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// RequireSecrets is called by services that sign tokens; the reviews utility does not need them.
func (cfg *Config) RequireSecrets() {
	if cfg.JWTSecret == "" {
		cfg.Log.Fatal("JWT_SECRET must be set")
	}
	if cfg.SealerKey == "" {
		cfg.Log.Fatal("SEALER_KEY must be set")
	}
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"redis_set", cfg.RedisURL != "",
		"port", cfg.Port,
		"public_base_url", cfg.PublicBaseURL,
		"allowed_origins", cfg.AllowedOrigins,
		"trusted_proxies", cfg.TrustedProxies,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"login_rate_per_minute", cfg.LoginRatePerMin,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"jwt_secret_set", cfg.JWTSecret != "",
		"session_ttl", cfg.SessionTTL,
		"sealer_key_set", cfg.SealerKey != "",
		"default_language", cfg.DefaultLanguage,
		"max_image_width", cfg.MaxImageWidth,
		"hero_rotate_interval", cfg.HeroRotateInterval,
		"webhook_set", cfg.WebhookURL != "",
		"webhook_timeout", cfg.WebhookTimeout,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_booking_topic", cfg.KafkaBookingTopic,
		"telegram_set", cfg.TelegramToken != "",
		"sheets_set", cfg.SheetsSpreadsheetID != "",
		"reviews_cache_ttl", cfg.ReviewsCacheTTL,
		"scrape_timeout", cfg.ScrapeTimeout,
	)
}

func validProxy(entry string) bool {
	if net.ParseIP(entry) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(entry)
	return err == nil
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnvStr(key, fallback)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseChatIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}
