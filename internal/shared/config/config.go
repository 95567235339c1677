package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Redis configuration
	Redis RedisConfig

	// Kafka configuration
	Kafka KafkaConfig

	// Box-office configuration
	Tessitura TessituraConfig

	// Catalog configuration
	Catalog CatalogConfig

	// Fulfillment configuration
	Fulfillment FulfillmentConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL values for different operations
	CartSessionTTL time.Duration
	OrderRecordTTL time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Enabled              bool
	Brokers              []string
	FulfillmentTopic     string
	PaymentTopic         string
	FulfillmentGroupID   string
	ProducerRetryMax     int
	ProducerTimeoutMs    int
	ConsumerOffsetOldest bool
}

// TessituraConfig holds box-office client configuration
type TessituraConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	UseStub bool
}

// CatalogConfig holds design-catalog configuration
type CatalogConfig struct {
	Path string
}

// FulfillmentConfig holds fulfillment-partner configuration
type FulfillmentConfig struct {
	VariantMap string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool
	WindowDuration  time.Duration
	OrderRequests   int
	DefaultRequests int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),

			// TTL configurations with defaults
			CartSessionTTL: getDurationEnv("REDIS_CART_SESSION_TTL", 2*time.Hour),
			OrderRecordTTL: getDurationEnv("REDIS_ORDER_RECORD_TTL", 48*time.Hour),
		},

		// Kafka configuration
		Kafka: KafkaConfig{
			Enabled:              getBoolEnv("KAFKA_ENABLED", false),
			Brokers:              getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			FulfillmentTopic:     getEnv("KAFKA_FULFILLMENT_TOPIC", "fulfillment-orders"),
			PaymentTopic:         getEnv("KAFKA_PAYMENT_TOPIC", "payment-confirmations"),
			FulfillmentGroupID:   getEnv("KAFKA_FULFILLMENT_GROUP_ID", "keepsake-fulfillment-workers"),
			ProducerRetryMax:     getIntEnv("KAFKA_PRODUCER_RETRY_MAX", 3),
			ProducerTimeoutMs:    getIntEnv("KAFKA_PRODUCER_TIMEOUT_MS", 10000),
			ConsumerOffsetOldest: getBoolEnv("KAFKA_CONSUMER_OFFSET_OLDEST", false),
		},

		// Box-office configuration
		Tessitura: TessituraConfig{
			BaseURL: getEnv("TESSITURA_BASE_URL", ""),
			APIKey:  getEnv("TESSITURA_API_KEY", ""),
			Timeout: getDurationEnv("TESSITURA_TIMEOUT", 15*time.Second),
			UseStub: getBoolEnv("TESSITURA_USE_STUB", true),
		},

		// Catalog configuration
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},

		// Fulfillment configuration
		Fulfillment: FulfillmentConfig{
			VariantMap: getEnv("FULFILLMENT_VARIANT_MAP", "classic-gold=WWL-CG-01,marquee-night=WWL-MN-02,playbill-red=WWL-PR-03"),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			OrderRequests:   getIntEnv("RATE_LIMIT_ORDER_REQUESTS", 20),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
