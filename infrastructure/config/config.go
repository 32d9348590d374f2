package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string

	// Tables and indexes
	ProductsTable         string
	CategoryLinksTable    string
	SearchTokensTable     string
	LinksByProductIndex   string
	TokensByProductIndex  string
	SearchableStatusIndex string

	// Cleanup cascade
	ImagesBucket        string
	CleanupQueueURL     string
	CleanupInitialDelay time.Duration

	// Eventing
	EventBusName string

	// Full-text search mode
	SearchEngineURL   string
	SearchEngineIndex string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Logging and features
	LogLevel      string
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),

		ProductsTable:         getEnv("PRODUCTS_TABLE", "products"),
		CategoryLinksTable:    getEnv("CATEGORY_LINKS_TABLE", "product-categories"),
		SearchTokensTable:     getEnv("SEARCH_TOKENS_TABLE", "product-search-tokens"),
		LinksByProductIndex:   getEnv("LINKS_BY_PRODUCT_INDEX", "byProduct"),
		TokensByProductIndex:  getEnv("TOKENS_BY_PRODUCT_INDEX", "byProduct"),
		SearchableStatusIndex: getEnv("SEARCHABLE_STATUS_INDEX", "bySearchableStatus"),

		ImagesBucket:        getEnv("IMAGES_BUCKET", ""),
		CleanupQueueURL:     getEnv("CLEANUP_QUEUE_URL", ""),
		CleanupInitialDelay: time.Duration(getEnvInt("CLEANUP_INITIAL_DELAY_SECONDS", 2)) * time.Second,

		EventBusName: getEnv("EVENT_BUS_NAME", "libreria-catalog-events"),

		SearchEngineURL:   getEnv("SEARCH_ENGINE_URL", ""),
		SearchEngineIndex: getEnv("SEARCH_ENGINE_INDEX", "products"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "libreria-backend"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.ImagesBucket == "" {
			return fmt.Errorf("IMAGES_BUCKET is required in production")
		}
		if c.CleanupQueueURL == "" {
			return fmt.Errorf("CLEANUP_QUEUE_URL is required in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SearchEnabled reports whether the full-text engine mode is configured
func (c *Config) SearchEnabled() bool {
	return c.SearchEngineURL != ""
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
