package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Storefront configuration
	BaseURL string

	// File paths
	SeenStorePath string
	ExportPath    string
	StockLogPath  string

	// Stock watch product pages
	WatchURLs []string

	// HTTP behaviour
	HTTPTimeout  time.Duration
	FetchRetries int
	RequestDelay time.Duration

	// Pushover credentials; notification is disabled when either is empty
	AppToken  string
	UserToken string

	// Optional shared block cache
	MemcacheAddr string

	// Optional Redis stream fan-out
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	timeout, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "10"))
	retries, _ := strconv.Atoi(getEnv("FETCH_RETRIES", "2"))
	delay, _ := strconv.Atoi(getEnv("REQUEST_DELAY_SECONDS", "1"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))

	return Config{
		BaseURL:              getEnv("SHOP_BASE_URL", "https://www.ancientowlnaturals.com/"),
		SeenStorePath:        getEnv("SEEN_STORE_PATH", "product_database.json"),
		ExportPath:           getEnv("EXPORT_PATH", "new_products.csv"),
		StockLogPath:         getEnv("STOCK_LOG_PATH", "stock_log.txt"),
		WatchURLs:            splitList(getEnv("WATCH_URLS", "")),
		HTTPTimeout:          time.Duration(timeout) * time.Second,
		FetchRetries:         retries,
		RequestDelay:         time.Duration(delay) * time.Second,
		AppToken:             getEnv("APP_TOKEN", ""),
		UserToken:            getEnv("USER_TOKEN", ""),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "newproducts"),
		RedisStreamMaxLength: redisMaxLen,
		Environment:          getEnv("SHOPWATCH_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the pipeline cannot run with
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid SHOP_BASE_URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("SHOP_BASE_URL must be http(s), got %q", c.BaseURL)
	}
	if c.SeenStorePath == "" {
		return fmt.Errorf("SEEN_STORE_PATH must not be empty")
	}
	if c.ExportPath == "" {
		return fmt.Errorf("EXPORT_PATH must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("FETCH_RETRIES must not be negative")
	}
	return nil
}

// NotificationsEnabled reports whether both Pushover credentials are present
func (c Config) NotificationsEnabled() bool {
	return c.AppToken != "" && c.UserToken != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated value, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
