package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"shopwatch/config"
	"shopwatch/helpers"
	"shopwatch/internal/scraper"
	"shopwatch/internal/store"
	"shopwatch/logger"
	"shopwatch/services/cache"
	"shopwatch/services/notifier"
	"shopwatch/services/publisher"
	"shopwatch/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	helpers.SetTimeout(cfg.HTTPTimeout)

	log.Info().
		Str("environment", cfg.Environment).
		Str("base_url", cfg.BaseURL).
		Bool("notifications", cfg.NotificationsEnabled()).
		Msg("Starting run")

	// One run per invocation; a signal cancels the remaining steps.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Rate-limit block cache: shared memcache when configured, otherwise
	// process memory.
	var cacheSvc cache.CacheService
	if cfg.MemcacheAddr != "" {
		cacheSvc = cache.NewMemcacheService(cfg.MemcacheAddr)
		log.Info().Str("addr", cfg.MemcacheAddr).Msg("Using memcache block cache")
	} else {
		cacheSvc = cache.NewMemoryService()
	}

	site := scraper.NewSite(cfg.BaseURL, cacheSvc, cfg.FetchRetries, cfg.RequestDelay)
	fileStore := store.NewFileStore(cfg.SeenStorePath, cfg.ExportPath, cfg.StockLogPath)

	var n notifier.Notifier
	if cfg.NotificationsEnabled() {
		n = notifier.NewPushoverNotifier(cfg.AppToken, cfg.UserToken)
	} else {
		log.Warn().Msg("APP_TOKEN / USER_TOKEN not set, notifications disabled")
		n = notifier.NewDisabled()
	}

	var pub publisher.Publisher
	if cfg.RedisAddr != "" {
		redisPub := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream, cfg.RedisStreamMaxLength)
		defer redisPub.Close()
		pub = redisPub
		log.Info().Str("addr", cfg.RedisAddr).Str("stream", cfg.RedisStream).Msg("Publishing new products to Redis")
	}

	w := worker.NewWorker(site, fileStore, n, pub, cfg.WatchURLs, cfg.RequestDelay)

	if err := w.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}
