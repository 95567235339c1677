package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keepsake/api/routes"
	"keepsake/internal/cart"
	"keepsake/internal/catalog"
	"keepsake/internal/fulfillment"
	"keepsake/internal/shared/config"
	"keepsake/internal/shared/middleware"
	"keepsake/internal/tessitura"
	"keepsake/pkg/cache"
	"keepsake/pkg/logger"
	"keepsake/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Redis backs cart sessions, order records, and rate limiting
	redisClient, err := cache.NewClient(cache.Config{
		Address:  cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Error("Failed to connect to Redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	cacheService := cache.NewService(redisClient)
	store := cart.NewStore(cacheService, cfg.Redis.CartSessionTTL, cfg.Redis.OrderRecordTTL)

	// Design catalog
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.Error("Failed to load design catalog", slog.Any("error", err))
		os.Exit(1)
	}
	catalogService := catalog.NewService(cat)
	appLogger.Info("Design catalog loaded",
		slog.String("org", cat.OrgName),
		slog.Int("designs", len(cat.Designs)),
		slog.Float64("unit_price", cat.UnitPrice),
	)

	// Box-office client: stub by default, real API when configured
	var boxOffice tessitura.Client
	if cfg.Tessitura.UseStub || cfg.Tessitura.BaseURL == "" {
		boxOffice = tessitura.NewStubClient()
		appLogger.Info("Box office: using in-memory stub")
	} else {
		boxOffice = tessitura.NewHTTPClient(cfg.Tessitura.BaseURL, cfg.Tessitura.APIKey, cfg.Tessitura.Timeout)
		appLogger.Info("Box office: using HTTP client", slog.String("base_url", cfg.Tessitura.BaseURL))
	}

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(redisClient, &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			OrderRequests:   cfg.RateLimit.OrderRequests,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
			slog.Int("order_requests", cfg.RateLimit.OrderRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Fulfillment pipeline: consumes payment confirmations, publishes partner
	// orders. Order submission itself never touches this path.
	fulfillmentCtx, fulfillmentCancel := context.WithCancel(context.Background())
	defer fulfillmentCancel()

	if cfg.Kafka.Enabled {
		variants, err := fulfillment.ParseVariantMap(cfg.Fulfillment.VariantMap)
		if err != nil {
			appLogger.Error("Invalid fulfillment variant map", slog.Any("error", err))
			os.Exit(1)
		}

		producer, err := fulfillment.NewKafkaProducer(&fulfillment.KafkaProducerConfig{
			Brokers:          cfg.Kafka.Brokers,
			Topic:            cfg.Kafka.FulfillmentTopic,
			RetryMax:         cfg.Kafka.ProducerRetryMax,
			TimeoutMs:        cfg.Kafka.ProducerTimeoutMs,
			RequiredAcks:     fulfillment.DefaultKafkaProducerConfig().RequiredAcks,
			IdempotentWrites: true,
		})
		if err != nil {
			appLogger.Error("Failed to create fulfillment producer", slog.Any("error", err))
			os.Exit(1)
		}
		defer producer.Close()

		fulfillmentService := fulfillment.NewService(variants, store, producer, appLogger)

		consumer, err := fulfillment.NewKafkaConsumer(&fulfillment.ConsumerConfig{
			Brokers:          cfg.Kafka.Brokers,
			GroupID:          cfg.Kafka.FulfillmentGroupID,
			Topic:            cfg.Kafka.PaymentTopic,
			SessionTimeoutMs: 30000,
			HeartbeatMs:      3000,
			OffsetOldest:     cfg.Kafka.ConsumerOffsetOldest,
		}, fulfillmentService, appLogger)
		if err != nil {
			appLogger.Error("Failed to create payment-confirmation consumer", slog.Any("error", err))
			os.Exit(1)
		}

		go func() {
			if err := consumer.Start(fulfillmentCtx); err != nil {
				appLogger.Error("Payment-confirmation consumer stopped", slog.Any("error", err))
			}
		}()

		defer func() {
			appLogger.Info("Stopping payment-confirmation consumer...")
			if err := consumer.Stop(); err != nil {
				appLogger.Error("Error stopping consumer", slog.Any("error", err))
			}
		}()

		appLogger.Info("Fulfillment pipeline started",
			slog.String("payment_topic", cfg.Kafka.PaymentTopic),
			slog.String("fulfillment_topic", cfg.Kafka.FulfillmentTopic),
		)
	} else {
		appLogger.Info("Kafka disabled: fulfillment pipeline not started")
	}

	// Setup router
	router := setupRouter(cfg, cacheService, store, catalogService, boxOffice, rateLimiter)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("orders_endpoint", fmt.Sprintf("http://localhost:%s%s/orders", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("fulfillment", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, cacheService cache.Service, store *cart.Store, cat catalog.Service, boxOffice tessitura.Client, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(middleware.RequestLoggerWith(appLogger), gin.Recovery())

	// CORS configuration. The widget is embedded in the ticketing checkout
	// page, which may be served from any of the org's domains.
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, cacheService, store, cat, boxOffice)
	appRouter.SetupRoutes(engine)

	return engine
}
