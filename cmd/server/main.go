package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/sahilrajputt12/catalog-extensions/internal/application/catalog"
	importapp "github.com/sahilrajputt12/catalog-extensions/internal/application/import"
	"github.com/sahilrajputt12/catalog-extensions/internal/application/storefront"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/auth"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/cache"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/config"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/event"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/logger"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/persistence"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/scheduler"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/storage"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/telemetry"
	"github.com/sahilrajputt12/catalog-extensions/internal/interfaces/http/handler"
	"github.com/sahilrajputt12/catalog-extensions/internal/interfaces/http/middleware"
	"github.com/sahilrajputt12/catalog-extensions/internal/interfaces/http/router"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting catalog extensions server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	// Initialize OpenTelemetry tracing (if enabled)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer provider shutdown failed", zap.Error(err))
		}
	}()

	// Initialize database with GORM logger bridged to zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLogger := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	log.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.DBName),
	)

	// Initialize repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	websiteItemRepo := persistence.NewGormWebsiteItemRepository(db.DB)
	priceRangeRepo := persistence.NewGormCatalogPriceRangeRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	itemPriceRepo := persistence.NewGormItemPriceRepository(db.DB)
	binRepo := persistence.NewGormBinRepository(db.DB)
	stockRecRepo := persistence.NewGormStockReconciliationRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	queryRepo := persistence.NewGormStorefrontQueryRepository(db.DB)

	// Initialize facet cache (Redis with in-memory fallback)
	facetCache := cache.NewFacetCache(cfg.Redis, log)
	defer func() {
		if err := facetCache.Close(); err != nil {
			log.Warn("Failed to close facet cache", zap.Error(err))
		}
	}()

	// Initialize public file store for image validation
	var fileStore storefront.PublicFileStore
	if cfg.Storage.Enabled {
		s3Store, err := storage.NewS3PublicFileStore(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		fileStore = s3Store
		log.Info("Object storage enabled",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("region", cfg.Storage.Region),
		)
	} else {
		fileStore = storage.NewStubPublicFileStore()
		log.Info("Object storage disabled, image existence checks are skipped")
	}

	// Initialize event bus and domain event handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Initialize application services
	facetService := storefront.NewFacetService(
		queryRepo,
		priceRangeRepo,
		settingsRepo,
		facetCache,
		storefront.FacetConfig{
			BrandLimit:   cfg.Catalog.BrandFacetLimit,
			CacheTTL:     cfg.Catalog.FacetCacheTTL,
			CacheEnabled: cfg.Catalog.FacetCacheEnabled,
		},
		log,
	)
	filterService := storefront.NewFilterService(queryRepo, settingsRepo, log)
	badgeService := storefront.NewBadgeService(
		itemRepo,
		websiteItemRepo,
		invoiceRepo,
		binRepo,
		facetCache,
		storefront.BadgeConfig{
			NewBadgeDays:      cfg.Catalog.NewBadgeDays,
			BestsellerWindow:  cfg.Catalog.BestsellerWindow,
			BestsellerLimit:   cfg.Catalog.BestsellerLimit,
			LowStockThreshold: cfg.Catalog.LowStockThreshold,
		},
		log,
	)
	offerService := storefront.NewOfferService(websiteItemRepo)
	discountService := storefront.NewDiscountService(websiteItemRepo)
	variantService := storefront.NewVariantService(itemRepo, websiteItemRepo, itemPriceRepo, settingsRepo)
	imageValidator := storefront.NewImageValidator(fileStore, log)
	websiteItemService := storefront.NewWebsiteItemService(websiteItemRepo, imageValidator, facetService, log)
	itemService := catalogapp.NewItemService(itemRepo, eventBus, log)
	priceRangeService := catalogapp.NewPriceRangeService(priceRangeRepo, facetService)
	itemSyncService := importapp.NewItemSyncService(
		itemRepo,
		websiteItemRepo,
		itemPriceRepo,
		settingsRepo,
		binRepo,
		stockRecRepo,
		log,
	)

	// Subscribe event handlers: item lifecycle events drive website item
	// publication and consumer discount sync
	eventBus.Subscribe(storefront.NewPublicationHandler(itemRepo, websiteItemRepo, facetService, log))
	eventBus.Subscribe(storefront.NewDiscountSyncHandler(websiteItemRepo, log))

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Error("Failed to stop event bus", zap.Error(err))
		}
	}()

	// Start the badge recompute scheduler (if enabled)
	if cfg.Scheduler.Enabled {
		badgeScheduler := scheduler.NewBadgeScheduler(scheduler.Config{
			Interval:      cfg.Scheduler.Interval,
			JobTimeout:    cfg.Scheduler.JobTimeout,
			RetryAttempts: cfg.Scheduler.RetryAttempts,
			RetryDelay:    cfg.Scheduler.RetryDelay,
		}, badgeService, log)

		if err := badgeScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start badge scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := badgeScheduler.Stop(stopCtx); err != nil {
				log.Error("Failed to stop badge scheduler", zap.Error(err))
			}
		}()

		log.Info("Badge scheduler started", zap.Duration("interval", cfg.Scheduler.Interval))
	}

	// Initialize JWT service for the admin surface
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(version)
	storefrontHandler := handler.NewStorefrontHandler(
		facetService,
		filterService,
		badgeService,
		offerService,
		discountService,
		variantService,
	)
	itemSyncHandler := handler.NewItemSyncHandler(itemSyncService)
	catalogAdminHandler := handler.NewCatalogAdminHandler(
		itemService,
		priceRangeService,
		websiteItemService,
		badgeService,
	)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report JSON field names in binding errors
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - OpenTelemetry spans (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Register API routes. Storefront endpoints are guest accessible; the
	// admin and import surfaces require a valid JWT.
	adminAuth := middleware.JWTAuthMiddleware(jwtService, log)
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(systemHandler).
		Register(storefrontHandler).
		Register(itemSyncHandler, adminAuth).
		Register(catalogAdminHandler, adminAuth).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
