package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/marketlink/backend/internal/application/catalog"
	identityapp "github.com/marketlink/backend/internal/application/identity"
	partnerapp "github.com/marketlink/backend/internal/application/partner"
	tradeapp "github.com/marketlink/backend/internal/application/trade"
	"github.com/marketlink/backend/internal/infrastructure/auth"
	"github.com/marketlink/backend/internal/infrastructure/config"
	"github.com/marketlink/backend/internal/infrastructure/event"
	"github.com/marketlink/backend/internal/infrastructure/logger"
	"github.com/marketlink/backend/internal/infrastructure/notification"
	"github.com/marketlink/backend/internal/infrastructure/persistence"
	"github.com/marketlink/backend/internal/infrastructure/telemetry"
	"github.com/marketlink/backend/internal/interfaces/http/handler"
	"github.com/marketlink/backend/internal/interfaces/http/middleware"
	"github.com/marketlink/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Marketlink Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	// Schema migrations are applied via cmd/migrate in production;
	// in development AutoMigrate keeps the schema in sync with the models.
	if cfg.App.Env != "production" {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to auto-migrate schema", zap.Error(err))
		}
	}

	// Token blacklist backs logout. Redis outage at startup is fatal in
	// production; in development we fall back to the in-memory store.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	basketRepo := persistence.NewGormBasketRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	checkoutRepo := persistence.NewGormCheckoutRepository(db.DB)

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize notifier
	var sender notification.Sender
	if cfg.Notification.Enabled {
		sender = notification.NewSMTPSender(cfg.Notification)
	} else {
		sender = notification.NewLogSender(log)
	}
	notifier := notification.NewAsyncNotifier(sender, cfg.Notification.QueueSize, log)
	notifier.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := notifier.Stop(ctx); err != nil {
			log.Error("Error stopping notifier", zap.Error(err))
		}
	}()

	// Order status changes notify the buyer by email
	orderStatusHandler := tradeapp.NewOrderStatusChangedHandler(userRepo, notifier, log)
	eventBus.Subscribe(orderStatusHandler)
	log.Info("Event handlers registered",
		zap.Strings("order_status_events", orderStatusHandler.EventTypes()),
	)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, eventBus, log)
	shopService := catalogapp.NewShopService(shopRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, shopRepo, categoryRepo, eventBus, log)
	contactService := partnerapp.NewContactService(contactRepo, log)
	basketService := tradeapp.NewBasketService(basketRepo, shopRepo, productRepo, userRepo, log)
	checkoutService := tradeapp.NewCheckoutService(basketRepo, checkoutRepo, contactRepo, userRepo, eventBus, notifier, log)
	orderService := tradeapp.NewOrderService(orderRepo, shopRepo, eventBus, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the router
	engine := router.New(router.Config{
		Handlers: router.Handlers{
			Auth:     handler.NewAuthHandler(authService),
			Shop:     handler.NewShopHandler(shopService),
			Category: handler.NewCategoryHandler(categoryService),
			Product:  handler.NewProductHandler(productService),
			Contact:  handler.NewContactHandler(contactService),
			Basket:   handler.NewBasketHandler(basketService),
			Order:    handler.NewOrderHandler(checkoutService, orderService),
			System:   handler.NewSystemHandler(db),
		},
		JWT: middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		},
		CORS: middleware.CORSConfig{
			AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Logger:      log,
		ServiceName: cfg.Telemetry.ServiceName,
		APIVersion:  "v1",
	})

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

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
