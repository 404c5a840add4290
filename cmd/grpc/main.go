package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-pricing-service/config"
	"github.com/fekuna/omnipos-pricing-service/internal/events"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/pkg/broker"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/httpserver"
	"github.com/fekuna/omnipos-pricing-service/pkg/i18n"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/middleware"
	"github.com/fekuna/omnipos-pricing-service/pkg/postgres"
	"github.com/fekuna/omnipos-pricing-service/pkg/search"

	pricingv1 "github.com/fekuna/omnipos-pricing-service/api/pricingv1"

	catalogH "github.com/fekuna/omnipos-pricing-service/internal/catalog/handler"
	catalogRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/catalog/repository"
	catalogUCPkg "github.com/fekuna/omnipos-pricing-service/internal/catalog/usecase"

	catRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-pricing-service/internal/category/usecase"

	invH "github.com/fekuna/omnipos-pricing-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-pricing-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-pricing-service/internal/inventory/usecase"

	overrideH "github.com/fekuna/omnipos-pricing-service/internal/override/handler"
	overrideRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/override/repository"
	overrideUCPkg "github.com/fekuna/omnipos-pricing-service/internal/override/usecase"

	pinH "github.com/fekuna/omnipos-pricing-service/internal/pin/handler"
	pinRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/pin/repository"
	pinUCPkg "github.com/fekuna/omnipos-pricing-service/internal/pin/usecase"

	promoH "github.com/fekuna/omnipos-pricing-service/internal/promotion/handler"
	promoRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/promotion/repository"
	promoUCPkg "github.com/fekuna/omnipos-pricing-service/internal/promotion/usecase"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type store interface {
	cache.JSONStore
	cache.Locker
}

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 1.5 Initialize i18n
	if err := i18n.Init(); err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		FilePath:          cfg.Logger.FilePath,
		MaxSizeMB:         100,
		MaxBackups:        5,
		MaxAgeDays:        14,
	})
	defer appLogger.Sync()

	loc, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		appLogger.Fatal("Invalid pricing timezone", zap.String("timezone", cfg.Pricing.Timezone), zap.Error(err))
	}
	opts := pricing.Options{
		Location:      loc,
		CategoryMatch: pricing.ParseCategoryMatch(cfg.Pricing.CategoryMatch),
	}

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	catalogRepo := catalogRepoPkg.NewPGRepository(db)
	overrideRepo := overrideRepoPkg.NewPGRepository(db)
	promoRepo := promoRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	pinRepo := pinRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis. An empty address keeps caches and locks in process.
	var kv store
	if cfg.Redis.Addr == "" {
		appLogger.Warn("Redis address empty, using in-process cache and locks")
		kv = cache.NewMemoryStore()
	} else {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		kv = redisClient
	}

	// 5.5 Initialize Kafka
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.OrdersTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.PricingTopic,
	})
	defer kafkaProducer.Close()
	publisher := events.NewKafkaPublisher(kafkaProducer, appLogger)
	appLogger.Info("Kafka configured",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("orders_topic", cfg.Kafka.OrdersTopic),
		zap.String("pricing_topic", cfg.Kafka.PricingTopic),
	)

	// 5.8 Initialize Elasticsearch
	var searcher search.Searcher
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
	} else {
		searcher = esClient
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	pinUC := pinUCPkg.NewPINUseCase(pinRepo, 0, appLogger)
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, overrideRepo, promoRepo, kv, searcher, opts, appLogger)
	overrideUC := overrideUCPkg.NewOverrideUseCase(overrideRepo, catalogRepo, promoRepo, pinUC, kv, publisher, opts, appLogger)
	promoUC := promoUCPkg.NewPromotionUseCase(promoRepo, catUC, pinUC, kv, publisher, opts, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, catalogRepo, kv, publisher, appLogger)

	// 6.5 Initialize Listeners
	invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go invListener.Start(ctx)

	// 7. Initialize Handlers
	priceHandler := overrideH.NewPriceHandler(overrideUC, appLogger)
	promoHandler := promoH.NewPromotionHandler(promoUC, appLogger)
	catalogHandler := catalogH.NewCatalogHandler(catalogUC, catUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)
	pinHandler := pinH.NewAuthorizationHandler(pinUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.LoggingInterceptor(appLogger),
			middleware.ContextInterceptor(cfg.JWT.SecretKey),
		),
	)

	// Register Services
	pricingv1.RegisterPriceServiceServer(grpcServer, priceHandler)
	pricingv1.RegisterPromotionServiceServer(grpcServer, promoHandler)
	pricingv1.RegisterCatalogServiceServer(grpcServer, catalogHandler)
	pricingv1.RegisterInventoryServiceServer(grpcServer, invHandler)
	pricingv1.RegisterAuthorizationServiceServer(grpcServer, pinHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register Reflection
	reflection.Register(grpcServer)

	// 8.5 Health and metrics over HTTP
	httpServer := httpserver.New(cfg.Server.HTTPAddr, cfg.Server.MetricsEnabled)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("http server stopped", zap.Error(err))
		}
	}()

	appLogger.Info("Starting gRPC server", zap.String("port", port), zap.String("http_addr", cfg.Server.HTTPAddr))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
