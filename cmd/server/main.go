package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/cache"
	apphttp "github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/http"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/logger"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/payment"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/repository"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/service"
)

type Config struct {
	HTTPPort         string
	MongoURI         string
	MongoDBName      string
	RedisAddr        string
	RedisPassword    string
	TokenSecret      string
	PaymentAPIURL    string
	PaymentSecretKey string
	Env              string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:         getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:      getEnv("MONGO_DB_NAME", "MediMarketHub"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		TokenSecret:      getEnv("ACCESS_TOKEN_SECRET", ""),
		PaymentAPIURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		Env:              getEnv("APP_ENV", "development"),
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	if cfg.TokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must be set")
	}

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	// One store handle for the whole process: opened here, injected into
	// every repository, closed on shutdown.
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		appLog.Fatal("failed to connect to MongoDB", "error", err)
	}
	appLog.Info("connected to MongoDB", "uri", cfg.MongoURI)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		appLog.Fatal("failed to create indexes", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLog.Fatal("redis connection failed", "error", err)
	}
	appLog.Info("connected to Redis", "addr", cfg.RedisAddr)

	medicineRepo := repository.NewMedicineRepository(mongoDB)
	cartRepo := repository.NewCartRepository(mongoDB)
	promoRepo := repository.NewPromotionRepository(mongoDB)
	paymentRepo := repository.NewPaymentRepository(mongoDB)

	marketCache := cache.NewRedisCache(redisClient)

	catalogService := service.NewCatalogService(medicineRepo, marketCache, appLog)
	cartService := service.NewCartService(cartRepo, medicineRepo, marketCache, appLog)
	promotionService := service.NewPromotionService(medicineRepo, promoRepo, marketCache, appLog)
	checkoutService := service.NewCheckoutService(paymentRepo, cartRepo, marketCache, appLog)
	statsService := service.NewStatsService(paymentRepo)

	intentClient := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)

	production := cfg.Env == "prod" || cfg.Env == "production"
	router := apphttp.NewRouter(apphttp.RouterConfig{
		TokenSecret:    []byte(cfg.TokenSecret),
		RequestTimeout: cfg.RequestTimeout,
	}, apphttp.Handlers{
		Auth:      apphttp.NewAuthHandler([]byte(cfg.TokenSecret), production),
		Catalog:   apphttp.NewCatalogHandler(catalogService),
		Cart:      apphttp.NewCartHandler(cartService),
		Promotion: apphttp.NewPromotionHandler(promotionService),
		Checkout:  apphttp.NewCheckoutHandler(checkoutService, intentClient),
		Stats:     apphttp.NewStatsHandler(statsService),
	}, appLog)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		appLog.Info("server listening", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("server shutdown failed", "error", err)
	}
	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		appLog.Error("mongo disconnect failed", "error", err)
	}
	appLog.Info("server stopped")
}
