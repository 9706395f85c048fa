package main

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"wallet-tracker-api/internal/clients/coingecko"
	"wallet-tracker-api/internal/config"
	"wallet-tracker-api/internal/controllers"
	"wallet-tracker-api/internal/middleware"
	"wallet-tracker-api/internal/repositories"
	"wallet-tracker-api/internal/seed"
	"wallet-tracker-api/internal/services"
	"wallet-tracker-api/pkg/database"
	"wallet-tracker-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.Logging)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.Database.SeedCurrencies {
		if err := seed.Currencies(db.DB); err != nil {
			logrus.Fatalf("Failed to seed currencies: %v", err)
		}
	}

	geckoClient := coingecko.NewClient(&coingecko.Config{
		BaseURL:   cfg.CoinGecko.BaseURL,
		APIKey:    cfg.CoinGecko.APIKey,
		Timeout:   cfg.CoinGecko.Timeout,
		RateLimit: cfg.CoinGecko.RateLimit,
	})

	userRepo := repositories.NewUserRepository(db.DB)
	walletRepo := repositories.NewWalletRepository(db.DB)
	currencyRepo := repositories.NewCurrencyRepository(db.DB)
	txRepo := repositories.NewTransactionRepository(db.DB)

	userService := services.NewUserService(userRepo, walletRepo)
	walletService := services.NewWalletService(userRepo, walletRepo, currencyRepo, txRepo)
	statsService := services.NewStatisticsService(
		userRepo, walletRepo, currencyRepo, txRepo,
		&meteredPriceLookup{client: geckoClient},
	)
	coinService := services.NewCoinService(geckoClient)

	userController := controllers.NewUserController(userService)
	walletController := controllers.NewWalletController(walletService, statsService)
	coinController := controllers.NewCoinController(coinService)
	healthController := controllers.NewHealthController(db)

	router := setupRouter(cfg, userController, walletController, coinController, healthController)

	logrus.Infof("Starting wallet tracker API on port %s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

func setupRouter(
	cfg *config.Config,
	userController *controllers.UserController,
	walletController *controllers.WalletController,
	coinController *controllers.CoinController,
	healthController *controllers.HealthController,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(gin.Recovery())

	router.GET("/health", healthController.Health)
	router.GET("/ready", healthController.Readiness)
	router.GET("/live", healthController.Liveness)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	coins := router.Group("/coins")
	{
		coins.GET("/", coinController.ListCoins)
		coins.GET("/:id", coinController.GetCoin)
	}

	wallet := router.Group("/wallet")
	{
		wallet.GET("", walletController.GetWallet)
		wallet.POST("", walletController.RecordMovement)
		wallet.GET("/statistic", walletController.Statistics)
	}

	router.POST("/users/register", userController.Register)

	return router
}

// meteredPriceLookup counts provider lookups without touching the engine.
type meteredPriceLookup struct {
	client *coingecko.Client
}

func (m *meteredPriceLookup) GetPrice(ctx context.Context, code string) (float64, error) {
	price, err := m.client.GetPrice(ctx, code)
	if err != nil {
		middleware.ObservePriceLookup("error")
		return 0, err
	}
	middleware.ObservePriceLookup("ok")
	return price, nil
}
