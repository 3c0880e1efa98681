package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/lokesh-18a/artiflex/internal/client"
	"github.com/lokesh-18a/artiflex/internal/config"
	"github.com/lokesh-18a/artiflex/internal/logging"
	"github.com/lokesh-18a/artiflex/internal/repository"
	"github.com/lokesh-18a/artiflex/internal/server"
	"github.com/lokesh-18a/artiflex/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logging.Init("api", cfg.Log.Level, cfg.Log.File)

	db := client.InitDBClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	geminiClient := client.NewGeminiClient(&cfg.Gemini)
	ratesClient := client.NewRatesClient(&cfg.Rates)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	authService := service.NewAuthService(userRepo, cfg.Session.Secret, sessionTTL)
	catalogService := service.NewCatalogService(productRepo, userRepo)
	currencyService := service.NewCurrencyService(ratesClient)
	cartService := service.NewCartService(db, cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(db, cartRepo, orderRepo, productRepo)
	orderService := service.NewOrderService(orderRepo)
	paymentService := service.NewPaymentService(stripeClient, cartRepo, cfg.BaseURL)
	aiService := service.NewAIService(geminiClient)
	artistService := service.NewArtistService(productRepo, orderRepo, userRepo, aiService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		authService,
		catalogService,
		currencyService,
		cartService,
		checkoutService,
		orderService,
		paymentService,
		artistService,
		sessionTTL,
	)

	log.Info("starting HTTP server", "addr", serverAddr, "env", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
