package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopping-backend/internal/auth"
	"shopping-backend/internal/client"
	"shopping-backend/internal/config"
	"shopping-backend/internal/logger"
	"shopping-backend/internal/repository"
	"shopping-backend/internal/server"
	"shopping-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
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

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db := client.InitMysqlClient(cfg.DatabaseURL)
	if cfg.SeedDemo {
		if err := client.SeedDemoData(db); err != nil {
			log.Fatal("seed demo data", zap.Error(err))
		}
	}

	rateClient := client.NewExchangeRateClient(&cfg.ExchangeRate)
	tokens := auth.NewJWTProvider(cfg.JWT)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := service.NewUserService(userRepo, tokens)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(productRepo, cartRepo)
	orderService := service.NewOrderService(db, rateClient, cartRepo, orderRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(log, tokens, userService, productService, cartService, orderService)

	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
