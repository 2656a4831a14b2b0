// Package main is the entry point for the Uniboks API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"uniboks/internal/domain/book"
	"uniboks/internal/domain/invoice"
	"uniboks/internal/domain/purchase"
	"uniboks/internal/domain/user"
	"uniboks/internal/domain/wishlist"
	v1 "uniboks/internal/infrastructure/http/v1"
	"uniboks/internal/infrastructure/numerator"
	"uniboks/internal/infrastructure/storage/postgres"
	"uniboks/internal/infrastructure/storage/postgres/store_repo"
	"uniboks/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("no .env file loaded: %v\n", err)
	}

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting uniboks server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	userRepo := store_repo.NewUserRepo(txManager)
	bookRepo := store_repo.NewBookRepo(txManager)
	wishlistRepo := store_repo.NewWishlistRepo(txManager)
	purchaseRepo := store_repo.NewPurchaseRepo(txManager)

	eventLog, err := postgres.NewEventLog(txManager)
	if err != nil {
		log.Fatalw("failed to initialize event log", "error", err)
	}

	// --- Invoice pipeline ---
	numberGen := numerator.New(pool)

	invoiceCfg := invoice.DefaultConfig()
	invoiceCfg.LogoPath = getEnv("INVOICE_LOGO_PATH", "")
	renderer := invoice.NewRenderer(invoiceCfg)

	// --- Services ---
	userService := user.NewService(userRepo, txManager, eventLog)
	bookService := book.NewService(bookRepo, userRepo, txManager)
	wishlistService := wishlist.NewService(wishlistRepo, bookRepo, txManager, eventLog)
	purchaseService := purchase.NewService(
		purchaseRepo, userRepo, bookRepo,
		numberGen, renderer, txManager, eventLog,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:      pool,
		Logger:    log,
		Users:     userService,
		Books:     bookService,
		Wishlists: wishlistService,
		Purchases: purchaseService,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   splitEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID", "X-Trace-ID"},
		AllowCredentials: true,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	postgres.LogPoolStats(ctx, pool.Pool)
	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func splitEnv(key, defaultValue string) []string {
	return strings.Split(getEnv(key, defaultValue), ",")
}
