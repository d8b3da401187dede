package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "mortgage-engine/http"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	var repo repository.MortgageRepository
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		sqliteRepo, err := repository.NewSQLiteMortgageRepository(path)
		if err != nil {
			log.Fatalf("Error opening sqlite database %s: %v", path, err)
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
	} else {
		repo = repository.NewMemoryMortgageRepository()
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMockCache()
	}

	mortgageService := service.NewMortgageService(repo, cache)
	mortgageHandler := httpLayer.NewMortgageHandler(mortgageService)

	termComparisonService := service.NewTermComparisonService()
	termComparisonHandler := httpLayer.NewTermComparisonHandler(termComparisonService)

	downPaymentService := service.NewDownPaymentService()
	downPaymentHandler := httpLayer.NewDownPaymentHandler(downPaymentService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/mortgage/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(mortgageHandler.CalculateMortgage),
		),
	)

	mux.Handle(
		"/mortgage/compare-terms",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(termComparisonHandler.CompareTerms),
		),
	)

	mux.Handle(
		"/mortgage/down-payment-plan",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(downPaymentHandler.PlanDownPayment),
		),
	)

	mux.Handle(
		"/mortgage/history",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(mortgageHandler.History),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Mortgage API listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
