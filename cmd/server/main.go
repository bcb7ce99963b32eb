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

	"github.com/Lixing-Zhang/dynamic-pricing/internal/config"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/handlers"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/middleware"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/pricing"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/repository"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/service"
	"github.com/Lixing-Zhang/dynamic-pricing/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting dynamic pricing api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"grid_steps", cfg.Pricing.GridSteps,
	)

	// Load the product catalog once; it is read-only afterwards
	ctx := context.Background()
	sources, cleanup, err := catalogSources(ctx, cfg.Catalog)
	if err != nil {
		log.Error("failed to prepare catalog sources", "error", err)
		os.Exit(1)
	}
	catalog, err := repository.NewLoader(log).Load(ctx, sources...)
	cleanup()
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	stats := catalog.Stats()
	log.Info("catalog loaded successfully",
		"products", stats.Products,
		"categories", stats.Categories,
		"degenerate", stats.Degenerate,
	)

	// Initialize engine and services
	engine := pricing.NewEngine(catalog, pricing.WithGridSteps(cfg.Pricing.GridSteps))
	pricingService := service.NewPricingService(catalog, engine, cfg.Pricing.Workers)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(catalog, log)
	productHandler := handlers.NewProductHandler(pricingService, log)
	pricingHandler := handlers.NewPricingHandler(pricingService, log)
	catalogHandler := handlers.NewCatalogHandler(catalog, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/categories", productHandler.ListCategories)

		// Pricing endpoints
		r.Get("/product/{productId}/recommendation", pricingHandler.GetRecommendation)
		r.Get("/recommendations", pricingHandler.ListRecommendations)
		r.With(middleware.APIKeyAuth(cfg.Auth)).Post("/product/{productId}/simulate", pricingHandler.Simulate)

		r.Get("/catalog/stats", catalogHandler.GetStats)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// catalogSources turns the catalog configuration into sources. The returned
// cleanup releases the database pool once loading is done.
func catalogSources(ctx context.Context, cfg config.CatalogConfig) ([]repository.Source, func(), error) {
	var sources []repository.Source
	for _, path := range cfg.Files {
		sources = append(sources, repository.NewFileSource(path))
	}
	for _, url := range cfg.URLs {
		sources = append(sources, repository.NewURLSource(url))
	}

	if cfg.DatabaseURL == "" {
		return sources, func() {}, nil
	}

	db, err := repository.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	sources = append(sources, repository.NewPostgresSource(db, cfg.ProductIDs))

	return sources, func() { db.Close() }, nil
}
