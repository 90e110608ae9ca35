// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/roomdesk/booking-assistant/internal/availability"
	"github.com/roomdesk/booking-assistant/internal/catalog"
	"github.com/roomdesk/booking-assistant/internal/config"
	"github.com/roomdesk/booking-assistant/internal/events"
	"github.com/roomdesk/booking-assistant/internal/handler"
	"github.com/roomdesk/booking-assistant/internal/ledger"
	"github.com/roomdesk/booking-assistant/internal/middleware"
	"github.com/roomdesk/booking-assistant/internal/oracle"
	"github.com/roomdesk/booking-assistant/internal/resolver"
	"github.com/roomdesk/booking-assistant/internal/service"
	"github.com/roomdesk/booking-assistant/pkg/logger"
	"github.com/roomdesk/booking-assistant/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting booking assistant API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "booking-assistant", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect the booking event stream when configured
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		p, err := events.Connect(ctx, events.Config{
			URL:   cfg.NATSURL,
			Token: cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		publisher = p
		defer publisher.Close()
	}

	// Initialize the extraction oracle client
	var oracleClient oracle.Client
	switch {
	case cfg.AnthropicAPIKey != "" && cfg.OracleProvider != string(oracle.ProviderOpenAI):
		oracleClient, err = oracle.NewClient(oracle.ProviderAnthropic, cfg.AnthropicAPIKey, cfg.OracleModel)
	case cfg.OpenAIAPIKey != "":
		oracleClient, err = oracle.NewClient(oracle.ProviderOpenAI, cfg.OpenAIAPIKey, cfg.OracleModel)
	}
	if err != nil {
		log.Warn("failed to create oracle client, extraction disabled", zap.Error(err))
		oracleClient = nil
	}
	if oracleClient == nil {
		log.Warn("no oracle API key configured, chat requests will degrade to error envelopes")
	}

	// Initialize core components
	roomCatalog := catalog.New()
	bookingLedger := ledger.New()
	engine := availability.NewEngine(roomCatalog, bookingLedger)
	intentResolver := resolver.New(roomCatalog, bookingLedger, engine, publisher, log)
	assistant := service.NewAssistant(roomCatalog, bookingLedger, intentResolver, oracleClient, cfg.OracleTimeout, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(publisher)
	chatHandler := handler.NewChatHandler(assistant, log)
	roomHandler := handler.NewRoomHandler(roomCatalog)
	bookingHandler := handler.NewBookingHandler(bookingLedger)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Group(func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(middleware.Auth(cfg.JWTSecret))
		}
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Post("/chat", chatHandler.Chat)
		r.Get("/rooms", roomHandler.List)
		r.Get("/bookings", bookingHandler.List)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
