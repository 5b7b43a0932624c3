package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ticketbay/checkout-gateway/internal/api"
	"github.com/ticketbay/checkout-gateway/internal/config"
	"github.com/ticketbay/checkout-gateway/internal/processor"
	"github.com/ticketbay/checkout-gateway/internal/service"
	"github.com/ticketbay/checkout-gateway/internal/telemetry"
)

func main() {
	// Load .env when present; the real environment still wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := telemetry.Init("checkout-gateway", cfg.OTLPEndpoint); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting checkout gateway", zap.String("env", cfg.AppEnv))

	stripeAPI := processor.NewStripeProcessor(cfg.StripeSecretKey)
	manager := service.NewCheckoutManager(stripeAPI, cfg)

	r := api.NewRouter(cfg, manager)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		telemetry.Logger.Info("Checkout gateway listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
