package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sm8ta/webike_inventory/internal/app"
	"github.com/sm8ta/webike_inventory/internal/config"

	_ "github.com/lib/pq"
)

// @title WeBike Inventory API
// @version 1.0
// @description Bike inventory backed by Baserow

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Create app
	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Fatalf("HTTP server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop app: %v", err)
	}
}
