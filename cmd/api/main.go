package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gravadigital/eventi-api/internal/config"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/server"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log := logger.Get()

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := postgres.Close(); err != nil {
			log.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := postgres.AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, db)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Forced server shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}
