package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/api/handler"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/api/router"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/repository"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/weather"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/database"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/kvcache"
	applogger "github.com/minumaeng82-netizen/dasuDashboard/pkg/logger"
)

func main() {
	// 1. configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.New(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.New(&cfg.DB, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// 4. redis cache: optional, a failed connection degrades the record
	// store to database-plus-seed and disables the token blacklist
	cache, err := kvcache.New(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, running without local cache", zap.Error(err))
		cache = nil
	}

	// 5. wiring: repository → stores → services → handlers
	jwtMgr := jwt.NewManager(&cfg.Auth)
	weatherClient := weather.New(&cfg.Weather, logger)

	repo := repository.New(db)
	stores := service.NewStores(repo, cache, logger)
	svc := service.New(cfg, stores, jwtMgr, cache, weatherClient, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, cache, logger)

	// 6. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	if closeDB, err := db.DB(); err == nil {
		closeDB.Close()
	}
	if err := cache.Close(); err != nil {
		logger.Warn("redis close failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
