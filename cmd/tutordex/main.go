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

	"github.com/kailas-cloud/tutordex/internal/config"
	dbRedis "github.com/kailas-cloud/tutordex/internal/db/redis"
	"github.com/kailas-cloud/tutordex/internal/domain"
	logpkg "github.com/kailas-cloud/tutordex/internal/logger"
	"github.com/kailas-cloud/tutordex/internal/metrics"
	tutorrepo "github.com/kailas-cloud/tutordex/internal/repository/tutor"
	chiTransport "github.com/kailas-cloud/tutordex/internal/transport/chi"
	directoryuc "github.com/kailas-cloud/tutordex/internal/usecase/directory"
	exploreuc "github.com/kailas-cloud/tutordex/internal/usecase/explore"
	healthuc "github.com/kailas-cloud/tutordex/internal/usecase/health"
	"github.com/kailas-cloud/tutordex/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tutordex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	domain.KeyPrefix = cfg.Storage.KeyPrefix

	// rueidis speaks RESP to both Redis and Valkey, one store serves either driver
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	metrics.RegisterDirectoryMetrics()

	repo := tutorrepo.New(store)
	directorySvc := directoryuc.New(repo).WithSubjectOptions(cfg.Directory.SubjectOptions)
	exploreSvc := exploreuc.New(cfg.Explore.Catalog())
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(directorySvc, exploreSvc, healthSvc, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, cfg.Auth.APIKeys),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
