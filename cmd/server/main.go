package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"silage/config"
	"silage/database"
	"silage/pkg/logger"
	"silage/pkg/seed"
	"silage/router"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "silage")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if tz, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = tz
	} else {
		zl.Warn("unknown TZ", zap.String("tz", cfg.Timezone), zap.Error(err))
	}

	// 3) DB + automigrate
	db, err := database.Open(cfg.DBDriver, cfg.DSN(), zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	// 4) Routes
	e, catalog := router.Wire(echo.New(), db, zl, cfg.StaticDir)

	// 5) Seed catalog
	if cfg.SeedFile != "" {
		c, err := seed.Load(cfg.SeedFile)
		if err != nil {
			zl.Fatal("seed", zap.String("file", cfg.SeedFile), zap.Error(err))
		}
		if _, err := c.Apply(context.Background(), catalog, zl); err != nil {
			zl.Fatal("seed", zap.Error(err))
		}
	}

	// 6) Start
	go func() {
		zl.Info("listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	zl.Info("stopped")
}
