package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gofloaters/spacefinder/api/internal/cache"
	"github.com/gofloaters/spacefinder/api/internal/config"
	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
	"github.com/gofloaters/spacefinder/api/internal/handler"
	"github.com/gofloaters/spacefinder/api/internal/location"
	"github.com/gofloaters/spacefinder/api/internal/logger"
	"github.com/gofloaters/spacefinder/api/internal/router"
	"github.com/gofloaters/spacefinder/api/internal/service"
	"github.com/gofloaters/spacefinder/api/internal/service/geofilter"
	"github.com/gofloaters/spacefinder/api/internal/spaces"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	var store cache.Store = cache.NopStore{}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		redisStore, err := cache.NewRedisStore(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			defer redisStore.Close()
			store = redisStore
		}
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	source := spaces.NewClient(httpClient, cfg.SpacesBaseURL)
	nearbyCache := cache.NewNearbyCache(store, cfg.CacheTTL)
	spacesService := service.NewSpacesService(source, nearbyCache, geofilter.New(cfg.ParallelThreshold), log)

	catalogue := location.DefaultCatalogue()
	fallback := entity.Place{
		Name:       cfg.DefaultLocation.Name,
		Coordinate: geo.Coordinate{Lat: cfg.DefaultLocation.Lat, Lng: cfg.DefaultLocation.Lng},
	}
	resolver := location.NewResolver(cache.NewLocationStore(store, cfg.LocationTTL), fallback, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, log, router.Handlers{
		Spaces:   handler.NewSpacesHandler(spacesService),
		Places:   handler.NewPlacesHandler(catalogue),
		Location: handler.NewLocationHandler(resolver, catalogue),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("spaces_api", cfg.SpacesBaseURL))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
