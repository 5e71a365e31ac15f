package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/ticketreport/internal/cache"
	"github.com/dharmasatrya/ticketreport/internal/config"
	"github.com/dharmasatrya/ticketreport/internal/handler"
	"github.com/dharmasatrya/ticketreport/internal/ratelimit"
)

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()

	if err := cfg.Route.Validate(); err != nil {
		logger.Fatalf("Invalid route: %v", err)
	}

	reportCache := newCache(cfg, logger)
	defer reportCache.Close()

	e := newServer(cfg, reportCache, logger)

	logger.Printf("Starting ticket report server on port %s (default route %s)", cfg.Port, cfg.Route)

	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

func newServer(cfg config.Config, reportCache cache.Cache, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})

	reportHandler := handler.NewReportHandler(cfg.Route, reportCache, logger)

	api := e.Group("/api/v1", limiter.Middleware(), middleware.BodyLimit(cfg.MaxBodySize))
	api.POST("/reports", reportHandler.Create)
	e.GET("/health", handler.HealthHandler)

	return e
}

func newCache(cfg config.Config, logger *logrus.Logger) cache.Cache {
	if !cfg.CacheEnabled {
		logger.Println("Cache disabled")
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Host: cfg.RedisHost,
		Port: cfg.RedisPort,
		TTL:  cfg.RedisTTL,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	logger.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)

	return redisCache
}
