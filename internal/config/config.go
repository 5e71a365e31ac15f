package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

type Config struct {
	Route          models.Route
	LogLevel       string
	Port           string
	CacheEnabled   bool
	RedisHost      string
	RedisPort      string
	RedisTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodySize    string
}

// Load reads settings from the environment. Values in a .env file in the
// working directory are applied first when the file exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Route: models.Route{
			Origin:      getEnv("ROUTE_ORIGIN", models.DefaultRoute.Origin),
			Destination: getEnv("ROUTE_DESTINATION", models.DefaultRoute.Destination),
		},
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", "8080"),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", false),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisTTL:       getEnvDuration("REDIS_TTL", 10*time.Minute),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		MaxBodySize:    getEnv("MAX_BODY_SIZE", "1M"),
	}
}

// NewLogger returns a logrus logger at the configured level, falling back
// to info for unknown levels.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
