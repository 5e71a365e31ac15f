package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

type Cache interface {
	Get(ctx context.Context, key string) (*models.Report, bool)
	Set(ctx context.Context, key string, report *models.Report) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      10 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.Report, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false
	}

	return &report, true
}

func (c *RedisCache) Set(ctx context.Context, key string, report *models.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key string) (*models.Report, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key string, report *models.Report) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// Key identifies the report of one document on one route.
func Key(doc string, route models.Route) string {
	h := sha256.New()
	h.Write([]byte(route.Origin))
	h.Write([]byte{0})
	h.Write([]byte(route.Destination))
	h.Write([]byte{0})
	h.Write([]byte(doc))
	return "report:" + hex.EncodeToString(h.Sum(nil))
}
