package cache

import (
	"library/config"
	"library/models"
)

// RequestCacher keeps the most recent request records, newest first
type RequestCacher interface {
	Write(record models.RequestRecord) error
	Read() ([]models.RequestRecord, error)
	Close() error
}

// NewRequestCacher picks Redis when a URL is configured and memory otherwise
func NewRequestCacher(cfg *config.Config) (RequestCacher, error) {
	if cfg.Redis.URL == "" {
		return CreateMemoryCache(cfg.Activity.Size), nil
	}

	client, err := config.SetupRedis(cfg)
	if err != nil {
		return nil, err
	}

	return CreateRedisCache(client, config.ActivityKey, cfg.Activity.Size), nil
}
