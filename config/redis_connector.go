package config

import (
	"fmt"

	"gopkg.in/redis.v5"
)

// SetupRedis connects to the configured Redis server and checks it answers
func SetupRedis(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.URL,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.URL, err)
	}

	return client, nil
}
