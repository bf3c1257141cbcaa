package cache

import (
	"encoding/json"

	"gopkg.in/redis.v5"

	"library/models"
)

type RedisRequestCacher struct {
	Client    *redis.Client
	Key       string
	MaxNumber int
}

func CreateRedisCache(client *redis.Client, key string, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{Client: client, Key: key, MaxNumber: maxNumber}
}

func (cacher *RedisRequestCacher) Write(record models.RequestRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	pushCmd := cacher.Client.LPush(cacher.Key, value)

	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := cacher.Client.LTrim(cacher.Key, 0, int64(cacher.MaxNumber-1))

	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (cacher *RedisRequestCacher) Read() ([]models.RequestRecord, error) {
	values, err := cacher.Client.LRange(cacher.Key, 0, int64(cacher.MaxNumber-1)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]models.RequestRecord, 0, len(values))
	for _, value := range values {
		var record models.RequestRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (cacher *RedisRequestCacher) Close() error {
	return cacher.Client.Close()
}
