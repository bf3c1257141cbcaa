package cache

import (
	"sync"

	"library/models"
)

// MemoryRequestCacher is the RequestCacher used when no Redis server is configured
type MemoryRequestCacher struct {
	mu        sync.Mutex
	records   []models.RequestRecord
	MaxNumber int
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{MaxNumber: maxNumber}
}

func (cacher *MemoryRequestCacher) Write(record models.RequestRecord) error {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	cacher.records = append([]models.RequestRecord{record}, cacher.records...)
	if len(cacher.records) > cacher.MaxNumber {
		cacher.records = cacher.records[:cacher.MaxNumber]
	}

	return nil
}

func (cacher *MemoryRequestCacher) Read() ([]models.RequestRecord, error) {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	records := make([]models.RequestRecord, len(cacher.records))
	copy(records, cacher.records)

	return records, nil
}

func (cacher *MemoryRequestCacher) Close() error {
	return nil
}
