// Package filterstate persists per-view filter configurations so they
// survive reloads. Each view (e.g. the coins gallery vs the banknotes
// gallery) saves under its own caller-supplied key.
package filterstate

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/avododokhov/numisvault/internal/stats"
	storage "github.com/avododokhov/numisvault/pkg/redis"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "filters:"

// Store keeps serialized filter configurations in Redis.
type Store struct {
	rclient *storage.RedisClient
}

func NewStore(rclient *storage.RedisClient) *Store {
	return &Store{rclient: rclient}
}

// Save persists the filter configuration under the view key. Entries do
// not expire; a view's filters live until overwritten.
func (s *Store) Save(ctx context.Context, key string, filter stats.Filter) error {
	if key == "" {
		return utils.ValidationError("filter key is required")
	}
	data, err := json.Marshal(filter)
	if err != nil {
		return utils.StorageError(err)
	}
	if err := s.rclient.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// Load restores the filter configuration for the view key. A key that was
// never saved yields the empty filter, not an error.
func (s *Store) Load(ctx context.Context, key string) (stats.Filter, error) {
	var filter stats.Filter
	if key == "" {
		return filter, utils.ValidationError("filter key is required")
	}

	data, err := s.rclient.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return filter, nil
	}
	if err != nil {
		return filter, utils.StorageError(err)
	}

	if err := json.Unmarshal(data, &filter); err != nil {
		return filter, utils.StorageError(err)
	}
	return filter, nil
}
