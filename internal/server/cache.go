package server

import (
	"fmt"
	"time"

	"github.com/gofiber/storage/redis/v3"
)

// ResultCache stores encoded analysis results. A missing key yields a nil
// value and no error.
type ResultCache interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// NewRedisCache connects to Redis at url. The storage driver panics when the
// initial ping fails, so that is turned into an error here.
func NewRedisCache(url string) (cache *redis.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to connect to redis: %v", r)
		}
	}()

	return redis.New(redis.Config{URL: url}), nil
}
