// Package cache provides the JSON cache-aside store backing marketplace
// reads.
package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../mocks/mock_cache_store.go -package=mocks github.com/agunich/AutoHub/internal/cache Store

// Store is a typed JSON key-value cache. Get reports (false, nil) on a miss.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
