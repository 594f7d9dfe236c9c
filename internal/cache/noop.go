package cache

import (
	"context"
	"time"
)

// Noop mantém a API de cache quando o redis não está disponível.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, result any) (bool, error) { return false, nil }

func (Noop) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return nil
}

func (Noop) Invalidate(ctx context.Context, key string) error { return nil }
