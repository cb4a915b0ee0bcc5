package kv

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/config"
)

// Open builds the Store selected by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.DatabaseDSN)
	case config.BackendRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix)
	case config.BackendNop:
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedBackend, cfg.StorageBackend)
	}
}
