package factory

import (
	"context"
	"fmt"

	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/internal/storage/es"
	"github.com/dkovacevic/newsdata-sync/internal/storage/in_mem"
	"github.com/dkovacevic/newsdata-sync/internal/storage/pg"
)

// NewStorer creates a storage.Storer for the configured backend.
func NewStorer(ctx context.Context, cfg *StorageConfig) (storage.Storer, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStorer(ctx, pool)

	case storage.ES:
		return es.NewStorer(ctx, *cfg.Es)

	case storage.InMem:
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewReader creates a storage.Reader for the configured backend.
func NewReader(ctx context.Context, cfg *StorageConfig) (storage.Reader, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewReader(pool)

	case storage.InMem:
		return in_mem.NewInMemStorer(), nil

	case storage.ES:
		// The feed API lists by offset, which the ES backend does not serve.
		return nil, fmt.Errorf("es reader not supported, use pg for the feed api")

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
