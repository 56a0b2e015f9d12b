package storage

import (
	"context"
	"errors"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/pkg/pagination"
)

// ErrNotFound is returned by readers when no article has the requested id.
var ErrNotFound = errors.New("article not found")

// Storer persists articles keyed by id: insert if absent, fully overwrite
// if present.
type Storer interface {
	// Upsert writes one article, last-write-wins on id.
	Upsert(ctx context.Context, article domain.Article) error

	// UpsertAll writes a batch sequentially and returns how many rows were
	// applied. Rows applied before a failure stay applied; the count plus
	// the error tells the caller where the batch stopped.
	UpsertAll(ctx context.Context, articles []domain.Article) (int, error)

	// Sample reads back up to n rows in implementation-defined order, as an
	// operational sanity check after a sync run.
	Sample(ctx context.Context, n int) ([]domain.Article, error)
}

// Reader serves the feed API over synced articles.
type Reader interface {
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error)
}

type Type string

const (
	PG    Type = "pg"
	ES    Type = "es"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
