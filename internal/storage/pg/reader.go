package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/pkg/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.conn}, nil
}

// Ping reports whether the underlying pool is reachable, for health checks.
func (r *Reader) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Reader) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.db.QueryRow(
		ctx,
		`SELECT id, title, author, body, source, published_at FROM articles WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Title, &a.Author, &a.Body, &a.Source, &a.PublishedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %s: %w", id, err)
	}

	return &a, nil
}

func (r *Reader) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM articles`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	offset := (req.Page - 1) * req.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, author, body, source, published_at
         FROM articles
         ORDER BY published_at DESC NULLS LAST, id
         LIMIT $1 OFFSET $2`,
		req.Size,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Author, &a.Body, &a.Source, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article rows: %w", err)
	}

	return pagination.NewOffsetResult(articles, total, req.Page, req.Size), nil
}
