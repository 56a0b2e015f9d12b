package pg

import (
	"context"
	"fmt"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const upsertSQL = `
        INSERT INTO articles (id, title, author, body, source, published_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            title        = EXCLUDED.title,
            author       = EXCLUDED.author,
            body         = EXCLUDED.body,
            source       = EXCLUDED.source,
            published_at = EXCLUDED.published_at;
    `

const schemaSQL = `
        CREATE TABLE IF NOT EXISTS articles (
            id TEXT PRIMARY KEY,
            title TEXT,
            author TEXT,
            body TEXT,
            source TEXT,
            published_at TEXT
        );
    `

type Storer struct {
	db *pgxpool.Pool
}

// NewStorer wraps the pool and bootstraps the articles table if it does not
// exist yet.
func NewStorer(ctx context.Context, pool *ConnectionPool) (*Storer, error) {
	s := &Storer{db: pool.conn}

	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure articles table: %w", err)
	}

	return s, nil
}

func (s *Storer) ensureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

func (s *Storer) Upsert(ctx context.Context, article domain.Article) error {
	_, err := s.db.Exec(
		ctx,
		upsertSQL,
		article.ID,
		article.Title,
		article.Author,
		article.Body,
		article.Source,
		article.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", article.ID, err)
	}

	return nil
}

// UpsertAll writes the batch on a single acquired connection, released on
// all exit paths. Each statement commits on its own, so rows applied before
// a failure stay applied; the returned count says how far the batch got.
func (s *Storer) UpsertAll(ctx context.Context, articles []domain.Article) (int, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	for i, a := range articles {
		_, err := conn.Exec(
			ctx,
			upsertSQL,
			a.ID,
			a.Title,
			a.Author,
			a.Body,
			a.Source,
			a.PublishedAt,
		)
		if err != nil {
			return i, fmt.Errorf("failed to upsert article %s: %w", a.ID, err)
		}
	}

	return len(articles), nil
}

func (s *Storer) Sample(ctx context.Context, n int) ([]domain.Article, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, title, author, body, source, published_at FROM articles ORDER BY id LIMIT $1`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sample articles: %w", err)
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
		return nil, fmt.Errorf("failed to read sample rows: %w", err)
	}

	return articles, nil
}
