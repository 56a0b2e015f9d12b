package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// Storer indexes articles with the article id as the document id, so a
// repeated index call on the same id overwrites the previous document.
type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Upsert(ctx context.Context, article domain.Article) error {
	doc := mapToDocument(article)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("document indexed successfully", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return nil
}

func (e *Storer) UpsertAll(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	// The indexer invokes these callbacks from its worker goroutines, and
	// the success count is returned as the stored count, so the counters
	// must be atomic.
	var successful, failed atomic.Int64

	for _, article := range articles {
		doc := mapToDocument(article)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return int(successful.Load()), fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(articles),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return int(successful.Load()), fmt.Errorf("failed to index %d out of %d articles", n, len(articles))
	}

	return int(successful.Load()), nil
}

func (e *Storer) Sample(ctx context.Context, n int) ([]domain.Article, error) {
	res, err := e.client.Search().
		Index(e.indexName).
		Size(n).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sample documents: %w", err)
	}

	articles := make([]domain.Article, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ArticleDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		articles = append(articles, doc.toArticle())
	}

	return articles, nil
}

// GetByID fetches one document by its article id.
func (e *Storer) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	res, err := e.client.Get(e.indexName, id).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc ArticleDocument
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	article := doc.toArticle()
	return &article, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("index already exists", "index", e.indexName)
		return nil
	}

	mappings := buildMapping()

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("index created successfully", "index", e.indexName)
	return nil
}
