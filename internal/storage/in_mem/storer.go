package in_mem

import (
	"context"
	"sort"
	"sync"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/pkg/pagination"
)

// InMemStorer keeps articles in a map keyed by id. It backs the in_mem
// storage type and the unit tests.
type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[string]domain.Article
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[string]domain.Article),
	}
}

func (s *InMemStorer) Upsert(ctx context.Context, article domain.Article) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.storage[article.ID] = article
	return nil
}

func (s *InMemStorer) UpsertAll(ctx context.Context, articles []domain.Article) (int, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, article := range articles {
		s.storage[article.ID] = article
	}
	return len(articles), nil
}

func (s *InMemStorer) Sample(ctx context.Context, n int) ([]domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ids := s.sortedIDs()
	if n < 0 {
		n = 0
	}
	if n > len(ids) {
		n = len(ids)
	}

	articles := make([]domain.Article, 0, n)
	for _, id := range ids[:n] {
		articles = append(articles, s.storage[id])
	}
	return articles, nil
}

func (s *InMemStorer) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	article, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &article, nil
}

func (s *InMemStorer) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ids := s.sortedIDs()
	total := int64(len(ids))

	offset := (req.Page - 1) * req.Size
	if offset > len(ids) {
		offset = len(ids)
	}
	end := offset + req.Size
	if end > len(ids) {
		end = len(ids)
	}

	articles := make([]domain.Article, 0, end-offset)
	for _, id := range ids[offset:end] {
		articles = append(articles, s.storage[id])
	}

	return pagination.NewOffsetResult(articles, total, req.Page, req.Size), nil
}

// Len reports the number of stored articles.
func (s *InMemStorer) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return len(s.storage)
}

func (s *InMemStorer) sortedIDs() []string {
	ids := make([]string, 0, len(s.storage))
	for id := range s.storage {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
