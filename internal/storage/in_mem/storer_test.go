package in_mem

import (
	"context"
	"testing"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestInMemStorer_UpsertOverwrites(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, domain.Article{ID: "a1", Title: strPtr("old")}))
	require.NoError(t, s.Upsert(ctx, domain.Article{ID: "a1", Title: strPtr("new")}))

	assert.Equal(t, 1, s.Len())

	got, err := s.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "new", *got.Title)
}

func TestInMemStorer_GetByID_NotFound(t *testing.T) {
	s := NewInMemStorer()

	_, err := s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInMemStorer_SampleOrderedBounded(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()

	_, err := s.UpsertAll(ctx, []domain.Article{
		{ID: "c"}, {ID: "a"}, {ID: "b"},
	})
	require.NoError(t, err)

	sample, err := s.Sample(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sample, 2)
	assert.Equal(t, "a", sample[0].ID)
	assert.Equal(t, "b", sample[1].ID)

	all, err := s.Sample(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInMemStorer_SampleNegative(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, domain.Article{ID: "a1"}))

	sample, err := s.Sample(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, sample)
}

func TestInMemStorer_ListPaging(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()

	_, err := s.UpsertAll(ctx, []domain.Article{
		{ID: "a1"}, {ID: "a2"}, {ID: "a3"},
	})
	require.NoError(t, err)

	page2, err := s.List(ctx, pagination.OffsetRequest{Page: 2, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page2.Total)
	assert.False(t, page2.HasMore)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, "a3", page2.Items[0].ID)
}
