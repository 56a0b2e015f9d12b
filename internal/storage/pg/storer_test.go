package pg

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/pkg/pagination"
	pkgtesting "github.com/dkovacevic/newsdata-sync/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx    context.Context
	testPool   *ConnectionPool
	testStorer *Storer
	testReader *Reader
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "newsdata_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	testStorer, err = NewStorer(testCtx, testPool)
	if err != nil {
		panic(err)
	}
	testReader, err = NewReader(testPool)
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func requireContainer(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE articles")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func TestStorer_Upsert_InsertThenOverwrite(t *testing.T) {
	requireContainer(t)
	truncateTable(t)
	defer truncateTable(t)

	first := domain.Article{
		ID:          "a1",
		Title:       strPtr("T"),
		Author:      strPtr("X, Y"),
		Body:        strPtr("body"),
		Source:      strPtr("S"),
		PublishedAt: strPtr("2024-01-01"),
	}
	require.NoError(t, testStorer.Upsert(testCtx, first))

	second := domain.Article{
		ID:    "a1",
		Title: strPtr("T2"),
	}
	require.NoError(t, testStorer.Upsert(testCtx, second))

	var count int
	require.NoError(t, testPool.GetConn().QueryRow(testCtx, "SELECT count(*) FROM articles").Scan(&count))
	assert.Equal(t, 1, count)

	got, err := testReader.GetByID(testCtx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "T2", *got.Title)
	// overwrite replaces every column, nulls included
	assert.Nil(t, got.Author)
	assert.Nil(t, got.Body)
	assert.Nil(t, got.Source)
	assert.Nil(t, got.PublishedAt)
}

func TestStorer_UpsertAll_AndSample(t *testing.T) {
	requireContainer(t)
	truncateTable(t)
	defer truncateTable(t)

	articles := []domain.Article{
		{ID: "a1", Title: strPtr("first")},
		{ID: "a2", Title: strPtr("second")},
		{ID: "a3", Title: strPtr("third")},
	}

	n, err := testStorer.UpsertAll(testCtx, articles)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sample, err := testStorer.Sample(testCtx, 2)
	require.NoError(t, err)
	require.Len(t, sample, 2)
	assert.Equal(t, "a1", sample[0].ID)
	assert.Equal(t, "a2", sample[1].ID)
}

func TestStorer_UpsertAll_Rerun(t *testing.T) {
	requireContainer(t)
	truncateTable(t)
	defer truncateTable(t)

	_, err := testStorer.UpsertAll(testCtx, []domain.Article{
		{ID: "a1", Title: strPtr("old"), Source: strPtr("S")},
	})
	require.NoError(t, err)

	_, err = testStorer.UpsertAll(testCtx, []domain.Article{
		{ID: "a1", Title: strPtr("new")},
		{ID: "a2"},
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, testPool.GetConn().QueryRow(testCtx, "SELECT count(*) FROM articles").Scan(&count))
	assert.Equal(t, 2, count)

	got, err := testReader.GetByID(testCtx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "new", *got.Title)
	assert.Nil(t, got.Source)
}

func TestReader_GetByID_NotFound(t *testing.T) {
	requireContainer(t)
	truncateTable(t)

	_, err := testReader.GetByID(testCtx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReader_List(t *testing.T) {
	requireContainer(t)
	truncateTable(t)
	defer truncateTable(t)

	_, err := testStorer.UpsertAll(testCtx, []domain.Article{
		{ID: "a1", PublishedAt: strPtr("2024-01-02")},
		{ID: "a2", PublishedAt: strPtr("2024-01-03")},
		{ID: "a3"},
	})
	require.NoError(t, err)

	result, err := testReader.List(testCtx, pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Total)
	assert.True(t, result.HasMore)
	require.Len(t, result.Items, 2)
	// newest first, null published_at last
	assert.Equal(t, "a2", result.Items[0].ID)
	assert.Equal(t, "a1", result.Items[1].ID)
}
