package newsdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Latest_Success(t *testing.T) {
	payload := `{
		"status": "success",
		"totalResults": 1,
		"results": [
			{
				"article_id": "a1",
				"title": "T",
				"creator": ["X", "Y"],
				"content": "body",
				"source_name": "S",
				"pubDate": "2024-01-01",
				"link": "https://example.com/a1",
				"category": ["top"]
			}
		],
		"nextPage": "17091"
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	env, err := client.Latest(context.Background(), Params{Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, env.Status)
	assert.Equal(t, 1, env.TotalResults)
	assert.Equal(t, "17091", env.NextPage)
	require.Len(t, env.Results, 1)

	raw := env.Results[0]
	assert.Equal(t, "a1", raw.ArticleID)
	require.NotNil(t, raw.Title)
	assert.Equal(t, "T", *raw.Title)
	assert.Equal(t, StringList{"X", "Y"}, raw.Creator)
	require.NotNil(t, raw.PubDate)
	assert.Equal(t, "2024-01-01", *raw.PubDate)
}

func TestClient_Latest_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Latest(context.Background(), Params{Query: "golang", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, []string{"test-key"}, gotQuery["apikey"])
	assert.Equal(t, []string{"en"}, gotQuery["language"])
	assert.Equal(t, []string{"golang"}, gotQuery["q"])
}

func TestClient_Latest_OmitsEmptyParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Latest(context.Background(), Params{})
	require.NoError(t, err)

	assert.NotContains(t, gotQuery, "q")
	assert.NotContains(t, gotQuery, "language")
}

func TestClient_Latest_APIError(t *testing.T) {
	payload := `{
		"status": "error",
		"results": {"message": "API key is invalid", "code": "Unauthorized"}
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))

	env, err := client.Latest(context.Background(), Params{})
	require.Error(t, err)
	assert.Nil(t, env)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "error", apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "API key is invalid")
}

func TestClient_Latest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Latest(context.Background(), Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newsdata fetch")
}

func TestClient_Latest_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Latest(context.Background(), Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newsdata decode")
}
